package options

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"tscfg/internal/ast"
)

// Options is the converted option set. Entries keep insertion order; setting
// an existing key replaces its value in place.
type Options struct {
	keys   []string
	values map[string]any

	// ConfigFilePath echoes the config file name with forward slashes.
	ConfigFilePath string
	// ConfigFile is the parsed file the options came from; nil for
	// already-decoded input.
	ConfigFile *ast.File
}

func NewOptions() *Options {
	return &Options{values: make(map[string]any)}
}

func (o *Options) Set(name string, value any) {
	if _, ok := o.values[name]; !ok {
		o.keys = append(o.keys, name)
	}
	o.values[name] = value
}

// Delete removes name; later entries keep their relative order.
func (o *Options) Delete(name string) {
	if _, ok := o.values[name]; !ok {
		return
	}
	delete(o.values, name)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == name })
}

func (o *Options) Get(name string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[name]
	return v, ok
}

func (o *Options) Has(name string) bool {
	_, ok := o.Get(name)
	return ok
}

func (o *Options) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns option names in insertion order.
func (o *Options) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// All iterates entries in insertion order.
func (o *Options) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// Map returns the entries as a plain map.
func (o *Options) Map() map[string]any {
	out := make(map[string]any, o.Len())
	for k, v := range o.All() {
		out[k] = v
	}
	return out
}

// MarshalJSON writes the entries in order followed by configFilePath.
func (o *Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(k string, v any) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("option %s: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
		return nil
	}
	for k, v := range o.All() {
		if err := write(k, v); err != nil {
			return nil, err
		}
	}
	if o != nil && o.ConfigFilePath != "" {
		if err := write("configFilePath", o.ConfigFilePath); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var _ msgpack.CustomEncoder = (*Options)(nil)

// EncodeMsgpack writes the same ordered map MarshalJSON does.
func (o *Options) EncodeMsgpack(enc *msgpack.Encoder) error {
	n := o.Len()
	if o != nil && o.ConfigFilePath != "" {
		n++
	}
	if err := enc.EncodeMapLen(n); err != nil {
		return err
	}
	for k, v := range o.All() {
		if err := enc.EncodeString(k); err != nil {
			return err
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("option %s: %w", k, err)
		}
	}
	if o != nil && o.ConfigFilePath != "" {
		if err := enc.EncodeString("configFilePath"); err != nil {
			return err
		}
		return enc.EncodeString(o.ConfigFilePath)
	}
	return nil
}

var _ yaml.Marshaler = (*Options)(nil)

// MarshalYAML builds an ordered mapping node; a plain map would be re-sorted.
func (o *Options) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	add := func(k string, v any) error {
		var val yaml.Node
		if err := val.Encode(v); err != nil {
			return fmt.Errorf("option %s: %w", k, err)
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, &val)
		return nil
	}
	for k, v := range o.All() {
		if err := add(k, v); err != nil {
			return nil, err
		}
	}
	if o != nil && o.ConfigFilePath != "" {
		if err := add("configFilePath", o.ConfigFilePath); err != nil {
			return nil, err
		}
	}
	return node, nil
}
