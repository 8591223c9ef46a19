package options

import (
	"slices"

	"tscfg/internal/ast"
)

// RawOption is one key/value pair read from an options object before
// conversion. Node and KeyNode are nil for already-decoded input.
type RawOption struct {
	Key     string
	Value   any
	Node    *ast.Node // value node; nil when missing or decoded input
	KeyNode *ast.Node
}

// rawFromNode lists object properties in source order, duplicates included.
func rawFromNode(n *ast.Node) []RawOption {
	if !n.IsObject() {
		return nil
	}
	out := make([]RawOption, 0, len(n.Props))
	for _, p := range n.Props {
		out = append(out, RawOption{
			Key:     p.Name,
			Value:   p.Value.Value(),
			Node:    p.Value,
			KeyNode: p.Key,
		})
	}
	return out
}

// rawFromMap lists map entries sorted by key; decoded maps carry no order.
func rawFromMap(m map[string]any) []RawOption {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]RawOption, len(keys))
	for i, k := range keys {
		out[i] = RawOption{Key: k, Value: m[k]}
	}
	return out
}

// findLast returns the last raw option named key.
func findLast(raws []RawOption, key string) (RawOption, bool) {
	for i := len(raws) - 1; i >= 0; i-- {
		if raws[i].Key == key {
			return raws[i], true
		}
	}
	return RawOption{}, false
}
