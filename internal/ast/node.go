package ast

import (
	"tscfg/internal/source"
)

// Kind classifies a JSON node.
type Kind uint8

const (
	// KindInvalid is a value the parser could not make sense of (a bare
	// identifier, a dangling sign). It lowers to nil.
	KindInvalid Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindTrue
	KindFalse
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTrue, KindFalse:
		return "boolean"
	case KindNull:
		return "null"
	}
	return "invalid"
}

// Node is one JSON value with its source span.
type Node struct {
	Kind Kind
	Span source.Span
	// Text holds the decoded string for KindString and the literal text
	// (sign included) for KindNumber and KindInvalid.
	Text   string
	Number float64
	Props  []*Property // KindObject
	Elems  []*Node     // KindArray
}

// Property is one "name": value member of an object literal.
type Property struct {
	Key   *Node  // KindString, or KindInvalid for bare identifiers
	Name  string // decoded key text
	Value *Node  // nil when the parser found no value
	Span  source.Span
}

// IsObject reports whether n is a non-nil object literal.
func (n *Node) IsObject() bool { return n != nil && n.Kind == KindObject }

// IsArray reports whether n is a non-nil array literal.
func (n *Node) IsArray() bool { return n != nil && n.Kind == KindArray }

// Prop returns the last property named name. Later duplicates override
// earlier ones, matching how decoders treat repeated keys.
func (n *Node) Prop(name string) *Property {
	if !n.IsObject() {
		return nil
	}
	for i := len(n.Props) - 1; i >= 0; i-- {
		if n.Props[i].Name == name {
			return n.Props[i]
		}
	}
	return nil
}

// ValueSpan returns the span of the property value, or of the key when the
// value is missing.
func (p *Property) ValueSpan() source.Span {
	if p.Value != nil {
		return p.Value.Span
	}
	return p.KeySpan()
}

// KeySpan returns the span of the property key.
func (p *Property) KeySpan() source.Span {
	if p.Key != nil {
		return p.Key.Span
	}
	return p.Span
}
