package options

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EnumValue pairs an accepted literal with its canonical value.
type EnumValue struct {
	Literal string
	Value   any
}

// EnumSet is the accepted literal set of an enum option. Literals keep their
// declaration order for messages; lookup is case-insensitive.
type EnumSet struct {
	values []EnumValue
	lookup map[string]any
}

// NewEnumSet builds a set from values in declaration order. Later duplicates
// of a literal are kept for messages but do not override the lookup.
func NewEnumSet(values ...EnumValue) *EnumSet {
	s := &EnumSet{
		values: values,
		lookup: make(map[string]any, len(values)),
	}
	for _, v := range values {
		key := fold(v.Literal)
		if _, dup := s.lookup[key]; !dup {
			s.lookup[key] = v.Value
		}
	}
	return s
}

// Lookup resolves a literal case-insensitively. The empty string never
// matches.
func (s *EnumSet) Lookup(literal string) (any, bool) {
	if literal == "" {
		return nil, false
	}
	v, ok := s.lookup[fold(literal)]
	return v, ok
}

// Literals returns the accepted literals in declaration order.
func (s *EnumSet) Literals() []string {
	out := make([]string, len(s.values))
	for i, v := range s.values {
		out[i] = v.Literal
	}
	return out
}

// Quoted renders the literals the way diagnostics list them: 'a', 'b', 'c'.
func (s *EnumSet) Quoted() string {
	var sb strings.Builder
	for i, v := range s.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('\'')
		sb.WriteString(v.Literal)
		sb.WriteByte('\'')
	}
	return sb.String()
}

// fold lowercases with the language-neutral mapping only; full folding would
// let 'ſystem' match 'system'. A Caser keeps state, so one is built per call.
func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
