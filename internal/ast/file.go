package ast

import (
	"tscfg/internal/diag"
	"tscfg/internal/source"
)

// File is the node tree of one config file.
type File struct {
	ID   source.FileID
	Path string
	// Root is the value the config is read from. It is nil for empty text.
	// When the text holds several top-level values (stray characters before or
	// after the document) Root is the first object literal among them, or the
	// first value when there is none.
	Root *Node
	// Values lists every top-level value in source order.
	Values []*Node
	EOF    source.Span
	// Diagnostics holds the syntax errors found while parsing.
	Diagnostics []diag.Diagnostic
}

// HasSyntaxErrors reports whether the parser recovered from any error.
func (f *File) HasSyntaxErrors() bool {
	return f != nil && len(f.Diagnostics) > 0
}
