package options

import (
	"tscfg/internal/ast"
	"tscfg/internal/source"
)

// locator picks the span a diagnostic points at. Decoded input has no
// positions, so bareLocator answers source.NoSpan everywhere.
type locator interface {
	keySpan(raw RawOption) source.Span
	valueSpan(raw RawOption) source.Span
	rootSpan() source.Span
}

type bareLocator struct{}

func (bareLocator) keySpan(RawOption) source.Span   { return source.NoSpan }
func (bareLocator) valueSpan(RawOption) source.Span { return source.NoSpan }
func (bareLocator) rootSpan() source.Span           { return source.NoSpan }

type nodeLocator struct {
	file *ast.File
}

func (l nodeLocator) keySpan(raw RawOption) source.Span {
	if raw.KeyNode != nil {
		return raw.KeyNode.Span
	}
	return l.rootSpan()
}

func (l nodeLocator) valueSpan(raw RawOption) source.Span {
	if raw.Node != nil {
		return raw.Node.Span
	}
	return l.keySpan(raw)
}

func (l nodeLocator) rootSpan() source.Span {
	if l.file.Root != nil {
		return l.file.Root.Span
	}
	return l.file.EOF
}
