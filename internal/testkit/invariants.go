package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"tscfg/internal/ast"
	"tscfg/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) every node span points into sf and lies within its content
// 2) every child span (property, key, value, element) is contained in its parent
// 3) siblings appear in source order without overlapping
// 4) diagnostics with a location stay within the content
func CheckSpanInvariants(f *ast.File, sf *source.File) error {
	if f == nil || sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	c := spanChecker{file: sf.ID, end: lenContent}

	var prev source.Span
	for i, v := range f.Values {
		if err := c.node(v, source.Span{File: sf.ID, Start: 0, End: lenContent}); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
		if i > 0 && v.Span.Start < prev.End {
			return fmt.Errorf("value %d at %v overlaps previous %v", i, v.Span, prev)
		}
		prev = v.Span
	}
	if f.Root != nil {
		found := false
		for _, v := range f.Values {
			found = found || v == f.Root
		}
		if !found {
			return fmt.Errorf("root is not one of the top-level values")
		}
	}
	for _, d := range f.Diagnostics {
		if d.HasLocation() && (d.Primary.File != sf.ID || d.Primary.End > lenContent) {
			return fmt.Errorf("%s span %v outside file", d.Code.ID(), d.Primary)
		}
	}
	return nil
}

type spanChecker struct {
	file source.FileID
	end  uint32
}

func (c spanChecker) within(sp, outer source.Span) error {
	if sp.File != c.file {
		return fmt.Errorf("span %v points to file %d, want %d", sp, sp.File, c.file)
	}
	if sp.End < sp.Start || sp.End > c.end {
		return fmt.Errorf("span %v outside content of %d bytes", sp, c.end)
	}
	if sp.Start < outer.Start || sp.End > outer.End {
		return fmt.Errorf("span %v not within parent %v", sp, outer)
	}
	return nil
}

func (c spanChecker) node(n *ast.Node, outer source.Span) error {
	if n == nil {
		return nil
	}
	if err := c.within(n.Span, outer); err != nil {
		return fmt.Errorf("%s: %w", n.Kind, err)
	}
	var prev uint32 = n.Span.Start
	for _, p := range n.Props {
		if err := c.within(p.Span, n.Span); err != nil {
			return fmt.Errorf("property %q: %w", p.Name, err)
		}
		if p.Span.Start < prev {
			return fmt.Errorf("property %q at %v overlaps previous sibling", p.Name, p.Span)
		}
		prev = p.Span.End
		if err := c.node(p.Key, p.Span); err != nil {
			return fmt.Errorf("key %q: %w", p.Name, err)
		}
		if err := c.node(p.Value, p.Span); err != nil {
			return fmt.Errorf("value of %q: %w", p.Name, err)
		}
	}
	for i, e := range n.Elems {
		if err := c.node(e, n.Span); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		if e.Span.Start < prev {
			return fmt.Errorf("element %d at %v overlaps previous sibling", i, e.Span)
		}
		prev = e.Span.End
	}
	return nil
}
