package testkit

import (
	"strings"
	"testing"

	"tscfg/internal/ast"
	"tscfg/internal/parser"
	"tscfg/internal/source"
)

func TestCheckSpanInvariantsOnParsedFiles(t *testing.T) {
	inputs := []string{
		`{}`,
		`{"compilerOptions": {"module": "amd", "lib": ["es5", "dom"], "paths": {"@/*": ["src/*"]}}}`,
		"{\n  // c\n  \"a\": 1,\n}\n",
		`{"compilerOptions": {"module": "esnext", {"x": 1} "b": [1 2}`,
		`[1, {"a": true}] {"b": null}`,
		`{"a": `,
		``,
	}
	for _, in := range inputs {
		fs := source.NewFileSet()
		f := parser.ParseJSONText(fs, "tsconfig.json", []byte(in))
		if err := CheckSpanInvariants(f, fs.Get(f.ID)); err != nil {
			t.Errorf("%q: %v", in, err)
		}
	}
}

func TestCheckSpanInvariantsDetectsBrokenTree(t *testing.T) {
	fs := source.NewFileSet()
	f := parser.ParseJSONText(fs, "tsconfig.json", []byte(`{"a": [1, 2]}`))
	sf := fs.Get(f.ID)

	arr := f.Root.Props[0].Value
	arr.Elems[0], arr.Elems[1] = arr.Elems[1], arr.Elems[0]
	err := CheckSpanInvariants(f, sf)
	if err == nil || !strings.Contains(err.Error(), "overlaps") {
		t.Fatalf("expected overlap error, got %v", err)
	}

	f = parser.ParseJSONText(fs, "other.json", []byte(`{"a": 1}`))
	f.Root.Props[0].Value.Span.End = 100
	if err := CheckSpanInvariants(f, fs.Get(f.ID)); err == nil {
		t.Fatal("expected out-of-bounds error")
	}

	f = parser.ParseJSONText(fs, "third.json", []byte(`{}`))
	f.Root = &ast.Node{Kind: ast.KindObject}
	if err := CheckSpanInvariants(f, fs.Get(f.ID)); err == nil {
		t.Fatal("expected foreign-root error")
	}

	if err := CheckSpanInvariants(nil, sf); err == nil {
		t.Fatal("expected nil-file error")
	}
}
