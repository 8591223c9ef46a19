package parser

import (
	"fmt"
	"strings"
	"testing"

	"tscfg/internal/ast"
	"tscfg/internal/diag"
	"tscfg/internal/source"
	"tscfg/internal/testkit"
)

func parse(t *testing.T, text string) (*ast.File, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	f := ParseJSONText(fs, "tsconfig.json", []byte(text))
	if err := testkit.CheckSpanInvariants(f, fs.Get(f.ID)); err != nil {
		t.Fatalf("span invariants broken for %q: %v", text, err)
	}
	return f, fs
}

func diagnosticsSummary(diags []diag.Diagnostic) string {
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func hasCode(diags []diag.Diagnostic, code diag.Code) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

func compilerOptions(t *testing.T, f *ast.File) *ast.Node {
	t.Helper()
	p := f.Root.Prop("compilerOptions")
	if p == nil || !p.Value.IsObject() {
		t.Fatalf("root has no compilerOptions object: %#v", f.Root.Value())
	}
	return p.Value
}

func newFileSet() *source.FileSet { return source.NewFileSet() }
