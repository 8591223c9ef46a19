package fuzztests

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"

	"tscfg/internal/ast"
	"tscfg/internal/diag"
	"tscfg/internal/options"
	"tscfg/internal/parser"
	"tscfg/internal/source"
	"tscfg/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

type fuzzHost struct{}

func (fuzzHost) CurrentDirectory() string        { return "/fuzz" }
func (fuzzHost) UseCaseSensitiveFileNames() bool { return true }

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// вложенность глубже лимита
	deep := make([]byte, 0, 4096)
	for range 2048 {
		deep = append(deep, '[')
	}
	f.Add(deep)

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			fs := source.NewFileSet()
			_ = parser.ParseJSONText(fs, "fuzz.json", input)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzConvertEntriesAgree runs both conversion entries and checks that they
// never panic, that located diagnostics stay inside the file and that, for
// syntactically clean input, the decoded value converts to the same options.
func FuzzConvertEntriesAgree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := parser.ParseJSONText(fs, "tsconfig.json", input)
		if err := testkit.CheckSpanInvariants(file, fs.Get(file.ID)); err != nil {
			t.Fatalf("span invariants: %v", err)
		}
		res := options.ParseJSONSourceFileConfig(file, fuzzHost{}, "/fuzz", "tsconfig.json")
		if res.Options == nil {
			t.Fatal("nil options")
		}
		for _, d := range append(append([]diag.Diagnostic(nil), file.Diagnostics...), res.Errors...) {
			if d.Code.Key() == diag.UnknownCode.Key() {
				t.Fatalf("diagnostic with unregistered code %d", d.Code)
			}
			if d.HasLocation() && d.Primary.End > uint32(len(input)) {
				t.Fatalf("%s span %v past end of %d-byte input", d.Code.ID(), d.Primary, len(input))
			}
		}

		// с дубликатами ключей разбор по узлам видит все значения, а map только последнее
		if file.HasSyntaxErrors() || hasDuplicateKeys(file.Root) {
			return
		}
		var root any
		if file.Root != nil {
			root = file.Root.Value()
		}
		bare := options.ConvertConfigFromJSON(root, "/fuzz", "tsconfig.json")
		if !reflect.DeepEqual(res.Options.Map(), bare.Options.Map()) {
			cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
			t.Fatalf("entries disagree:\nparsed:\n%sdecoded:\n%s", cfg.Sdump(res.Options.Map()), cfg.Sdump(bare.Options.Map()))
		}
		if len(res.Errors) != len(bare.Errors) {
			t.Fatalf("error counts differ: parsed %d, decoded %d", len(res.Errors), len(bare.Errors))
		}
	})
}

func hasDuplicateKeys(n *ast.Node) bool {
	if n == nil {
		return false
	}
	seen := make(map[string]bool, len(n.Props))
	for _, p := range n.Props {
		if seen[p.Name] || hasDuplicateKeys(p.Value) {
			return true
		}
		seen[p.Name] = true
	}
	for _, e := range n.Elems {
		if hasDuplicateKeys(e) {
			return true
		}
	}
	return false
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
