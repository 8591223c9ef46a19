package options

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tscfg/internal/ast"
	"tscfg/internal/diag"
	"tscfg/internal/parser"
	"tscfg/internal/source"
)

const basePath = "/apath/"

type testHost struct {
	cwd           string
	caseSensitive bool
}

func (h testHost) CurrentDirectory() string        { return h.cwd }
func (h testHost) UseCaseSensitiveFileNames() bool { return h.caseSensitive }

var defaultHost = testHost{cwd: basePath, caseSensitive: true}

// withConfigPath appends the configFilePath entry every result carries.
func withConfigPath(options, configFileName string) string {
	body := strings.TrimSuffix(strings.TrimSpace(options), "}")
	if strings.TrimSpace(strings.TrimPrefix(body, "{")) != "" {
		body += ","
	}
	return body + `"configFilePath":"` + configFileName + `"}`
}

func marshal(t *testing.T, o *Options) string {
	t.Helper()
	b, err := json.Marshal(o)
	require.NoError(t, err)
	return string(b)
}

func codes(diags []diag.Diagnostic) []diag.Code {
	out := make([]diag.Code, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}

func parseText(t *testing.T, configFileName, text string) (*ast.File, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	return parser.ParseJSONText(fs, configFileName, []byte(text)), fs
}

// assertCompilerOptions runs doc through the decoded entry (compilerOptions
// member only), the decoded whole-document entry and the parsed-text entry.
// wantOptions is the expected JSON in parsed-text key order.
func assertCompilerOptions(t *testing.T, doc, configFileName, wantOptions string, wantErrs ...diag.Code) {
	t.Helper()
	want := withConfigPath(wantOptions, configFileName)
	if wantErrs == nil {
		wantErrs = []diag.Code{}
	}

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &decoded))

	bare := ConvertCompilerOptionsFromJSON(decoded["compilerOptions"], basePath, configFileName)
	assert.JSONEq(t, want, marshal(t, bare.Options), "decoded compilerOptions")
	assert.Equal(t, wantErrs, codes(bare.Errors), "decoded compilerOptions errors")
	for _, d := range bare.Errors {
		assert.False(t, d.HasLocation(), "decoded input must give location-less diagnostics")
	}

	whole := ConvertConfigFromJSON(decoded, basePath, configFileName)
	assert.JSONEq(t, want, marshal(t, whole.Options), "decoded document")
	assert.Equal(t, wantErrs, codes(whole.Errors), "decoded document errors")

	assertCompilerOptionsWithText(t, doc, configFileName, wantOptions, wantErrs...)
}

func assertCompilerOptionsWithText(t *testing.T, text, configFileName, wantOptions string, wantErrs ...diag.Code) {
	t.Helper()
	file, _ := parseText(t, configFileName, text)
	require.Empty(t, file.Diagnostics, "unexpected syntax errors")

	res := ParseJSONSourceFileConfig(file, defaultHost, basePath, configFileName)
	assert.Equal(t, withConfigPath(wantOptions, configFileName), marshal(t, res.Options))
	assert.Same(t, file, res.Options.ConfigFile)
	if wantErrs == nil {
		wantErrs = []diag.Code{}
	}
	assert.Equal(t, wantErrs, codes(res.Errors))
	for _, d := range res.Errors {
		assert.True(t, d.HasLocation(), "%s has no location", d.Code.ID())
		assert.Equal(t, file.ID, d.Primary.File)
		assert.NotZero(t, d.Length(), "%s has empty span", d.Code.ID())
	}
}

// assertOptionsWithParseErrors checks recovered options only; errors are not
// compared once the parser complained.
func assertOptionsWithParseErrors(t *testing.T, text, configFileName, wantOptions string) {
	t.Helper()
	file, _ := parseText(t, configFileName, text)
	require.NotEmpty(t, file.Diagnostics, "expected syntax errors")
	res := ParseJSONSourceFileConfig(file, defaultHost, basePath, configFileName)
	assert.Equal(t, withConfigPath(wantOptions, configFileName), marshal(t, res.Options))
	assert.Same(t, file, res.Options.ConfigFile)
}

func bytesReader(b []byte) *bytes.Reader { return bytes.NewReader(b) }
