package options

import (
	"strings"

	"tscfg/internal/ast"
	"tscfg/internal/diag"
	"tscfg/internal/source"
)

// Result is the outcome of one conversion. Errors lists diagnostics in the
// order they were found; conversion itself never fails.
type Result struct {
	Options *Options
	Errors  []diag.Diagnostic
}

// HasErrors reports whether any diagnostic is an error.
func (r Result) HasErrors() bool {
	for _, d := range r.Errors {
		if d.Category == diag.CatError {
			return true
		}
	}
	return false
}

// Host answers the questions the node-tree entry needs about the file system.
type Host interface {
	CurrentDirectory() string
	UseCaseSensitiveFileNames() bool
}

// ConvertCompilerOptionsFromJSON converts an already-decoded compilerOptions
// value (the member, not the whole document). Diagnostics carry no location.
func ConvertCompilerOptionsFromJSON(value any, basePath, configFileName string) Result {
	c := newConverter(bareLocator{}, basePath)
	var raws []RawOption
	switch v := value.(type) {
	case nil:
	case map[string]any:
		raws = rawFromMap(v)
	default:
		c.report(diag.CompilerOptionRequiresType, source.NoSpan, "compilerOptions", "object")
	}
	opts := c.convertOptions(raws)
	return c.finish(opts, configFileName, true)
}

// ConvertConfigFromJSON converts a whole decoded config document, running the
// root-shape checks. Diagnostics carry no location.
func ConvertConfigFromJSON(root any, basePath, configFileName string) Result {
	c := newConverter(bareLocator{}, basePath)
	opts := c.convertDocument(documentFromValue(root), configFileName)
	return c.finish(opts, configFileName, true)
}

// ParseJSONSourceFileConfig converts a parsed config file. Diagnostics point
// at the offending key or value and the options keep a reference to file.
// Syntax errors stay in file.Diagnostics; whatever the parser recovered is
// still converted. An empty basePath falls back to the host's current
// directory.
func ParseJSONSourceFileConfig(file *ast.File, host Host, basePath, configFileName string) Result {
	caseSensitive := true
	if host != nil {
		caseSensitive = host.UseCaseSensitiveFileNames()
		if basePath == "" {
			basePath = host.CurrentDirectory()
		}
	}
	if file == nil {
		file = &ast.File{ID: source.NoFile, EOF: source.NoSpan}
	}
	c := newConverter(nodeLocator{file: file}, basePath)
	opts := c.convertDocument(documentFromNode(file), configFileName)
	res := c.finish(opts, configFileName, caseSensitive)
	res.Options.ConfigFile = file
	return res
}

func (c *converter) finish(opts *Options, configFileName string, caseSensitive bool) Result {
	opts = applyDefaults(opts, configFileName, caseSensitive)
	opts.ConfigFilePath = strings.ReplaceAll(configFileName, `\`, "/")
	return Result{Options: opts, Errors: c.errs}
}
