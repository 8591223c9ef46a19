package diagfmt

import (
	"encoding/json"
	"io"

	"tscfg/internal/diag"
	"tscfg/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате. Location is nil
// for location-less diagnostics.
type DiagnosticJSON struct {
	Category string        `json:"category"`
	Code     string        `json:"code"`
	Key      string        `json:"key"`
	Message  string        `json:"message"`
	Location *LocationJSON `json:"location,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// FileReport is the per-config entry of a check report. Options holds
// anything that marshals itself (the converted option set).
type FileReport struct {
	Path        string           `json:"path"`
	Options     any              `json:"options,omitempty"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
}

// Report is the root of `check --format json|msgpack`.
type Report struct {
	Files []FileReport `json:"files"`
	Count int          `json:"count"`
}

// makeLocation создаёт LocationJSON из Span
func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) *LocationJSON {
	f := fileOf(fs, span)
	if f == nil {
		return nil
	}
	loc := &LocationJSON{
		File:      f.FormatPath(pathMode.mode(), fs.BaseDir()),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildDiagnostics converts diagnostics, honouring opts.Max.
func BuildDiagnostics(items []diag.Diagnostic, fs *source.FileSet, opts JSONOpts) []DiagnosticJSON {
	n := len(items)
	if opts.Max > 0 && opts.Max < n {
		n = opts.Max
	}
	out := make([]DiagnosticJSON, n)
	for i := range n {
		d := items[i]
		out[i] = DiagnosticJSON{
			Category: d.Category.Label(),
			Code:     d.Code.ID(),
			Key:      d.Code.Key(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		}
	}
	return out
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	diags := BuildDiagnostics(bag.Items(), fs, opts)
	return DiagnosticsOutput{Diagnostics: diags, Count: len(diags)}
}

// JSON пишет диагностики bag в w.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	return writeJSON(w, BuildDiagnosticsOutput(bag, fs, opts))
}

// WriteReportJSON пишет отчёт check в w.
func WriteReportJSON(w io.Writer, r Report) error {
	return writeJSON(w, r)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
