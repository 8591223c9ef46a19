package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"tscfg/internal/source"
)

type shortDiagnostic struct {
	Category string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShortDiagnostics renders diagnostics one per line:
//
//	error TS6046 tsconfig.json:3:15 Argument for '--jsx' option must be: ...
//
// Location-less diagnostics render "-" instead of path:line:col. Entries are
// sorted by path, line, column, category, code and message so the output is
// stable enough for golden files.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet) string {
	if len(diags) == 0 {
		return ""
	}

	rendered := make([]shortDiagnostic, 0, len(diags))
	for _, d := range diags {
		sd := shortDiagnostic{
			Category: d.Category.Label(),
			Code:     d.Code.ID(),
			Message:  sanitizeMessage(d.Message),
		}
		if fs != nil && d.HasLocation() {
			if f := fs.Get(d.Primary.File); f != nil {
				start, _ := fs.Resolve(d.Primary)
				sd.Path = normalizePath(f.FormatPath("relative", fs.BaseDir()))
				sd.Line, sd.Column = start.Line, start.Col
			}
		}
		rendered = append(rendered, sd)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Category != dj.Category {
			return di.Category < dj.Category
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		loc := "-"
		if d.Path != "" {
			loc = fmt.Sprintf("%s:%d:%d", d.Path, d.Line, d.Column)
		}
		fmt.Fprintf(&b, "%s %s %s %s", d.Category, d.Code, loc, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
