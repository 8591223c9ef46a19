package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tscfg/internal/diag"
	"tscfg/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, code, path, gutter, caret *color.Color
}

// newPalette builds colours per call; enabling them explicitly overrides
// fatih/color's own terminal detection.
func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.FgHiBlack),
		path:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) category(c diag.Category) *color.Color {
	switch c {
	case diag.CatError:
		return p.err
	case diag.CatWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <category> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := writeOne(w, d, fs, opts, p); err != nil {
			return err
		}
	}
	return nil
}

func writeOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) error {
	var sb strings.Builder
	f := fileOf(fs, d.Primary)
	if f != nil {
		start, _ := fs.Resolve(d.Primary)
		loc := fmt.Sprintf("%s:%d:%d", f.FormatPath(opts.PathMode.mode(), fs.BaseDir()), start.Line, start.Col)
		sb.WriteString(p.path.Sprint(loc))
		sb.WriteString(": ")
	}
	sb.WriteString(p.category(d.Category).Sprint(d.Category.Label()))
	sb.WriteByte(' ')
	sb.WriteString(p.code.Sprint(d.Code.ID()))
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	sb.WriteByte('\n')

	if f != nil {
		writeSnippet(&sb, f, fs, d.Primary, opts, p)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func fileOf(fs *source.FileSet, sp source.Span) *source.File {
	if fs == nil || !sp.HasFile() {
		return nil
	}
	return fs.Get(sp.File)
}

// writeSnippet prints the first line of the span with Context lines around
// it and a caret underline sized by display width.
func writeSnippet(sb *strings.Builder, f *source.File, fs *source.FileSet, sp source.Span, opts PrettyOpts, p palette) {
	start, end := fs.Resolve(sp)
	if start.Line == 0 {
		return
	}
	ctx := uint32(max(opts.Context, 0))
	first := start.Line - min(ctx, start.Line-1)
	last := min(start.Line+ctx, uint32(len(f.LineIdx))+1)
	gutterWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		display := clip(expandTabs(text), opts.Width)
		fmt.Fprintf(sb, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), display)
		if ln != start.Line {
			continue
		}

		col := min(int(start.Col)-1, len(text))
		prefix := expandTabs(text[:col])
		endCol := len(text)
		if end.Line == start.Line {
			endCol = min(int(end.Col)-1, len(text))
		}
		marked := ""
		if endCol > col {
			marked = expandTabs(text[col:endCol])
		}
		width := max(runewidth.StringWidth(marked), 1)
		caret := "^" + strings.Repeat("~", width-1)
		fmt.Fprintf(sb, "%s %s%s\n",
			p.gutter.Sprintf("%*s |", gutterWidth, ""),
			strings.Repeat(" ", runewidth.StringWidth(prefix)),
			p.caret.Sprint(caret))
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

func clip(s string, width uint8) string {
	if width == 0 || runewidth.StringWidth(s) <= int(width) {
		return s
	}
	return runewidth.Truncate(s, int(width), "…")
}
