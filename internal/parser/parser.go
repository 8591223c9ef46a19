package parser

import (
	"tscfg/internal/ast"
	"tscfg/internal/diag"
	"tscfg/internal/lexer"
	"tscfg/internal/source"
	"tscfg/internal/token"
)

type Options struct {
	// Reporter receives every syntax diagnostic in addition to
	// ast.File.Diagnostics. May be nil.
	Reporter diag.Reporter
	// MaxDepth bounds object/array nesting; 0 means DefaultMaxDepth.
	MaxDepth int
}

// DefaultMaxDepth keeps hostile input from exhausting the goroutine stack.
const DefaultMaxDepth = 512

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	opts     Options
	rep      diag.Reporter
	sink     *diag.SliceReporter
	depth    int
	lastSpan source.Span // span последнего съеденного токена
}

// ParseJSONText adds text to fs under name and parses it.
func ParseJSONText(fs *source.FileSet, name string, text []byte) *ast.File {
	id := fs.AddVirtual(name, text)
	return ParseFile(fs.Get(id), Options{})
}

// ParseFile parses an already loaded file. It never fails: whatever could be
// recovered is returned together with the syntax diagnostics.
func ParseFile(file *source.File, opts Options) *ast.File {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	sink := &diag.SliceReporter{}
	var next diag.Reporter = sink
	if opts.Reporter != nil {
		next = teeReporter{sink, opts.Reporter}
	}
	rep := diag.NewDedupReporter(next)

	p := &Parser{
		file:     file,
		opts:     opts,
		rep:      rep,
		sink:     sink,
		lastSpan: source.Span{File: file.ID},
	}
	p.lx = lexer.New(file, lexer.Options{Reporter: rep})

	out := &ast.File{ID: file.ID, Path: file.Path}
	p.parseDocument(out)
	out.Diagnostics = sink.Items
	return out
}

// parseDocument collects every top-level value. Anything after the first one
// is reported, but kept so the root can still be chosen sensibly.
func (p *Parser) parseDocument(out *ast.File) {
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF {
			out.EOF = tok.Span
			break
		}
		if !startsValue(tok) {
			if tok.Kind != token.Invalid {
				p.report(diag.UnexpectedToken, tok.Span)
			}
			p.advance()
			continue
		}
		if len(out.Values) > 0 {
			p.report(diag.UnexpectedToken, tok.Span)
		}
		if v := p.parseValue(); v != nil {
			out.Values = append(out.Values, v)
		}
	}
	out.Root = pickRoot(out.Values)
}

func pickRoot(values []*ast.Node) *ast.Node {
	for _, v := range values {
		if v.IsObject() {
			return v
		}
	}
	if len(values) > 0 {
		return values[0]
	}
	return nil
}

// startsValue — может ли токен начинать значение (включая ошибочные слова).
func startsValue(tok token.Token) bool {
	return tok.StartsValue() || tok.Kind == token.Ident
}

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) report(code diag.Code, sp source.Span, args ...string) {
	diag.Report(p.rep, code, sp, args...)
}

// afterLast — пустой span сразу за последним съеденным токеном.
func (p *Parser) afterLast() source.Span {
	return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
}

type teeReporter [2]diag.Reporter

func (t teeReporter) Report(code diag.Code, cat diag.Category, primary source.Span, msg string) {
	for _, r := range t {
		r.Report(code, cat, primary, msg)
	}
}
