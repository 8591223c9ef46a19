package lexer

import (
	"tscfg/internal/diag"
	"tscfg/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
	// KeepTrivia attaches whitespace/comment trivia to tokens. The parser does
	// not need it; formatters and tests do.
	KeepTrivia bool
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, args ...string) {
	diag.Report(lx.opts.Reporter, code, sp, args...)
}
