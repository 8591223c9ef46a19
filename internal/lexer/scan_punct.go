package lexer

import (
	"tscfg/internal/diag"
	"tscfg/internal/token"
)

// scanPunct сканирует односимвольную пунктуацию JSON. Всё прочее — Invalid.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	switch lx.cursor.Bump() {
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case ':':
		return emit(token.Colon)
	case ',':
		return emit(token.Comma)
	case '-':
		return emit(token.Minus)
	case '+':
		return emit(token.Plus)
	case '.':
		return emit(token.Dot)
	}

	tok := emit(token.Invalid)
	lx.errLex(diag.InvalidCharacter, tok.Span)
	return tok
}
