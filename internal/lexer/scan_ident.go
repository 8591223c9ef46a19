package lexer

import (
	"tscfg/internal/diag"
	"tscfg/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует идентификатор и проверяет true/false/null.
// Ключевые слова регистрозависимые.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if r < utf8RuneSelf {
		lx.cursor.Bump()
		for {
			b := lx.cursor.Peek()
			if b >= utf8RuneSelf {
				r2, sz2 := lx.peekRune()
				if sz2 == 0 || !isIdentContinueRune(r2) {
					break
				}
				lx.bumpRune()
				continue
			}
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
		}
	} else {
		if sz == 0 || !isIdentStartRune(r) {
			// не буква: съедаем руну целиком и репортим
			lx.bumpRune()
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.InvalidCharacter, sp)
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	return token.Token{Kind: token.LookupKeyword(text), Span: sp, Text: text}
}
