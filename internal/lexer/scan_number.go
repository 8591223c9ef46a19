package lexer

import (
	"tscfg/internal/diag"
	"tscfg/internal/token"
)

// Поддержка: 0, 123, 1.5, .5, 1e-3, 1.0E+10, 0x1F, 0o17, 0b101.
// Знак не часть литерала: '-' отдельный токен, парсер склеивает.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		var digit func(byte) bool
		switch b1 {
		case 'x', 'X':
			digit = isHex
		case 'o', 'O':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		case 'b', 'B':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		}
		if digit != nil {
			lx.cursor.Bump()
			lx.cursor.Bump()
			n := 0
			for digit(lx.cursor.Peek()) {
				lx.cursor.Bump()
				n++
			}
			sp := lx.cursor.SpanFrom(start)
			if n == 0 {
				lx.errLex(diag.InvalidCharacter, sp)
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.text(sp)}
		}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// "1e" без цифр: экспоненту не берём, 'e' уйдёт идентификатором
			lx.cursor.Reset(mark)
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.text(sp)}
}
