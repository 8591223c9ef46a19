package lexer

import (
	"strings"
	"unicode/utf8"

	"tscfg/internal/diag"
	"tscfg/internal/token"
)

// scanString сканирует строку в кавычках quote (" или '). Value получает
// декодированный текст; одинарные кавычки помечаются флагом, ругается парсер.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	var flags token.Flags
	if quote == '\'' {
		flags |= token.SingleQuoted
	}

	var val strings.Builder
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			// строка не закрыта: репорт в конце, как делает эталонный сканер
			lx.errLex(diag.UnterminatedStringLiteral, lx.emptySpan())
			flags |= token.Unterminated
			break
		}
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			lx.scanEscape(&val)
			continue
		}
		if b < utf8RuneSelf {
			val.WriteByte(lx.cursor.Bump())
			continue
		}
		r, sz := lx.peekRune()
		val.WriteRune(r)
		lx.cursor.Off += uint32(sz)
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp), Value: val.String(), Flags: flags}
}

func (lx *Lexer) scanEscape(val *strings.Builder) {
	if lx.cursor.EOF() {
		return
	}
	escStart := lx.cursor.Mark() - 1
	b := lx.cursor.Bump()
	switch b {
	case '"', '\'', '\\', '/':
		val.WriteByte(b)
	case 'b':
		val.WriteByte('\b')
	case 'f':
		val.WriteByte('\f')
	case 'n':
		val.WriteByte('\n')
	case 'r':
		val.WriteByte('\r')
	case 't':
		val.WriteByte('\t')
	case 'v':
		val.WriteByte('\v')
	case '0':
		val.WriteByte(0)
	case 'u':
		r, ok := lx.scanHex4()
		if !ok {
			lx.errLex(diag.HexadecimalDigitExpected, lx.cursor.SpanFrom(escStart))
			return
		}
		val.WriteRune(r)
	case '\n':
		// продолжение строки
	default:
		if b >= utf8RuneSelf {
			lx.cursor.Off--
			r, sz := lx.peekRune()
			val.WriteRune(r)
			lx.cursor.Off += uint32(sz)
			return
		}
		val.WriteByte(b)
	}
}

func (lx *Lexer) scanHex4() (rune, bool) {
	var r rune
	for i := 0; i < 4; i++ {
		b := lx.cursor.Peek()
		if !isHex(b) {
			return utf8.RuneError, false
		}
		lx.cursor.Bump()
		r = r<<4 | rune(hexVal(b))
	}
	return r, true
}
