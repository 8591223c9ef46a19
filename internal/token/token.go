package token

import (
	"tscfg/internal/source"
)

// Flags carries scanner findings the parser turns into diagnostics.
type Flags uint8

const (
	// SingleQuoted marks a string written with ' quotes.
	SingleQuoted Flags = 1 << iota
	// Unterminated marks a string that hit end of line or file.
	Unterminated
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string // исходный текст токена
	Value   string // декодированное значение строкового литерала
	Flags   Flags
	Leading []Trivia
}

// IsLiteral reports whether the token can start a JSON scalar.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case StringLit, NumberLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// StartsValue reports whether the token can begin a JSON value.
func (t Token) StartsValue() bool {
	switch t.Kind {
	case LBrace, LBracket, Minus, Plus:
		return true
	default:
		return t.IsLiteral()
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Has reports whether flag f is set.
func (t Token) Has(f Flags) bool { return t.Flags&f != 0 }
