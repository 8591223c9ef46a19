package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := map[string]Kind{
		"true":  KwTrue,
		"false": KwFalse,
		"null":  KwNull,
		"True":  Ident,
		"blah":  Ident,
	}
	for word, want := range cases {
		if got := LookupKeyword(word); got != want {
			t.Errorf("LookupKeyword(%q) = %s, want %s", word, got, want)
		}
	}
}

func TestStartsValue(t *testing.T) {
	for _, k := range []Kind{LBrace, LBracket, Minus, StringLit, NumberLit, KwTrue, KwNull} {
		if !(Token{Kind: k}).StartsValue() {
			t.Errorf("%s should start a value", k)
		}
	}
	for _, k := range []Kind{RBrace, Colon, Comma, Ident, EOF, Invalid} {
		if (Token{Kind: k}).StartsValue() {
			t.Errorf("%s should not start a value", k)
		}
	}
}
