package token

// Kind represents the category of a JSON source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token (unknown character, broken escape).
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident is a bare word. JSON only knows true/false/null, but the parser
	// accepts identifiers as property names and reports them.
	Ident
	KwTrue  // true
	KwFalse // false
	KwNull  // null

	StringLit // "..." or '...'
	NumberLit // 12, 1.5e3, 0x1F

	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
	Colon    // :
	Comma    // ,
	Minus    // -
	Plus     // +
	Dot      // .
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwTrue:    "true",
	KwFalse:   "false",
	KwNull:    "null",
	StringLit: "StringLit",
	NumberLit: "NumberLit",
	LBrace:    "{",
	RBrace:    "}",
	LBracket:  "[",
	RBracket:  "]",
	Colon:     ":",
	Comma:     ",",
	Minus:     "-",
	Plus:      "+",
	Dot:       ".",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsPunct reports whether k is a single-character punctuator.
func (k Kind) IsPunct() bool {
	return k >= LBrace && k <= Dot
}

// LookupKeyword returns the keyword kind for word, or Ident.
func LookupKeyword(word string) Kind {
	switch word {
	case "true":
		return KwTrue
	case "false":
		return KwFalse
	case "null":
		return KwNull
	}
	return Ident
}
