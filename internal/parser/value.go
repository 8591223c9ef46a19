package parser

import (
	"math"
	"strconv"
	"strings"

	"tscfg/internal/ast"
	"tscfg/internal/diag"
	"tscfg/internal/token"
)

// parseValue parses one JSON value at the current token. It returns nil
// without consuming anything when the token cannot start a value.
func (p *Parser) parseValue() *ast.Node {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.LBrace:
		return p.parseObject()
	case token.LBracket:
		return p.parseArray()
	case token.StringLit:
		p.advance()
		if tok.Has(token.SingleQuoted) {
			p.report(diag.StringLiteralWithDoubleQuotesExpect, tok.Span)
		}
		return &ast.Node{Kind: ast.KindString, Span: tok.Span, Text: tok.Value}
	case token.NumberLit:
		p.advance()
		return &ast.Node{Kind: ast.KindNumber, Span: tok.Span, Text: tok.Text, Number: parseNumber(tok.Text)}
	case token.Minus, token.Plus:
		return p.parseSigned()
	case token.KwTrue:
		p.advance()
		return &ast.Node{Kind: ast.KindTrue, Span: tok.Span, Text: tok.Text}
	case token.KwFalse:
		p.advance()
		return &ast.Node{Kind: ast.KindFalse, Span: tok.Span, Text: tok.Text}
	case token.KwNull:
		p.advance()
		return &ast.Node{Kind: ast.KindNull, Span: tok.Span, Text: tok.Text}
	case token.Ident:
		p.advance()
		p.report(diag.UnexpectedToken, tok.Span)
		return &ast.Node{Kind: ast.KindInvalid, Span: tok.Span, Text: tok.Text}
	case token.Invalid:
		// лексер уже отрепортил
		p.advance()
		return &ast.Node{Kind: ast.KindInvalid, Span: tok.Span, Text: tok.Text}
	case token.EOF:
		p.report(diag.UnexpectedEndOfText, tok.Span)
		return nil
	default:
		p.report(diag.ExpressionExpected, tok.Span)
		return nil
	}
}

func (p *Parser) parseSigned() *ast.Node {
	sign := p.advance()
	num := p.lx.Peek()
	if num.Kind != token.NumberLit {
		p.report(diag.ExpressionExpected, num.Span)
		return &ast.Node{Kind: ast.KindInvalid, Span: sign.Span, Text: sign.Text}
	}
	p.advance()
	v := parseNumber(num.Text)
	if sign.Kind == token.Minus {
		v = -v
	}
	sp := sign.Span.Cover(num.Span)
	return &ast.Node{Kind: ast.KindNumber, Span: sp, Text: sign.Text + num.Text, Number: v}
}

func parseNumber(text string) float64 {
	if len(text) > 2 && text[0] == '0' {
		base := 0
		switch text[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(text[2:], base, 64)
			if err != nil {
				return math.Inf(1)
			}
			return float64(u)
		}
	}
	// ParseFloat отдаёт ±Inf при переполнении, это нас устраивает
	f, _ := strconv.ParseFloat(strings.TrimSuffix(text, "."), 64)
	return f
}

func (p *Parser) enter(open token.Token) bool {
	if p.depth >= p.opts.MaxDepth {
		p.report(diag.UnexpectedToken, open.Span)
		return false
	}
	p.depth++
	return true
}

// parseObject parses `{ "key": value, ... }`. Bare identifier and number keys
// are accepted and reported, a `]` closes the object early.
func (p *Parser) parseObject() *ast.Node {
	open := p.advance()
	node := &ast.Node{Kind: ast.KindObject, Span: open.Span}
	if !p.enter(open) {
		p.skipNested(token.LBrace, token.RBrace)
		node.Span = node.Span.Cover(p.lastSpan)
		return node
	}
	defer func() { p.depth-- }()

	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.RBrace:
			p.advance()
			node.Span = node.Span.Cover(tok.Span)
			return node
		case token.EOF:
			p.report(diag.Expected, p.afterLast(), "}")
			node.Span = node.Span.Cover(p.lastSpan)
			return node
		case token.RBracket:
			p.report(diag.Expected, tok.Span, "}")
			p.advance()
			node.Span = node.Span.Cover(tok.Span)
			return node
		case token.Comma:
			p.report(diag.PropertyAssignmentExpected, tok.Span)
			p.advance()
			continue
		case token.StringLit, token.Ident, token.NumberLit:
			node.Props = append(node.Props, p.parseProperty())
		case token.Invalid:
			p.advance()
			continue
		default:
			// пропускаем по одному токену: вложенная '{' здесь не открывает
			// объект, а следующая '}' закрывает текущий
			p.report(diag.PropertyAssignmentExpected, tok.Span)
			p.advance()
			continue
		}

		switch p.lx.Peek().Kind {
		case token.Comma:
			p.advance()
		case token.RBrace, token.RBracket, token.EOF:
		default:
			p.report(diag.Expected, p.lx.Peek().Span, ",")
		}
	}
}

func (p *Parser) parseProperty() *ast.Property {
	keyTok := p.advance()
	key := &ast.Node{Kind: ast.KindString, Span: keyTok.Span, Text: keyTok.Value}
	switch {
	case keyTok.Kind == token.Ident, keyTok.Kind == token.NumberLit:
		key.Text = keyTok.Text
		p.report(diag.StringLiteralWithDoubleQuotesExpect, keyTok.Span)
	case keyTok.Has(token.SingleQuoted):
		p.report(diag.StringLiteralWithDoubleQuotesExpect, keyTok.Span)
	}
	prop := &ast.Property{Key: key, Name: key.Text, Span: keyTok.Span}

	colon := p.at(token.Colon)
	if colon {
		p.advance()
	} else {
		p.report(diag.Expected, p.lx.Peek().Span, ":")
	}

	next := p.lx.Peek()
	switch {
	case next.StartsValue(), next.Kind == token.Invalid:
		prop.Value = p.parseValue()
	case next.Kind == token.Ident && colon:
		prop.Value = p.parseValue()
	case colon:
		p.report(diag.ExpressionExpected, next.Span)
	}
	if prop.Value != nil {
		prop.Span = prop.Span.Cover(prop.Value.Span)
	}
	return prop
}

// parseArray parses `[ value, ... ]`; a `}` closes the array early.
func (p *Parser) parseArray() *ast.Node {
	open := p.advance()
	node := &ast.Node{Kind: ast.KindArray, Span: open.Span}
	if !p.enter(open) {
		p.skipNested(token.LBracket, token.RBracket)
		node.Span = node.Span.Cover(p.lastSpan)
		return node
	}
	defer func() { p.depth-- }()

	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.RBracket:
			p.advance()
			node.Span = node.Span.Cover(tok.Span)
			return node
		case token.EOF:
			p.report(diag.Expected, p.afterLast(), "]")
			node.Span = node.Span.Cover(p.lastSpan)
			return node
		case token.RBrace:
			p.report(diag.Expected, tok.Span, "]")
			p.advance()
			node.Span = node.Span.Cover(tok.Span)
			return node
		case token.Comma:
			p.report(diag.ExpressionExpected, tok.Span)
			p.advance()
			continue
		case token.Colon, token.Dot:
			p.report(diag.UnexpectedToken, tok.Span)
			p.advance()
			continue
		}

		if v := p.parseValue(); v != nil {
			node.Elems = append(node.Elems, v)
		}

		switch p.lx.Peek().Kind {
		case token.Comma:
			p.advance()
		case token.RBracket, token.RBrace, token.EOF:
		default:
			p.report(diag.Expected, p.lx.Peek().Span, ",")
		}
	}
}

// skipNested consumes tokens up to the matching close of an over-deep
// container without building nodes.
func (p *Parser) skipNested(open, close token.Kind) {
	level := 1
	for level > 0 {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			return
		case open:
			level++
		case close:
			level--
		}
		p.advance()
	}
}
