package formula

import "fmt"

// parser is a recursive-descent parser over the grammar
//
//	expr    := term { (+|-) term }
//	term    := signed { (*|/) signed }
//	signed  := [+|-] signed | power
//	power   := postfix [ ^ signed ]        (right-associative)
//	postfix := primary { ! }
//	primary := NUMBER | FUNC ( expr ) | ( expr )
//
// Unary sign sits ahead of power, so -2^2 parses as -(2^2).
type parser struct {
	tokens []token
	pos    int
}

func parse(input string) (node, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokenEOF {
		return nil, fmt.Errorf("unexpected %q at position %d", p.peek().text, p.peek().pos)
	}
	return root, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return token{}, fmt.Errorf("expected %s at position %d, got %q", what, t.pos, t.text)
	}
	return t, nil
}

func (p *parser) parseExpr() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenPlus || p.peek().kind == tokenMinus {
		op := p.next().kind
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseSigned()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenStar || p.peek().kind == tokenSlash {
		op := p.next().kind
		right, err := p.parseSigned()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseSigned() (node, error) {
	if p.peek().kind == tokenPlus || p.peek().kind == tokenMinus {
		op := p.next().kind
		operand, err := p.parseSigned()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: op, operand: operand}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (node, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokenCaret {
		p.next()
		exponent, err := p.parseSigned()
		if err != nil {
			return nil, err
		}
		return binaryNode{op: tokenCaret, left: base, right: exponent}, nil
	}
	return base, nil
}

func (p *parser) parsePostfix() (node, error) {
	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenBang {
		p.next()
		operand = factorialNode{operand: operand}
	}
	return operand, nil
}

func (p *parser) parsePrimary() (node, error) {
	t := p.next()
	switch t.kind {
	case tokenNumber:
		return numberNode{value: t.value}, nil
	case tokenLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRParen, `")"`); err != nil {
			return nil, err
		}
		return inner, nil
	case tokenIdent:
		fn, ok := functions[t.text]
		if !ok {
			// A leftover identifier is an unresolved variable
			// reference, never a silent pass-through.
			return nil, fmt.Errorf("unresolved reference %q at position %d", t.text, t.pos)
		}
		if _, err := p.expect(tokenLParen, `"("`); err != nil {
			return nil, err
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokenRParen, `")"`); err != nil {
			return nil, err
		}
		return callNode{fn: fn, operand: arg}, nil
	default:
		return nil, fmt.Errorf("unexpected %q at position %d", t.text, t.pos)
	}
}
