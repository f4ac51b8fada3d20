package formula

import (
	"fmt"
	"strconv"
	"unicode"
)

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	tokenBang
	tokenLParen
	tokenRParen
	tokenEOF
)

type token struct {
	kind  tokenKind
	text  string
	value float64
	pos   int
}

// lex splits the substituted formula into tokens. Anything that is not
// a number, identifier, operator or parenthesis is a lex error.
func lex(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)

	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9' || r == '.':
			start := i
			for i < len(runes) && (runes[i] >= '0' && runes[i] <= '9' || runes[i] == '.') {
				i++
			}
			text := string(runes[start:i])
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q at position %d", text, start)
			}
			tokens = append(tokens, token{kind: tokenNumber, text: text, value: value, pos: start})
		case r == '_' || unicode.IsLetter(r):
			start := i
			for i < len(runes) && (runes[i] == '_' || unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])) {
				i++
			}
			tokens = append(tokens, token{kind: tokenIdent, text: string(runes[start:i]), pos: start})
		default:
			kind, ok := operatorKinds[r]
			if !ok {
				return nil, fmt.Errorf("unexpected character %q at position %d", r, i)
			}
			tokens = append(tokens, token{kind: kind, text: string(r), pos: i})
			i++
		}
	}

	tokens = append(tokens, token{kind: tokenEOF, pos: len(runes)})
	return tokens, nil
}

var operatorKinds = map[rune]tokenKind{
	'+': tokenPlus,
	'-': tokenMinus,
	'*': tokenStar,
	'/': tokenSlash,
	'^': tokenCaret,
	'!': tokenBang,
	'(': tokenLParen,
	')': tokenRParen,
}
