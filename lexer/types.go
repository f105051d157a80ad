package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenLeftParen            // Open parenthesis: "("
	TokenRightParen           // Close parenthesis: ")"
	TokenIdentifier           // Letter followed by anything but space and ")", or "+"
	TokenNumber               // Unsigned decimal integer
)

var tokenValues = map[TokenType][]rune{
	TokenLeftParen:  []rune{'('},
	TokenRightParen: []rune{')'},
	TokenNumber:     []rune("0123456789"),
}

var tokenNames = map[TokenType]string{
	TokenInvalid:    "Invalid",
	TokenLeftParen:  "LeftParen",
	TokenRightParen: "RightParen",
	TokenIdentifier: "Identifier",
	TokenNumber:     "Number",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isSpace(r rune) bool {
	return r == ' '
}

func isOperator(r rune) bool {
	return r == '+'
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

// identifiers stop at a space or a closing parenthesis, nothing else
func isIdentifierBreak(r rune) bool {
	return isSpace(r) || isRightParen(r)
}
