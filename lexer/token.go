package lexer

import (
	"fmt"
	"strconv"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string
	num    uint64

	line int
	col  int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

// NewNumberToken creates a lexical unit of type TokenNumber holding v
func NewNumberToken(v uint64, line int, col int) *Token {
	tok := NewToken(TokenNumber, strconv.FormatUint(v, 10), line, col)
	tok.num = v
	return tok
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Number returns the value of a TokenNumber. It is zero for any other type.
func (t Token) Number() uint64 {
	return t.num
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
