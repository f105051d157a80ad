package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/sexpr-parser/lexer"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingTokens  = errors.New("trailing tokens")
)

// SyntaxError describes the token that stopped the parser. Token is nil when
// the input ended where a token was required.
type SyntaxError struct {
	Err   error
	Desc  string
	Token *lexer.Token
}

func newSyntaxError(err error, tok *lexer.Token) *SyntaxError {
	return &SyntaxError{
		Err:   err,
		Desc:  describe(tok),
		Token: tok,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Desc)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func describe(tok *lexer.Token) string {
	if tok == nil {
		return "end of input"
	}
	line, col := tok.Pos()
	return fmt.Sprintf("%v %q at line %d, column %d", tok.Type(), tok.Text(), line, col)
}
