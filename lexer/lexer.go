package lexer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"text/scanner"
)

type lexState func(*Lexer) lexState

var (
	isLeftParen  = isTokenType(TokenLeftParen)
	isRightParen = isTokenType(TokenRightParen)
	isDigit      = isTokenType(TokenNumber)
)

// Lexer errors
var (
	ErrAlreadyScanned   = errors.New("lexer: input was already scanned")
	ErrNumericOverflow  = errors.New("numeric overflow")
	ErrUnknownCharacter = errors.New("unknown character")
)

// UnknownPolicy tells the lexer what to do with characters that can't start
// a token.
type UnknownPolicy uint8

// Unknown character policies
const (
	SkipUnknown   UnknownPolicy = iota // drop the character silently
	RejectUnknown                      // fail with ErrUnknownCharacter
)

func (up UnknownPolicy) String() string {
	switch up {
	case SkipUnknown:
		return "skip"
	case RejectUnknown:
		return "reject"
	}
	return "invalid"
}

// Options configures a Lexer
type Options struct {
	Unknown UnknownPolicy

	// Logger receives every emitted token, tracing is off when nil.
	Logger *log.Logger
}

// New initializes a Lexer object
func New(r io.Reader, opts Options) *Lexer {
	s := (&scanner.Scanner{}).Init(r)
	// invalid UTF-8 comes back as utf8.RuneError and is handled by the
	// unknown character policy
	s.Error = func(*scanner.Scanner, string) {}

	return &Lexer{
		in:     s,
		opts:   opts,
		tokens: []Token{},
		buf:    []rune{},

		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
	}
}

// Lexer represents a lexical analyzer. A Lexer reads its input once.
type Lexer struct {
	in   *scanner.Scanner
	opts Options

	tokens  []Token
	scanned bool
	lastErr error

	buf []rune

	line, col           int
	startLine, startCol int
}

// Scan reads the whole input and returns the tokens found in it, in source
// order.
func (lx *Lexer) Scan() ([]Token, error) {
	if lx.scanned {
		return nil, ErrAlreadyScanned
	}
	lx.scanned = true

	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		return nil, lx.lastErr
	}

	tokens := lx.tokens
	lx.tokens = nil
	return tokens, nil
}

func (lx *Lexer) emit(tt TokenType) {
	tok := Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.startLine,
		col:  lx.startCol,
	}
	lx.push(tok)
}

func (lx *Lexer) push(tok Token) {
	lx.tokens = append(lx.tokens, tok)
	if lx.opts.Logger != nil {
		lx.opts.Logger.Printf("token: %v", tok)
	}
	lx.reset()
}

func (lx *Lexer) reset() {
	lx.startLine, lx.startCol = lx.line, lx.col
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

func (lx *Lexer) discard() {
	_, _ = lx.next()
	lx.reset()
}

func lexDefaultState(lx *Lexer) lexState {
	r := lx.peek()

	switch {
	case r == scanner.EOF:
		return nil

	case isLeftParen(r):
		return lexEmit(TokenLeftParen)
	case isRightParen(r):
		return lexEmit(TokenRightParen)

	case isSpace(r):
		lx.discard()
		return lexDefaultState

	case isOperator(r):
		return lexEmit(TokenIdentifier)

	case isDigit(r):
		return lexNumber
	case isLetter(r):
		return lexIdentifier

	default:
		return lexUnknown
	}
}

// lexEmit consumes exactly one character and emits it as a token of type tt.
func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollect(accept func(rune) bool) lexState {
	return func(lx *Lexer) lexState {
		for {
			p := lx.peek()
			if p == scanner.EOF || !accept(p) {
				return nil
			}
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
	}
}

func lexNumber(lx *Lexer) lexState {
	if state := lexCollect(isDigit)(lx); state != nil {
		return state
	}

	text := string(lx.buf)
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return lexStateError(fmt.Errorf("%w: %s at line %d, column %d", ErrNumericOverflow, text, lx.startLine, lx.startCol))
	}

	lx.push(Token{
		tt:     TokenNumber,
		lexeme: text,
		num:    n,

		line: lx.startLine,
		col:  lx.startCol,
	})
	return lexDefaultState
}

func lexIdentifier(lx *Lexer) lexState {
	notBreak := func(r rune) bool {
		return !isIdentifierBreak(r)
	}
	if state := lexCollect(notBreak)(lx); state != nil {
		return state
	}
	lx.emit(TokenIdentifier)
	return lexDefaultState
}

func lexUnknown(lx *Lexer) lexState {
	line, col := lx.line, lx.col
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	if lx.opts.Unknown == RejectUnknown {
		return lexStateError(fmt.Errorf("%w %q at line %d, column %d", ErrUnknownCharacter, r, line, col))
	}

	lx.reset()
	return lexDefaultState
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it.
func Tokenize(in []byte, opts Options) ([]Token, error) {
	return New(bytes.NewReader(in), opts).Scan()
}
