// Package parser builds an AST out of the tokens produced by the lexer.
//
// Grammar:
//
//	expression -> atom | list
//	list       -> "(" expression* ")"
//	atom       -> NUMBER | IDENTIFIER
package parser

import (
	"bytes"
	"io"

	"github.com/xiam/sexpr-parser/ast"
	"github.com/xiam/sexpr-parser/lexer"
)

// Options configures a Parser
type Options struct {
	// Strict makes Parse fail with ErrTrailingTokens when tokens are left
	// after the first complete expression. They are ignored otherwise.
	Strict bool

	// Lexer is used when the parser reads from an io.Reader.
	Lexer lexer.Options
}

// Parser is a recursive descent parser over a token slice. The cursor only
// moves forward.
type Parser struct {
	r    io.Reader
	opts Options

	tokens []lexer.Token
	loaded bool
	pos    int
}

// New creates a parser over tokens that were already scanned
func New(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens: tokens,
		loaded: true,
	}
}

// NewParser creates a parser that scans r the first time it's asked for an
// expression
func NewParser(r io.Reader) *Parser {
	return &Parser{r: r}
}

// SetOptions replaces the parser options
func (p *Parser) SetOptions(opts Options) {
	p.opts = opts
}

// Parse returns the next top-level expression. An empty input yields an
// empty list.
func (p *Parser) Parse() (*ast.Node, error) {
	if err := p.load(); err != nil {
		return nil, err
	}

	node, err := p.expression()
	if err != nil {
		return nil, err
	}

	if p.opts.Strict {
		if tok := p.curr(); tok != nil {
			return nil, newSyntaxError(ErrTrailingTokens, tok)
		}
	}

	return node, nil
}

// ParseAll returns every top-level expression in the input, in order
func (p *Parser) ParseAll() ([]*ast.Node, error) {
	if err := p.load(); err != nil {
		return nil, err
	}

	nodes := []*ast.Node{}
	for p.curr() != nil {
		node, err := p.expression()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (p *Parser) load() error {
	if p.loaded {
		return nil
	}
	p.loaded = true

	tokens, err := lexer.New(p.r, p.opts.Lexer).Scan()
	if err != nil {
		return err
	}
	p.tokens = tokens
	return nil
}

func (p *Parser) curr() *lexer.Token {
	if p.pos < len(p.tokens) {
		return &p.tokens[p.pos]
	}
	return nil
}

func (p *Parser) advance() {
	p.pos++
}

func (p *Parser) consume(tt lexer.TokenType) (*lexer.Token, error) {
	tok := p.curr()
	if tok == nil || !tok.Is(tt) {
		return nil, newSyntaxError(ErrUnexpectedToken, tok)
	}
	p.advance()
	return tok, nil
}

func (p *Parser) expression() (*ast.Node, error) {
	tok := p.curr()
	if tok == nil {
		return ast.NewList(nil), nil
	}

	switch tok.Type() {
	case lexer.TokenLeftParen:
		return p.list()

	case lexer.TokenIdentifier:
		p.advance()
		return ast.New(tok, ast.NewStringValue(tok.Text())), nil

	case lexer.TokenNumber:
		p.advance()
		return ast.New(tok, ast.NewNumberValue(tok.Number())), nil
	}

	return nil, newSyntaxError(ErrUnexpectedToken, tok)
}

func (p *Parser) list() (*ast.Node, error) {
	open, err := p.consume(lexer.TokenLeftParen)
	if err != nil {
		return nil, err
	}

	node := ast.NewList(open)
	for tok := p.curr(); tok != nil && !tok.Is(lexer.TokenRightParen); tok = p.curr() {
		child, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := node.Push(child); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.TokenRightParen); err != nil {
		return nil, err
	}
	return node, nil
}

// Parse scans and parses in using default options
func Parse(in []byte) (*ast.Node, error) {
	return NewParser(bytes.NewReader(in)).Parse()
}
