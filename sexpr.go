// Package sexpr turns s-expressions like (first (list 1 (+ 2 3) 9)) into a
// tree of ast.Node values.
//
// The work is done in two stages: package lexer splits the source into
// tokens and package parser builds the tree out of them. The helpers in this
// package run both stages in one call.
package sexpr

import (
	"bytes"
	"io"
	"strings"

	"github.com/xiam/sexpr-parser/ast"
	"github.com/xiam/sexpr-parser/parser"
)

// Reader parses the first s-expression found in an io.Reader
type Reader struct {
	r    io.Reader
	opts parser.Options
}

// Parse parses in with default options
func Parse(in []byte) (*ast.Node, error) {
	r := NewReader(bytes.NewReader(in))
	return r.Parse()
}

// ParseString parses s and returns the bracketed rendering of the tree, for
// instance "(+ 1 2)" becomes `["+", 1, 2]`.
func ParseString(s string) (string, error) {
	root, err := NewReader(strings.NewReader(s)).Parse()
	if err != nil {
		return "", err
	}
	return string(ast.Encode(root)), nil
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// SetOptions configures the lexer and the parser used by r
func (r *Reader) SetOptions(opts parser.Options) {
	r.opts = opts
}

func (r *Reader) Parse() (*ast.Node, error) {
	p := parser.NewParser(r.r)
	p.SetOptions(r.opts)
	return p.Parse()
}
