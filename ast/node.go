package ast

import (
	"errors"

	"github.com/xiam/sexpr-parser/lexer"
)

// ErrNotAList is returned when pushing children into a value node.
var ErrNotAList = errors.New("nodes of type value can't accept children")

// Node represents a leaf or a list of the AST
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// New creates and returns an orphaned value node based on the given token
func New(tok *lexer.Token, v Valuer) *Node {
	return newNode(v.Type(), tok, v)
}

// NewList creates and returns a node of type "list"
func NewList(tok *lexer.Token) *Node {
	return newNode(NodeTypeList, tok, []*Node{})
}

// PushValue appends a new value to the node
func (n *Node) PushValue(tok *lexer.Token, v Valuer) (*Node, error) {
	node := New(tok, v)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushList appends a new list to the node
func (n *Node) PushList(tok *lexer.Token) (*Node, error) {
	node := NewList(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Token returns the token associated to the node, nil for the empty list
// that stands for empty input.
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Value returns the value of the node: a uint64 for numbers, a string for
// identifiers and a []*Node for lists.
func (n Node) Value() interface{} {
	if n.v == nil {
		return nil
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Value()
	}
	return n.v
}

// Encode returns the encoded value of a value node
func (n Node) Encode() string {
	if n.v == nil {
		return ""
	}
	if _, ok := n.v.(Valuer); ok {
		return n.v.(Valuer).Encode()
	}
	return ""
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	if !n.IsVector() {
		return nil
	}
	return n.v.([]*Node)
}

func (n *Node) String() string {
	return string(Encode(n))
}

// Push appends a child node to a parent node of type "list".
func (n *Node) Push(node *Node) error {
	if n.IsVector() {
		n.v = append(n.v.([]*Node), node)
		return nil
	}
	return ErrNotAList
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// Equal reports whether n and m hold the same tree. Tokens are ignored.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.nt != m.nt {
		return false
	}
	if n.IsValue() {
		return n.Value() == m.Value()
	}
	a, b := n.List(), m.List()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
