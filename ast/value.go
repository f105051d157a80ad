package ast

import (
	"fmt"
	"strconv"
)

// Valuer represents a value interface
type Valuer interface {
	Type() NodeType
	Value() interface{}
	Encode() string
}

type nodeValue struct {
	t NodeType
	v interface{}
}

func newNodeValue(t NodeType, v interface{}) *nodeValue {
	return &nodeValue{
		t: t,
		v: v,
	}
}

func (n *nodeValue) Type() NodeType {
	return n.t
}

func (n *nodeValue) Value() interface{} {
	return n.v
}

// Encode renders numbers as decimal digits and strings wrapped in double
// quotes. Strings are not escaped.
func (n *nodeValue) Encode() string {
	switch n.t {
	case NodeTypeNumber:
		return strconv.FormatUint(n.v.(uint64), 10)
	case NodeTypeString:
		return fmt.Sprintf(`"%s"`, n.v)
	}

	panic("unreachable")
}

// NewNumberValue creates a value of type number and sets it to the given value
func NewNumberValue(v uint64) Valuer {
	return newNodeValue(NodeTypeNumber, v)
}

// NewStringValue creates a value of type string and sets it to the given
// identifier
func NewStringValue(v string) Valuer {
	return newNodeValue(NodeTypeString, v)
}

var _ = Valuer(&nodeValue{})
