package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/xiam/sexpr-parser/lexer"
)

// Print writes a human-readable, indented representation of a node to w
func Print(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeList:
		list := n.List()
		fmt.Fprintf(w, "%d (%s)\n", len(list), tokenPos(n.Token()))
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case NodeTypeNumber:
		fmt.Fprintf(w, "%d (%s)\n", n.Value(), tokenPos(n.Token()))

	case NodeTypeString:
		fmt.Fprintf(w, "%q (%s)\n", n.Value(), tokenPos(n.Token()))

	default:
		panic("unknown node type")
	}
}

func tokenPos(tok *lexer.Token) string {
	if tok == nil {
		return "-"
	}
	line, col := tok.Pos()
	return fmt.Sprintf("%d:%d", line, col)
}

// Encode transforms a node into its bracketed text representation, for
// instance (+ 1 (a)) becomes ["+", 1, ["a"]].
func Encode(n *Node) []byte {
	var sb strings.Builder
	encodeNode(&sb, n, false)
	return []byte(sb.String())
}

// EncodeSexpr transforms a node back into s-expression syntax. Parsing the
// result yields a tree equal to n.
func EncodeSexpr(n *Node) []byte {
	var sb strings.Builder
	encodeNode(&sb, n, true)
	return []byte(sb.String())
}

func encodeNode(sb *strings.Builder, n *Node, sexpr bool) {
	if n == nil {
		sb.WriteString(":nil")
		return
	}
	switch n.Type() {
	case NodeTypeList:
		open, sep, end := "[", ", ", "]"
		if sexpr {
			open, sep, end = "(", " ", ")"
		}
		sb.WriteString(open)
		for i, child := range n.List() {
			if i > 0 {
				sb.WriteString(sep)
			}
			encodeNode(sb, child, sexpr)
		}
		sb.WriteString(end)

	case NodeTypeNumber:
		sb.WriteString(n.Encode())

	case NodeTypeString:
		if sexpr {
			sb.WriteString(n.Value().(string))
			return
		}
		sb.WriteString(n.Encode())

	default:
		panic("unknown node type")
	}
}
