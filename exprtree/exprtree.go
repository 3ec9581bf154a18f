// Package exprtree defines the expression AST produced by the template
// front-end. The node set is sealed: every consumer switches exhaustively
// over the concrete types and treats an unknown type as a defect.
package exprtree

import (
	"strconv"
	"strings"
)

// Node is an expression-tree node. String reconstructs the node's source
// form for diagnostics.
type Node interface {
	String() string
	exprNode()
}

// NullNode is the literal null.
type NullNode struct{}

func (*NullNode) exprNode()      {}
func (*NullNode) String() string { return "null" }

// BooleanNode is a boolean literal.
type BooleanNode struct {
	Value bool
}

func (*BooleanNode) exprNode() {}

func (n *BooleanNode) String() string {
	return strconv.FormatBool(n.Value)
}

// IntegerNode is an integer literal.
type IntegerNode struct {
	Value int
}

func (*IntegerNode) exprNode() {}

func (n *IntegerNode) String() string {
	return strconv.Itoa(n.Value)
}

// FloatNode is a float literal.
type FloatNode struct {
	Value float64
}

func (*FloatNode) exprNode() {}

func (n *FloatNode) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// StringNode is a string literal. Value holds the unescaped text.
type StringNode struct {
	Value string
}

func (*StringNode) exprNode() {}

func (n *StringNode) String() string {
	return "'" + n.Value + "'"
}

// ListLiteralNode is a list literal [e1, e2, ...].
type ListLiteralNode struct {
	Items []Node
}

func (*ListLiteralNode) exprNode() {}

func (n *ListLiteralNode) String() string {
	parts := make([]string, len(n.Items))
	for i, item := range n.Items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MapEntry is one key: value pair of a map literal.
type MapEntry struct {
	Key   Node
	Value Node
}

// MapLiteralNode is a map literal [k1: v1, k2: v2, ...].
type MapLiteralNode struct {
	Entries []MapEntry
}

func (*MapLiteralNode) exprNode() {}

func (n *MapLiteralNode) String() string {
	parts := make([]string, len(n.Entries))
	for i, e := range n.Entries {
		parts[i] = e.Key.String() + ": " + e.Value.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// DataRefNode is a data reference $a.b[0][$c]. Access holds the chain of
// segments; the first must be a *DataRefKeyNode naming the root.
type DataRefNode struct {
	IsIjDataRef bool
	Access      []Node
}

func (*DataRefNode) exprNode() {}

func (n *DataRefNode) String() string {
	var b strings.Builder
	if n.IsIjDataRef {
		b.WriteString("$ij")
	} else {
		b.WriteString("$")
	}
	for i, a := range n.Access {
		switch seg := a.(type) {
		case *DataRefKeyNode:
			if i > 0 || n.IsIjDataRef {
				b.WriteString(".")
			}
			b.WriteString(seg.Key)
		case *DataRefIndexNode:
			b.WriteString("[" + strconv.Itoa(seg.Index) + "]")
		default:
			b.WriteString("[" + a.String() + "]")
		}
	}
	return b.String()
}

// DataRefKeyNode is a named path segment.
type DataRefKeyNode struct {
	Key string
}

func (*DataRefKeyNode) exprNode()        {}
func (n *DataRefKeyNode) String() string { return n.Key }

// DataRefIndexNode is a constant list-index path segment.
type DataRefIndexNode struct {
	Index int
}

func (*DataRefIndexNode) exprNode() {}

func (n *DataRefIndexNode) String() string {
	return strconv.Itoa(n.Index)
}

// GlobalNode is a reference to a compile-time global, emitted verbatim. The
// front-end is expected to have substituted known globals already.
type GlobalNode struct {
	Name string
}

func (*GlobalNode) exprNode()        {}
func (n *GlobalNode) String() string { return n.Name }

// FunctionNode is a function call f(arg1, arg2).
type FunctionNode struct {
	Name string
	Args []Node
}

func (*FunctionNode) exprNode() {}

func (n *FunctionNode) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Name + "(" + strings.Join(parts, ", ") + ")"
}

// OperatorNode is an operator application. Children length is fixed by the
// operator: 1 for unary, 2 for binary, 3 for the conditional.
type OperatorNode struct {
	Op       Op
	Children []Node
}

func (*OperatorNode) exprNode() {}

func (n *OperatorNode) String() string {
	switch n.Op {
	case OpNegative:
		return "-" + n.Children[0].String()
	case OpNot:
		return "not " + n.Children[0].String()
	case OpConditional:
		return n.Children[0].String() + " ? " + n.Children[1].String() + " : " + n.Children[2].String()
	}
	return n.Children[0].String() + " " + n.Op.Token() + " " + n.Children[1].String()
}
