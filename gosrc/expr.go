package gosrc

import "math"

// MaxPrecedence marks expression text that is atomic (a literal, variable,
// or call) and never needs protective parentheses.
const MaxPrecedence = math.MaxInt32

// GoExpr is a lowered expression: a self-contained fragment of Go source
// annotated with the runtime type it evaluates to and the binding strength
// of its weakest top-level operator. Constructed once per AST node visit
// and never mutated.
type GoExpr struct {
	Text       string
	Type       DataType
	Precedence int
}

func NewGoExpr(text string, typ DataType, precedence int) GoExpr {
	return GoExpr{Text: text, Type: typ, Precedence: precedence}
}
