package gosrc

import "strings"

// concatTexts renders a batch of lowered expressions as one Go string
// concatenation, coercing each operand to a string.
func concatTexts(exprs []GoExpr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = genCoerceString(e)
	}
	return strings.Join(parts, " + ")
}

// concatGoExprs is concatTexts re-wrapped as a String-typed value
// expression, for contexts that consume a runtime value rather than a Go
// string.
func concatGoExprs(exprs []GoExpr) GoExpr {
	return NewGoExpr(genNewStringData(concatTexts(exprs)), TypeString, MaxPrecedence)
}
