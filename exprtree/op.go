package exprtree

// Op identifies an expression operator.
type Op int

const (
	OpNegative Op = iota
	OpNot
	OpTimes
	OpDivide
	OpMod
	OpPlus
	OpMinus
	OpLess
	OpGreater
	OpLessEq
	OpGreaterEq
	OpEquals
	OpNotEquals
	OpAnd
	OpOr
	OpConditional
)

// Precedence returns the operator's binding strength; higher binds tighter.
// The scale matches the template language's grammar so that lowered
// expressions can decide parenthesization by comparison.
func (op Op) Precedence() int {
	switch op {
	case OpNegative, OpNot:
		return 8
	case OpTimes, OpDivide, OpMod:
		return 7
	case OpPlus, OpMinus:
		return 6
	case OpLess, OpGreater, OpLessEq, OpGreaterEq:
		return 5
	case OpEquals, OpNotEquals:
		return 4
	case OpAnd:
		return 3
	case OpOr:
		return 2
	case OpConditional:
		return 1
	}
	panic("unknown operator")
}

// NumOperands returns the operator's arity.
func (op Op) NumOperands() int {
	switch op {
	case OpNegative, OpNot:
		return 1
	case OpConditional:
		return 3
	}
	return 2
}

// Token returns the operator's source token.
func (op Op) Token() string {
	switch op {
	case OpNegative:
		return "-"
	case OpNot:
		return "not"
	case OpTimes:
		return "*"
	case OpDivide:
		return "/"
	case OpMod:
		return "%"
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpLessEq:
		return "<="
	case OpGreaterEq:
		return ">="
	case OpEquals:
		return "=="
	case OpNotEquals:
		return "!="
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpConditional:
		return "?:"
	}
	panic("unknown operator")
}
