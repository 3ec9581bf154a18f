package gosrc

import (
	"strconv"
	"strings"

	"soyc-go/exprtree"
)

// exprTranslator lowers one expression tree into a GoExpr against the
// current variable scope. One instance is shared across a template body;
// it carries no per-expression state.
type exprTranslator struct {
	scope     *scopeStack
	functions map[string]Function
}

func newExprTranslator(scope *scopeStack, functions map[string]Function) *exprTranslator {
	return &exprTranslator{scope: scope, functions: functions}
}

// translate lowers n. The switch is exhaustive over the expression node
// set; an unknown node type is a front-end/backend version mismatch and
// panics.
func (t *exprTranslator) translate(n exprtree.Node) GoExpr {
	switch n := n.(type) {
	case *exprtree.NullNode:
		return NewGoExpr("soyutil.NilDataInstance", TypeUnknown, MaxPrecedence)
	case *exprtree.BooleanNode:
		return NewGoExpr(genNewBooleanData(strconv.FormatBool(n.Value)), TypeBoolean, MaxPrecedence)
	case *exprtree.IntegerNode:
		return NewGoExpr(genNewIntegerData(strconv.Itoa(n.Value)), TypeInteger, MaxPrecedence)
	case *exprtree.FloatNode:
		text := strconv.FormatFloat(n.Value, 'g', -1, 64)
		return NewGoExpr(genNewFloat64Data(text), TypeFloat, MaxPrecedence)
	case *exprtree.StringNode:
		return NewGoExpr(genNewStringData(strconv.Quote(n.Value)), TypeString, MaxPrecedence)
	case *exprtree.ListLiteralNode:
		return t.translateListLiteral(n)
	case *exprtree.MapLiteralNode:
		return t.translateMapLiteral(n)
	case *exprtree.DataRefNode:
		return t.translateDataRef(n)
	case *exprtree.DataRefKeyNode, *exprtree.DataRefIndexNode:
		panic("data ref access segment outside a data ref")
	case *exprtree.GlobalNode:
		// Known globals are substituted by the front-end; whatever remains
		// is emitted verbatim and left to the Go compiler.
		return NewGoExpr(n.Name, TypeUnknown, MaxPrecedence)
	case *exprtree.OperatorNode:
		return t.translateOperator(n)
	case *exprtree.FunctionNode:
		return t.translateFunction(n)
	}
	panic("unknown expression node")
}

func (t *exprTranslator) translateListLiteral(n *exprtree.ListLiteralNode) GoExpr {
	parts := make([]string, len(n.Items))
	for i, item := range n.Items {
		parts[i] = t.translate(item).Text
	}
	return NewGoExpr("soyutil.NewSoyListDataFromArgs("+strings.Join(parts, ", ")+")", TypeList, MaxPrecedence)
}

func (t *exprTranslator) translateMapLiteral(n *exprtree.MapLiteralNode) GoExpr {
	parts := make([]string, 0, 2*len(n.Entries))
	for _, e := range n.Entries {
		parts = append(parts, t.translate(e.Key).Text, t.translate(e.Value).Text)
	}
	return NewGoExpr("soyutil.NewSoyMapDataFromArgs("+strings.Join(parts, ", ")+")", TypeMap, MaxPrecedence)
}

// translateDataRef lowers $path references. Three roots, tried in order:
// the injected-data namespace, a scope-bound local, and the template's
// data parameter.
func (t *exprTranslator) translateDataRef(n *exprtree.DataRefNode) GoExpr {
	if len(n.Access) == 0 {
		panic("data ref with no access chain")
	}
	first, ok := n.Access[0].(*exprtree.DataRefKeyNode)
	if !ok {
		panic("data ref does not start with a named key")
	}
	if n.IsIjDataRef {
		keyExpr := t.buildKeyExpr(n.Access)
		return NewGoExpr("soyutil.GetIjData("+keyExpr+")", TypeUnknown, MaxPrecedence)
	}
	if binding, bound := t.scope.lookup(first.Key); bound {
		if len(n.Access) == 1 {
			return binding
		}
		keyExpr := t.buildKeyExpr(n.Access[1:])
		text := "soyutil.GetData(" + genMaybeProtect(binding, MaxPrecedence) + ", " + keyExpr + ")"
		return NewGoExpr(text, TypeUnknown, MaxPrecedence)
	}
	keyExpr := t.buildKeyExpr(n.Access)
	return NewGoExpr("soyutil.GetData(data, "+keyExpr+")", TypeUnknown, MaxPrecedence)
}

// buildKeyExpr renders a dotted-path string expression from access
// segments. Consecutive static segments coalesce into one quoted literal;
// dynamic segments are lowered and string-coerced, and the pieces are
// joined with +.
func (t *exprTranslator) buildKeyExpr(segments []exprtree.Node) string {
	var parts []string
	var static strings.Builder
	flush := func() {
		if static.Len() > 0 {
			parts = append(parts, strconv.Quote(static.String()))
			static.Reset()
		}
	}
	for i, seg := range segments {
		if i > 0 {
			static.WriteString(".")
		}
		switch seg := seg.(type) {
		case *exprtree.DataRefKeyNode:
			static.WriteString(seg.Key)
		case *exprtree.DataRefIndexNode:
			static.WriteString(strconv.Itoa(seg.Index))
		default:
			flush()
			parts = append(parts, genCoerceString(t.translate(seg)))
		}
	}
	flush()
	return strings.Join(parts, " + ")
}

func (t *exprTranslator) translateOperator(n *exprtree.OperatorNode) GoExpr {
	if len(n.Children) != n.Op.NumOperands() {
		panic("operator arity mismatch")
	}
	if n.Op == exprtree.OpNegative || n.Op == exprtree.OpNot {
		return t.translateUnary(n.Op, t.translate(n.Children[0]))
	}
	if n.Op == exprtree.OpConditional {
		cond := t.translate(n.Children[0])
		thenE := t.translate(n.Children[1])
		elseE := t.translate(n.Children[2])
		text := "soyutil.Conditional(" + genCoerceBoolean(cond) + ", " + thenE.Text + ", " + elseE.Text + ")"
		return NewGoExpr(text, Join(thenE.Type, elseE.Type), MaxPrecedence)
	}
	return t.translateBinary(n.Op, t.translate(n.Children[0]), t.translate(n.Children[1]))
}

func (t *exprTranslator) translateUnary(op exprtree.Op, operand GoExpr) GoExpr {
	if op == exprtree.OpNot {
		return NewGoExpr(genNewBooleanData("!"+protectUnaryOperand(genCoerceBoolean(operand))), TypeBoolean, MaxPrecedence)
	}
	switch operand.Type {
	case TypeInteger:
		return NewGoExpr(genNewIntegerData("-"+protectUnaryOperand(genIntegerValue(operand))), TypeInteger, MaxPrecedence)
	case TypeFloat:
		return NewGoExpr(genNewFloat64Data("-"+protectUnaryOperand(genFloat64Value(operand))), TypeFloat, MaxPrecedence)
	}
	return NewGoExpr("soyutil.Negative("+operand.Text+")", TypeNumber, MaxPrecedence)
}

// protectUnaryOperand parenthesizes coerced text that a prefix operator
// cannot be applied to directly, such as a negative literal.
func protectUnaryOperand(text string) string {
	if strings.HasPrefix(text, "-") || strings.HasPrefix(text, "!") {
		return "(" + text + ")"
	}
	return text
}

func isStaticNumeric(t DataType) bool {
	return t == TypeInteger || t == TypeFloat || t == TypeNumber
}

func (t *exprTranslator) translateBinary(op exprtree.Op, a, b GoExpr) GoExpr {
	bothInt := a.Type == TypeInteger && b.Type == TypeInteger
	floatPair := (a.Type == TypeFloat || b.Type == TypeFloat) &&
		isStaticNumeric(a.Type) && isStaticNumeric(b.Type)

	switch op {
	case exprtree.OpPlus:
		// String concatenation wins over numeric addition, for + only.
		if a.Type == TypeString || b.Type == TypeString {
			return NewGoExpr(genNewStringData(genCoerceString(a)+" + "+genCoerceString(b)), TypeString, MaxPrecedence)
		}
		if bothInt {
			return NewGoExpr(genNewIntegerData(genIntegerValue(a)+" + "+genIntegerValue(b)), TypeInteger, MaxPrecedence)
		}
		if floatPair {
			return NewGoExpr(genNewFloat64Data(genNumberValue(a)+" + "+genNumberValue(b)), TypeFloat, MaxPrecedence)
		}
		return NewGoExpr("soyutil.Plus("+a.Text+", "+b.Text+")", TypeNumber, MaxPrecedence)

	case exprtree.OpMinus, exprtree.OpTimes:
		goOp := " - "
		runtimeFn := "soyutil.Minus"
		if op == exprtree.OpTimes {
			goOp = " * "
			runtimeFn = "soyutil.Times"
		}
		if bothInt {
			return NewGoExpr(genNewIntegerData(genIntegerValue(a)+goOp+genIntegerValue(b)), TypeInteger, MaxPrecedence)
		}
		if floatPair {
			return NewGoExpr(genNewFloat64Data(genNumberValue(a)+goOp+genNumberValue(b)), TypeFloat, MaxPrecedence)
		}
		return NewGoExpr(runtimeFn+"("+a.Text+", "+b.Text+")", TypeNumber, MaxPrecedence)

	case exprtree.OpMod:
		return NewGoExpr(genNewIntegerData(genIntegerValue(a)+" % "+genIntegerValue(b)), TypeInteger, MaxPrecedence)

	case exprtree.OpDivide:
		// Division always promotes to float; integer operands do not
		// truncate. Two bare integer literals would divide as untyped
		// constants, so one side is converted explicitly.
		aText, bText := genNumberValue(a), genNumberValue(b)
		if intLiteralRe.MatchString(aText) && intLiteralRe.MatchString(bText) {
			aText = "float64(" + aText + ")"
		}
		return NewGoExpr(genNewFloat64Data(aText+" / "+bText), TypeFloat, MaxPrecedence)

	case exprtree.OpLess, exprtree.OpGreater, exprtree.OpLessEq, exprtree.OpGreaterEq:
		goOp, runtimeFn := relationalOp(op)
		if bothInt {
			return NewGoExpr(genNewBooleanData(genIntegerValue(a)+goOp+genIntegerValue(b)), TypeBoolean, MaxPrecedence)
		}
		if floatPair {
			return NewGoExpr(genNewBooleanData(genNumberValue(a)+goOp+genNumberValue(b)), TypeBoolean, MaxPrecedence)
		}
		return NewGoExpr(runtimeFn+"("+a.Text+", "+b.Text+")", TypeBoolean, MaxPrecedence)

	case exprtree.OpEquals:
		text := genMaybeProtect(a, MaxPrecedence) + ".Equals(" + b.Text + ")"
		return NewGoExpr(genNewBooleanData(text), TypeBoolean, MaxPrecedence)

	case exprtree.OpNotEquals:
		text := "!" + genMaybeProtect(a, MaxPrecedence) + ".Equals(" + b.Text + ")"
		return NewGoExpr(genNewBooleanData(text), TypeBoolean, MaxPrecedence)

	case exprtree.OpAnd:
		text := genCoerceBoolean(a) + " && " + genCoerceBoolean(b)
		return NewGoExpr(genNewBooleanData(text), TypeBoolean, MaxPrecedence)

	case exprtree.OpOr:
		text := genCoerceBoolean(a) + " || " + genCoerceBoolean(b)
		return NewGoExpr(genNewBooleanData(text), TypeBoolean, MaxPrecedence)
	}
	panic("unknown binary operator")
}

func relationalOp(op exprtree.Op) (goOp, runtimeFn string) {
	switch op {
	case exprtree.OpLess:
		return " < ", "soyutil.LessThan"
	case exprtree.OpGreater:
		return " > ", "soyutil.GreaterThan"
	case exprtree.OpLessEq:
		return " <= ", "soyutil.LessThanOrEqual"
	case exprtree.OpGreaterEq:
		return " >= ", "soyutil.GreaterThanOrEqual"
	}
	panic("not a relational operator")
}

// translateFunction lowers a function call: loop-metadata builtins resolve
// against synthetic scope bindings, hasData against the data parameter,
// and everything else against the plugin registry.
func (t *exprTranslator) translateFunction(n *exprtree.FunctionNode) GoExpr {
	switch n.Name {
	case "isFirst", "isLast", "index":
		if len(n.Args) != 1 {
			raiseSyntaxErrorf("function %q called with %d arguments, expected 1 (in %q)", n.Name, len(n.Args), n.String())
		}
		return t.loopMetadata(n)
	case "hasData":
		if len(n.Args) != 0 {
			raiseSyntaxErrorf("function hasData takes no arguments (in %q)", n.String())
		}
		return NewGoExpr(genNewBooleanData("data != nil"), TypeBoolean, MaxPrecedence)
	}
	fn, ok := t.functions[n.Name]
	if !ok {
		raiseSyntaxErrorf("unknown function %q (in %q)", n.Name, n.String())
	}
	if !containsInt(fn.ValidArgSizes(), len(n.Args)) {
		raiseSyntaxErrorf("function %q called with %d arguments (in %q)", n.Name, len(n.Args), n.String())
	}
	args := make([]GoExpr, len(n.Args))
	for i, arg := range n.Args {
		args[i] = t.translate(arg)
	}
	result, err := fn.Apply(args)
	if err != nil {
		raiseWrappedSyntaxError("error in function call "+strconv.Quote(n.String()), err)
	}
	return result
}

func (t *exprTranslator) loopMetadata(n *exprtree.FunctionNode) GoExpr {
	ref, ok := n.Args[0].(*exprtree.DataRefNode)
	if !ok || ref.IsIjDataRef || len(ref.Access) != 1 {
		raiseSyntaxErrorf("function %q must be passed a foreach variable (in %q)", n.Name, n.String())
	}
	key, ok := ref.Access[0].(*exprtree.DataRefKeyNode)
	if !ok {
		raiseSyntaxErrorf("function %q must be passed a foreach variable (in %q)", n.Name, n.String())
	}
	var suffix string
	switch n.Name {
	case "isFirst":
		suffix = "__isFirst"
	case "isLast":
		suffix = "__isLast"
	case "index":
		suffix = "__index"
	}
	binding, bound := t.scope.lookup(key.Key + suffix)
	if !bound {
		raiseSyntaxErrorf("function %q: $%s is not a foreach variable in scope (in %q)", n.Name, key.Key, n.String())
	}
	return binding
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
