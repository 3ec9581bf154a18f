package gosrc

import (
	"regexp"
	"strings"
)

// Helpers that build fragments of generated Go source around the runtime
// library. The coercion helpers strip a matching constructor wrapper
// instead of stacking an accessor call on top of it, so coercing a value
// back to its own type reproduces the original text.

var numberLiteralRe = regexp.MustCompile(`^-?[0-9]+(?:\.[0-9]+)?$`)

// collapseParens removes the outer parentheses from "(X)" when X is
// atomic: a number, a string literal, an identifier chain, or a single
// call expression.
func collapseParens(text string) string {
	if len(text) < 2 || text[0] != '(' || text[len(text)-1] != ')' {
		return text
	}
	if inner := text[1 : len(text)-1]; isAtomicText(inner) {
		return inner
	}
	return text
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '.' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// isAtomicText reports whether s is self-contained at maximal precedence:
// a numeric literal, one string literal, an identifier chain, or an
// identifier chain applied to one balanced argument list that spans the
// rest of the text.
func isAtomicText(s string) bool {
	if s == "" {
		return false
	}
	if numberLiteralRe.MatchString(s) {
		return true
	}
	if s[0] == '"' {
		return isOneStringLiteral(s)
	}
	i := 0
	for i < len(s) && isIdentChar(s[i]) {
		i++
	}
	if i == 0 {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != '(' {
		return false
	}
	depth := 0
	inString := false
	escaped := false
	for j := i; j < len(s); j++ {
		c := s[j]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j == len(s)-1
			}
		}
	}
	return false
}

func isOneStringLiteral(s string) bool {
	if len(s) < 2 || s[0] != '"' {
		return false
	}
	escaped := false
	for j := 1; j < len(s); j++ {
		switch {
		case escaped:
			escaped = false
		case s[j] == '\\':
			escaped = true
		case s[j] == '"':
			return j == len(s)-1
		}
	}
	return false
}

// isBalanced reports whether parentheses in text nest properly, ignoring
// parens inside string literals.
func isBalanced(text string) bool {
	depth := 0
	inString := false
	escaped := false
	for _, r := range text {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0 && !inString
}

// stripCall unwraps "fn(X)" into "(X)" (collapsed when X is atomic). The
// unwrap is refused when X is not parenthesis-balanced, which happens when
// fn(...) is merely a prefix of a larger expression.
func stripCall(text, fn string) (string, bool) {
	prefix := fn + "("
	if !strings.HasPrefix(text, prefix) || !strings.HasSuffix(text, ")") {
		return "", false
	}
	inner := text[len(prefix) : len(text)-1]
	if !isBalanced(inner) {
		return "", false
	}
	return collapseParens("(" + inner + ")"), true
}

func genMaybeProtect(expr GoExpr, minSafePrecedence int) string {
	if expr.Precedence >= minSafePrecedence {
		return expr.Text
	}
	return "(" + expr.Text + ")"
}

func genNewBooleanData(inner string) string {
	return "soyutil.NewBooleanData(" + inner + ")"
}

func genNewIntegerData(inner string) string {
	return "soyutil.NewIntegerData(" + inner + ")"
}

func genNewFloat64Data(inner string) string {
	return "soyutil.NewFloat64Data(" + inner + ")"
}

func genNewStringData(inner string) string {
	return "soyutil.NewStringData(" + inner + ")"
}

// genCoerceBoolean produces Go source evaluating to a bool.
func genCoerceBoolean(expr GoExpr) string {
	if expr.Type == TypeBoolean {
		if inner, ok := stripCall(expr.Text, "soyutil.NewBooleanData"); ok {
			return inner
		}
	}
	return genMaybeProtect(expr, MaxPrecedence) + ".Bool()"
}

// genCoerceString produces Go source evaluating to a string.
func genCoerceString(expr GoExpr) string {
	if expr.Type == TypeString {
		if inner, ok := stripCall(expr.Text, "soyutil.NewStringData"); ok {
			return inner
		}
	}
	return genMaybeProtect(expr, MaxPrecedence) + ".String()"
}

// genIntegerValue produces Go source evaluating to an int. The expression
// must be statically known to be an integer.
func genIntegerValue(expr GoExpr) string {
	if expr.Type == TypeInteger {
		if inner, ok := stripCall(expr.Text, "soyutil.NewIntegerData"); ok {
			return inner
		}
	}
	return genMaybeProtect(expr, MaxPrecedence) + ".IntegerValue()"
}

// genFloat64Value produces Go source evaluating to a float64 from a
// statically-known float.
func genFloat64Value(expr GoExpr) string {
	if expr.Type == TypeFloat {
		if inner, ok := stripCall(expr.Text, "soyutil.NewFloat64Data"); ok {
			return inner
		}
	}
	return genMaybeProtect(expr, MaxPrecedence) + ".Float64Value()"
}

var intLiteralRe = regexp.MustCompile(`^-?[0-9]+$`)

// genNumberValue produces Go source evaluating to a float64 (or an untyped
// numeric constant) from any numeric expression. Non-literal integer text
// is converted so it can mix with float operands.
func genNumberValue(expr GoExpr) string {
	switch expr.Type {
	case TypeInteger:
		if inner, ok := stripCall(expr.Text, "soyutil.NewIntegerData"); ok {
			if intLiteralRe.MatchString(inner) {
				return inner
			}
			return "float64" + collapseOrWrap(inner)
		}
	case TypeFloat:
		if inner, ok := stripCall(expr.Text, "soyutil.NewFloat64Data"); ok {
			return inner
		}
	}
	return genMaybeProtect(expr, MaxPrecedence) + ".NumberValue()"
}

// collapseOrWrap returns inner wrapped in exactly one pair of parentheses.
func collapseOrWrap(inner string) string {
	if strings.HasPrefix(inner, "(") && strings.HasSuffix(inner, ")") && isBalanced(inner[1:len(inner)-1]) {
		return inner
	}
	return "(" + inner + ")"
}
