package gosrc

import (
	"testing"
)

func TestIsAtomicText(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"5", true},
		{"-2.5", true},
		{`"abc"`, true},
		{`"a\"b"`, true},
		{"data", true},
		{"soyutil.NilDataInstance", true},
		{`soyutil.GetData(data, "name")`, true},
		{`greet(soyutil.AugmentData(data, soyutil.NewSoyMapDataFromArgs("a", b)))`, true},
		{"", false},
		{"a + b", false},
		{`"a" + b`, false},
		{`"a" "b"`, false},
		{"f(x)(y)", false},
		{"f(x) + g(y)", false},
		{"!x.Bool()", false},
	}
	for _, tt := range tests {
		if got := isAtomicText(tt.in); got != tt.want {
			t.Errorf("isAtomicText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCollapseParens(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(5)", "5"},
		{`("abc")`, `"abc"`},
		{"(data)", "data"},
		{`(soyutil.GetData(data, "name"))`, `soyutil.GetData(data, "name")`},
		{"(a + b)", "(a + b)"},
		{`("a" + b)`, `("a" + b)`},
		{"a + b", "a + b"},
	}
	for _, tt := range tests {
		if got := collapseParens(tt.in); got != tt.want {
			t.Errorf("collapseParens(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripCall(t *testing.T) {
	tests := []struct {
		text string
		fn   string
		want string
		ok   bool
	}{
		{`soyutil.NewIntegerData(5)`, "soyutil.NewIntegerData", "5", true},
		{`soyutil.NewStringData("a" + b)`, "soyutil.NewStringData", `("a" + b)`, true},
		{`soyutil.NewStringData(f(x))`, "soyutil.NewStringData", "f(x)", true},
		// fn(...) is only a prefix of a larger expression.
		{`soyutil.NewIntegerData(5).String()`, "soyutil.NewIntegerData", "", false},
		{`soyutil.NewIntegerData(a) + f(b)`, "soyutil.NewIntegerData", "", false},
		{`other.Wrapper(5)`, "soyutil.NewIntegerData", "", false},
	}
	for _, tt := range tests {
		got, ok := stripCall(tt.text, tt.fn)
		if got != tt.want || ok != tt.ok {
			t.Errorf("stripCall(%q, %q) = (%q, %v), want (%q, %v)", tt.text, tt.fn, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCoercionRoundTrips(t *testing.T) {
	// Constructing a typed value and coercing it back to its own
	// representation must reproduce the original text.
	tests := []struct {
		name    string
		expr    GoExpr
		coerce  func(GoExpr) string
		want    string
		rewrap  func(string) string
	}{
		{
			"integer",
			NewGoExpr(genNewIntegerData("5"), TypeInteger, MaxPrecedence),
			genIntegerValue, "5", genNewIntegerData,
		},
		{
			"float",
			NewGoExpr(genNewFloat64Data("1.5"), TypeFloat, MaxPrecedence),
			genFloat64Value, "1.5", genNewFloat64Data,
		},
		{
			"string",
			NewGoExpr(genNewStringData(`"hi"`), TypeString, MaxPrecedence),
			genCoerceString, `"hi"`, genNewStringData,
		},
		{
			"boolean",
			NewGoExpr(genNewBooleanData("true"), TypeBoolean, MaxPrecedence),
			genCoerceBoolean, "true", genNewBooleanData,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.coerce(tt.expr)
			if got != tt.want {
				t.Fatalf("coerced text = %q, want %q", got, tt.want)
			}
			if rewrapped := tt.rewrap(got); rewrapped != tt.expr.Text {
				t.Errorf("re-wrapped text = %q, want %q", rewrapped, tt.expr.Text)
			}
		})
	}
}

func TestCoercionOnUnknown(t *testing.T) {
	expr := NewGoExpr(`soyutil.GetData(data, "x")`, TypeUnknown, MaxPrecedence)
	if got := genCoerceString(expr); got != `soyutil.GetData(data, "x").String()` {
		t.Errorf("genCoerceString = %q", got)
	}
	if got := genCoerceBoolean(expr); got != `soyutil.GetData(data, "x").Bool()` {
		t.Errorf("genCoerceBoolean = %q", got)
	}
	if got := genNumberValue(expr); got != `soyutil.GetData(data, "x").NumberValue()` {
		t.Errorf("genNumberValue = %q", got)
	}
}

func TestGenNumberValue(t *testing.T) {
	tests := []struct {
		name string
		expr GoExpr
		want string
	}{
		{"intLiteral", NewGoExpr(genNewIntegerData("5"), TypeInteger, MaxPrecedence), "5"},
		{"negIntLiteral", NewGoExpr(genNewIntegerData("-5"), TypeInteger, MaxPrecedence), "-5"},
		{"intExpression", NewGoExpr(genNewIntegerData("a + b"), TypeInteger, MaxPrecedence), "float64(a + b)"},
		{"floatLiteral", NewGoExpr(genNewFloat64Data("1.5"), TypeFloat, MaxPrecedence), "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := genNumberValue(tt.expr); got != tt.want {
				t.Errorf("genNumberValue = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenMaybeProtect(t *testing.T) {
	low := NewGoExpr("a + b", TypeUnknown, 6)
	if got := genMaybeProtect(low, MaxPrecedence); got != "(a + b)" {
		t.Errorf("low precedence = %q", got)
	}
	high := NewGoExpr("f(x)", TypeUnknown, MaxPrecedence)
	if got := genMaybeProtect(high, MaxPrecedence); got != "f(x)" {
		t.Errorf("max precedence = %q", got)
	}
}
