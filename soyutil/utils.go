package soyutil

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// Lener is implemented by variants with a length (strings, lists, maps).
type Lener interface {
	Len() int
}

// Conditional is the runtime form of the ternary operator for operands whose
// static types cannot be reconciled at compile time. Both branches are
// already evaluated by the caller.
func Conditional(cond bool, iftrue SoyData, iffalse SoyData) SoyData {
	if cond {
		return iftrue
	}
	return iffalse
}

// BoolToInt maps false to 0 and true to 1, for indexing two-armed selection
// tables in generated code.
func BoolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func isStringish(a SoyData) bool {
	switch a.(type) {
	case StringData, *SanitizedContent:
		return true
	}
	return false
}

// Negative is the runtime form of unary minus for operands of unknown
// static type.
func Negative(a SoyData) SoyData {
	if a == nil {
		a = NilDataInstance
	}
	if i, ok := a.(IntegerData); ok {
		return NewIntegerData(-int(i))
	}
	return NewFloat64Data(-a.NumberValue())
}

// Plus is the runtime form of '+' for operands of unknown static type.
// String concatenation wins when either operand is a string; two integers
// stay integer; any other combination is float addition.
func Plus(a, b SoyData) SoyData {
	if a == nil {
		a = NilDataInstance
	}
	if b == nil {
		b = NilDataInstance
	}
	if isStringish(a) || isStringish(b) {
		return NewStringData(a.String() + b.String())
	}
	ai, aInt := a.(IntegerData)
	bi, bInt := b.(IntegerData)
	if aInt && bInt {
		return NewIntegerData(int(ai) + int(bi))
	}
	return NewFloat64Data(a.NumberValue() + b.NumberValue())
}

func Minus(a, b SoyData) SoyData {
	if a == nil {
		a = NilDataInstance
	}
	if b == nil {
		b = NilDataInstance
	}
	ai, aInt := a.(IntegerData)
	bi, bInt := b.(IntegerData)
	if aInt && bInt {
		return NewIntegerData(int(ai) - int(bi))
	}
	return NewFloat64Data(a.NumberValue() - b.NumberValue())
}

func Times(a, b SoyData) SoyData {
	if a == nil {
		a = NilDataInstance
	}
	if b == nil {
		b = NilDataInstance
	}
	ai, aInt := a.(IntegerData)
	bi, bInt := b.(IntegerData)
	if aInt && bInt {
		return NewIntegerData(int(ai) * int(bi))
	}
	return NewFloat64Data(a.NumberValue() * b.NumberValue())
}

// Divide always divides as floats; integer operands do not truncate.
func Divide(a, b SoyData) SoyData {
	if a == nil {
		a = NilDataInstance
	}
	if b == nil {
		b = NilDataInstance
	}
	return NewFloat64Data(a.NumberValue() / b.NumberValue())
}

func LessThan(a, b SoyData) BooleanData {
	if a == nil {
		a = NilDataInstance
	}
	if b == nil {
		b = NilDataInstance
	}
	return NewBooleanData(a.NumberValue() < b.NumberValue())
}

func GreaterThan(a, b SoyData) BooleanData {
	if a == nil {
		a = NilDataInstance
	}
	if b == nil {
		b = NilDataInstance
	}
	return NewBooleanData(a.NumberValue() > b.NumberValue())
}

func LessThanOrEqual(a, b SoyData) BooleanData {
	if a == nil {
		a = NilDataInstance
	}
	if b == nil {
		b = NilDataInstance
	}
	return NewBooleanData(a.NumberValue() <= b.NumberValue())
}

func GreaterThanOrEqual(a, b SoyData) BooleanData {
	if a == nil {
		a = NilDataInstance
	}
	if b == nil {
		b = NilDataInstance
	}
	return NewBooleanData(a.NumberValue() >= b.NumberValue())
}

// round implements half-away-from-zero rounding, matching the template
// language's round() builtin rather than math.Round's ties-to-even cousin
// in other runtimes.
func round(a float64) float64 {
	integral := math.Trunc(a)
	if math.Signbit(a) {
		if integral-0.5 >= a {
			return integral - 1
		}
		return integral
	}
	if integral+0.5 <= a {
		return integral + 1
	}
	return integral
}

func Round(a SoyData) SoyData {
	if a == nil {
		return NewFloat64Data(defaultFloat64Value())
	}
	return NewFloat64Data(round(a.NumberValue()))
}

// Round2 rounds to b decimal digits; negative b rounds to tens, hundreds,
// and so on.
func Round2(a, b SoyData) SoyData {
	if a == nil {
		a = NilDataInstance
	}
	if b == nil {
		b = NilDataInstance
	}
	multiplier := math.Pow10(b.IntegerValue())
	return NewFloat64Data(round(a.NumberValue()*multiplier) / multiplier)
}

// Min returns the numerically smaller operand, preserving its variant.
func Min(a, b SoyData) SoyData {
	if a == nil {
		a = NilDataInstance
	}
	if b == nil {
		b = NilDataInstance
	}
	if a.NumberValue() < b.NumberValue() {
		return a
	}
	return b
}

// Max returns the numerically larger operand, preserving its variant.
func Max(a, b SoyData) SoyData {
	if a == nil {
		a = NilDataInstance
	}
	if b == nil {
		b = NilDataInstance
	}
	if a.NumberValue() > b.NumberValue() {
		return a
	}
	return b
}

func Floor(a float64) SoyData {
	return NewFloat64Data(math.Floor(a))
}

func Ceiling(a float64) SoyData {
	return NewFloat64Data(math.Ceil(a))
}

// Len returns the length of a string, list, or map value, and 0 for
// anything else.
func Len(a SoyData) IntegerData {
	if a == nil {
		a = NilDataInstance
	}
	if l, ok := a.(Lener); ok {
		return NewIntegerData(l.Len())
	}
	return NewIntegerData(0)
}

func RandomInt(a int) IntegerData {
	return IntegerData(rand.Intn(a))
}

// GetData resolves a dotted path against a value tree. Path segments index
// maps by key and lists by decimal position. A missing key, an out-of-range
// index, or a traversal into a leaf yields null, never an error.
func GetData(data SoyData, key string) SoyData {
	if data == nil || key == "" {
		return NilDataInstance
	}
	keypart := key
	keyleft := ""
	if dotIndex := strings.Index(key, "."); dotIndex >= 0 {
		keypart = key[:dotIndex]
		keyleft = key[dotIndex+1:]
	}
	var v SoyData
	switch d := data.(type) {
	case SoyListData:
		index, err := strconv.Atoi(keypart)
		if err != nil {
			return NilDataInstance
		}
		v = d.At(index)
	case SoyMapData:
		var found bool
		v, found = d[keypart]
		if !found {
			return NilDataInstance
		}
	default:
		return NilDataInstance
	}
	if keyleft == "" {
		return v
	}
	return GetData(v, keyleft)
}

// AugmentData combines ambient call data with explicit call params. Params
// win on key collision. Neither input map is modified.
func AugmentData(a, b SoyMapData) SoyMapData {
	m := make(SoyMapData, len(a)+len(b))
	for k, v := range a {
		m[k] = v
	}
	for k, v := range b {
		m[k] = v
	}
	return m
}
