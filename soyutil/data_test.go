package soyutil

import (
	"testing"
)

func TestCoercionDefaults(t *testing.T) {
	tests := []struct {
		name string
		data SoyData
		str  string
		b    bool
		i    int
		f    float64
	}{
		{"nil", NilDataInstance, "null", false, 0, 0},
		{"booleanTrue", NewBooleanData(true), "true", true, 1, 1},
		{"booleanFalse", NewBooleanData(false), "false", false, 0, 0},
		{"integer", NewIntegerData(26), "26", true, 26, 26},
		{"float", NewFloat64Data(1.5), "1.5", true, 1, 1.5},
		{"string", NewStringData("xy"), "xy", true, 0, 0},
		{"emptyString", NewStringData(""), "", false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.data.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.data.Bool(); got != tt.b {
				t.Errorf("Bool() = %v, want %v", got, tt.b)
			}
			if got := tt.data.IntegerValue(); got != tt.i {
				t.Errorf("IntegerValue() = %d, want %d", got, tt.i)
			}
			if got := tt.data.NumberValue(); got != tt.f {
				t.Errorf("NumberValue() = %v, want %v", got, tt.f)
			}
		})
	}
}

func TestEquals(t *testing.T) {
	tests := []struct {
		name  string
		a     SoyData
		b     any
		equal bool
	}{
		{"nilVsNil", NilDataInstance, NilDataInstance, true},
		{"nilVsHostNil", NilDataInstance, nil, true},
		{"nilVsInt", NilDataInstance, NewIntegerData(0), false},
		{"intVsSameInt", NewIntegerData(5), NewIntegerData(5), true},
		{"intVsHostInt", NewIntegerData(5), 5, true},
		{"intVsFloat", NewIntegerData(5), NewFloat64Data(5.0), true},
		{"intVsOtherInt", NewIntegerData(5), NewIntegerData(6), false},
		{"intVsNil", NewIntegerData(0), NilDataInstance, false},
		{"stringVsSameString", NewStringData("a"), NewStringData("a"), true},
		{"stringVsHostString", NewStringData("a"), "a", true},
		{"stringVsOtherString", NewStringData("a"), NewStringData("b"), false},
		{"boolVsHostBool", NewBooleanData(true), true, true},
		{"listVsEqualList", NewSoyListDataFromArgs(1, "a"), NewSoyListDataFromArgs(1, "a"), true},
		{"listVsShorterList", NewSoyListDataFromArgs(1, "a"), NewSoyListDataFromArgs(1), false},
		{"listVsOtherList", NewSoyListDataFromArgs(1, "a"), NewSoyListDataFromArgs(1, "b"), false},
		{
			"listOfMaps",
			NewSoyListDataFromArgs(map[string]any{"k": 1}),
			NewSoyListDataFromArgs(map[string]any{"k": 1}),
			true,
		},
		{
			"listOfMapsVsOther",
			NewSoyListDataFromArgs(map[string]any{"k": 1}),
			NewSoyListDataFromArgs(map[string]any{"k": 2}),
			false,
		},
		{
			"mapWithNestedMap",
			SoyMapData{"m": SoyMapData{"k": NewIntegerData(1)}},
			SoyMapData{"m": SoyMapData{"k": NewIntegerData(1)}},
			true,
		},
		{
			"mapWithNestedMapVsOther",
			SoyMapData{"m": SoyMapData{"k": NewIntegerData(1)}},
			SoyMapData{"m": SoyMapData{"k": NewIntegerData(2)}},
			false,
		},
		{
			"mapWithNestedList",
			SoyMapData{"l": NewSoyListDataFromArgs(1, 2)},
			SoyMapData{"l": NewSoyListDataFromArgs(1, 2)},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.equal {
				t.Errorf("Equals = %v, want %v", got, tt.equal)
			}
		})
	}
}

func TestToSoyData(t *testing.T) {
	v, err := ToSoyData(map[string]any{"n": 1, "s": "x", "l": []any{true, 2.5}})
	if err != nil {
		t.Fatal(err)
	}
	m, ok := v.(SoyMapData)
	if !ok {
		t.Fatalf("got %T, want SoyMapData", v)
	}
	if got := m.Get("n"); !got.Equals(NewIntegerData(1)) {
		t.Errorf("n = %v", got)
	}
	if got := m.Get("s"); !got.Equals(NewStringData("x")) {
		t.Errorf("s = %v", got)
	}
	l, ok := m.Get("l").(SoyListData)
	if !ok {
		t.Fatalf("l is %T, want SoyListData", m.Get("l"))
	}
	if l.Len() != 2 || !l.At(0).Equals(NewBooleanData(true)) || !l.At(1).Equals(NewFloat64Data(2.5)) {
		t.Errorf("l = %v", l)
	}
}

func TestToSoyDataStruct(t *testing.T) {
	type point struct {
		X int
		Y int
	}
	v, err := ToSoyData(point{X: 1, Y: 2})
	if err != nil {
		t.Fatal(err)
	}
	m := v.(SoyMapData)
	if !m.Get("X").Equals(NewIntegerData(1)) || !m.Get("Y").Equals(NewIntegerData(2)) {
		t.Errorf("struct conversion = %v", m)
	}
}

func TestToSoyDataUnsupported(t *testing.T) {
	if _, err := ToSoyData(make(chan int)); err == nil {
		t.Fatal("expected classification error for channel value")
	}
}

func TestToSoyDataPassthrough(t *testing.T) {
	orig := NewStringData("keep")
	v, err := ToSoyData(orig)
	if err != nil {
		t.Fatal(err)
	}
	if v != SoyData(orig) {
		t.Errorf("SoyData input was not passed through: %v", v)
	}
}

func TestListElementIteration(t *testing.T) {
	l := NewSoyListDataFromArgs("a", "b", "c")
	var texts []string
	var firsts, lasts []bool
	var indexes []int
	for i, e := 0, l.Front(); e != nil; i, e = i+1, e.Next() {
		texts = append(texts, ToSoyDataNoErr(e.Value).String())
		firsts = append(firsts, e.Prev() == nil)
		lasts = append(lasts, e.Next() == nil)
		indexes = append(indexes, i)
	}
	if want := []string{"a", "b", "c"}; !equalSlices(texts, want) {
		t.Errorf("texts = %v, want %v", texts, want)
	}
	if want := []bool{true, false, false}; !equalSlices(firsts, want) {
		t.Errorf("isFirst flags = %v, want %v", firsts, want)
	}
	if want := []bool{false, false, true}; !equalSlices(lasts, want) {
		t.Errorf("isLast flags = %v, want %v", lasts, want)
	}
	if want := []int{0, 1, 2}; !equalSlices(indexes, want) {
		t.Errorf("indexes = %v, want %v", indexes, want)
	}
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
