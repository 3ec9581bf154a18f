package soyutil

import (
	"container/list"
	"fmt"
	"reflect"
	"strconv"
)

// NilDataInstance is the shared null value. Generated code references it
// directly instead of allocating.
var NilDataInstance = &NilData{}

// Equalser is implemented by values that define their own equality in the
// sense of the template language's '==' operator.
type Equalser interface {
	Equals(other any) bool
}

// SoyDataException reports a failed conversion from a host value into the
// SoyData tree. It is recoverable at the conversion call site.
type SoyDataException struct {
	msg string
}

func NewSoyDataException(msg string) *SoyDataException {
	return &SoyDataException{msg: msg}
}

func (e *SoyDataException) Error() string {
	return e.msg
}

// SoyData is the runtime representation of a template value. Coercions never
// fail: a variant that has no natural value for a coercion returns the
// type-appropriate zero value.
type SoyData interface {
	// String coerces this value into a string, as when the value is rendered.
	String() string

	// Bool coerces this value into a boolean, i.e. reports truthiness.
	Bool() bool

	// BooleanValue returns the boolean value of a boolean object, and false
	// for every other variant.
	BooleanValue() bool

	// IntegerValue returns the integer value of an integer object, and 0 for
	// every other variant.
	IntegerValue() int

	// Float64Value returns the float value of a float object, and 0 for
	// every other variant.
	Float64Value() float64

	// NumberValue returns the numeric value of an integer or float object,
	// converting integer to float as needed, and 0 for every other variant.
	NumberValue() float64

	// StringValue returns the string value of a string object, and "" for
	// every non-string variant (unlike String, it does not render).
	StringValue() string

	// Equals compares against another value in the sense of the template
	// language's '==' operator.
	Equals(other any) bool
}

func defaultBooleanValue() bool    { return false }
func defaultIntegerValue() int     { return 0 }
func defaultFloat64Value() float64 { return 0.0 }
func defaultNumberValue() float64  { return 0.0 }
func defaultStringValue() string   { return "" }

// NilData is the null variant.
type NilData struct{}

func (p NilData) BooleanValue() bool    { return false }
func (p NilData) IntegerValue() int     { return 0 }
func (p NilData) Float64Value() float64 { return 0.0 }
func (p NilData) NumberValue() float64  { return 0.0 }
func (p NilData) StringValue() string   { return "null" }
func (p NilData) String() string        { return "null" }
func (p NilData) Bool() bool            { return false }

func (p NilData) Equals(other any) bool {
	if other == nil {
		return true
	}
	switch other.(type) {
	case NilData, *NilData:
		return true
	}
	return false
}

// BooleanData is the boolean variant.
type BooleanData bool

func NewBooleanData(value bool) BooleanData {
	return BooleanData(value)
}

func (p BooleanData) Value() bool        { return bool(p) }
func (p BooleanData) BooleanValue() bool { return bool(p) }

func (p BooleanData) IntegerValue() int {
	if p {
		return 1
	}
	return 0
}

func (p BooleanData) Float64Value() float64 {
	if p {
		return 1
	}
	return 0
}

func (p BooleanData) NumberValue() float64 {
	if p {
		return 1
	}
	return 0
}

func (p BooleanData) StringValue() string { return p.String() }

func (p BooleanData) String() string {
	if p {
		return "true"
	}
	return "false"
}

func (p BooleanData) Bool() bool { return bool(p) }

func (p BooleanData) Equals(other any) bool {
	if other == nil {
		return false
	}
	switch o := other.(type) {
	case NilData, *NilData:
		return false
	case bool:
		return bool(p) == o
	case SoyData:
		return bool(p) == o.Bool()
	}
	return false
}

// IntegerData is the integer variant.
type IntegerData int

func NewIntegerData(value int) IntegerData {
	return IntegerData(value)
}

func (p IntegerData) Value() int            { return int(p) }
func (p IntegerData) BooleanValue() bool    { return int(p) != 0 }
func (p IntegerData) IntegerValue() int     { return int(p) }
func (p IntegerData) Float64Value() float64 { return float64(p) }
func (p IntegerData) NumberValue() float64  { return float64(p) }
func (p IntegerData) StringValue() string   { return p.String() }
func (p IntegerData) String() string        { return strconv.Itoa(int(p)) }
func (p IntegerData) Bool() bool            { return int(p) != 0 }

func (p IntegerData) Equals(other any) bool {
	if other == nil {
		return false
	}
	switch o := other.(type) {
	case NilData, *NilData:
		return false
	case int:
		return int(p) == o
	case int32:
		return int(p) == int(o)
	case int64:
		return int64(p) == o
	case float32:
		return float64(p) == float64(o)
	case float64:
		return float64(p) == o
	case IntegerData:
		return p == o
	case Float64Data:
		return float64(p) == float64(o)
	case SoyData:
		return float64(p) == o.NumberValue()
	}
	return false
}

// Float64Data is the float variant.
type Float64Data float64

func NewFloat64Data(value float64) Float64Data {
	return Float64Data(value)
}

func (p Float64Data) Value() float64        { return float64(p) }
func (p Float64Data) BooleanValue() bool    { return p != 0.0 }
func (p Float64Data) IntegerValue() int     { return int(p) }
func (p Float64Data) Float64Value() float64 { return float64(p) }
func (p Float64Data) NumberValue() float64  { return float64(p) }

func (p Float64Data) StringValue() string { return p.String() }

func (p Float64Data) String() string {
	return strconv.FormatFloat(float64(p), 'g', -1, 64)
}

func (p Float64Data) Bool() bool { return p != 0.0 }

func (p Float64Data) Equals(other any) bool {
	if other == nil {
		return false
	}
	switch o := other.(type) {
	case NilData, *NilData:
		return false
	case int:
		return float64(p) == float64(o)
	case int32:
		return float64(p) == float64(o)
	case int64:
		return float64(p) == float64(o)
	case float32:
		return float64(p) == float64(o)
	case float64:
		return float64(p) == o
	case SoyData:
		return float64(p) == o.NumberValue()
	}
	return false
}

// StringData is the string variant.
type StringData string

func NewStringData(value string) StringData {
	return StringData(value)
}

func (p StringData) Value() string         { return string(p) }
func (p StringData) BooleanValue() bool    { return defaultBooleanValue() }
func (p StringData) IntegerValue() int     { return defaultIntegerValue() }
func (p StringData) Float64Value() float64 { return defaultFloat64Value() }
func (p StringData) NumberValue() float64  { return defaultNumberValue() }
func (p StringData) StringValue() string   { return string(p) }
func (p StringData) String() string        { return string(p) }
func (p StringData) Bool() bool            { return len(p) > 0 }
func (p StringData) Len() int              { return len(p) }

func (p StringData) Equals(other any) bool {
	if other == nil {
		return false
	}
	switch o := other.(type) {
	case NilData, *NilData:
		return false
	case string:
		return string(p) == o
	case SoyData:
		return string(p) == o.StringValue()
	}
	return false
}

// SoyListData is the ordered-sequence variant. Iteration is over
// *list.Element so that generated loops can derive first/last flags from
// neighbor pointers.
type SoyListData interface {
	SoyData
	At(index int) SoyData
	Back() *list.Element
	Front() *list.Element
	HasElements() bool
	IsEmpty() bool
	Len() int
	PushBack(value SoyData) *list.Element
	PushBackList(ol SoyListData)
	PushFront(value SoyData) *list.Element
	Remove(e *list.Element) SoyData
}

type soyListData struct {
	l *list.List
}

func NewSoyListData() SoyListData {
	return &soyListData{l: list.New()}
}

// NewSoyListDataFromArgs builds a list converting each argument with
// ToSoyData. Unconvertible arguments become null elements.
func NewSoyListDataFromArgs(args ...any) SoyListData {
	l := list.New()
	for _, v := range args {
		s, _ := ToSoyData(v)
		l.PushBack(s)
	}
	return &soyListData{l: l}
}

func NewSoyListDataFromList(o *list.List) SoyListData {
	l := list.New()
	if o != nil {
		l.PushBackList(o)
	}
	return &soyListData{l: l}
}

func NewSoyListDataFromVector(o []SoyData) SoyListData {
	l := list.New()
	for _, v := range o {
		l.PushBack(v)
	}
	return &soyListData{l: l}
}

func (p *soyListData) Bool() bool            { return p.Len() > 0 }
func (p *soyListData) BooleanValue() bool    { return defaultBooleanValue() }
func (p *soyListData) IntegerValue() int     { return defaultIntegerValue() }
func (p *soyListData) Float64Value() float64 { return defaultFloat64Value() }
func (p *soyListData) NumberValue() float64  { return defaultNumberValue() }
func (p *soyListData) StringValue() string   { return p.String() }

func (p *soyListData) String() string {
	return fmt.Sprintf("[%#v]", p.l)
}

func (p *soyListData) Equals(other any) bool {
	if p == other {
		return true
	}
	o, ok := other.(SoyListData)
	if !ok {
		return false
	}
	if p.Len() != o.Len() {
		return false
	}
	for pe, oe := p.Front(), o.Front(); pe != nil && oe != nil; pe, oe = pe.Next(), oe.Next() {
		// Equality dispatch comes first: elements of uncomparable dynamic
		// type (maps, lists) would make == panic.
		if e, ok := pe.Value.(Equalser); ok {
			if !e.Equals(oe.Value) {
				return false
			}
			continue
		}
		if pe.Value != oe.Value {
			return false
		}
	}
	return true
}

func (p *soyListData) At(index int) SoyData {
	e := p.l.Front()
	for i := 0; i < index && e != nil; i++ {
		e = e.Next()
	}
	if e == nil {
		return NilDataInstance
	}
	return e.Value.(SoyData)
}

func (p *soyListData) Back() *list.Element  { return p.l.Back() }
func (p *soyListData) Front() *list.Element { return p.l.Front() }
func (p *soyListData) HasElements() bool    { return p.l.Len() > 0 }
func (p *soyListData) IsEmpty() bool        { return p.l.Len() == 0 }
func (p *soyListData) Len() int             { return p.l.Len() }

func (p *soyListData) PushBack(value SoyData) *list.Element {
	return p.l.PushBack(value)
}

func (p *soyListData) PushBackList(ol SoyListData) {
	if ol == nil {
		return
	}
	if osld, ok := ol.(*soyListData); ok {
		p.l.PushBackList(osld.l)
		return
	}
	for e := ol.Front(); e != nil; e = e.Next() {
		p.l.PushBack(e.Value)
	}
}

func (p *soyListData) PushFront(value SoyData) *list.Element {
	return p.l.PushFront(value)
}

func (p *soyListData) Remove(e *list.Element) SoyData {
	return p.l.Remove(e).(SoyData)
}

// SoyMapData is the string-keyed map variant.
type SoyMapData map[string]SoyData

func NewSoyMapData() SoyMapData {
	return make(SoyMapData)
}

// NewSoyMapDataFromArgs builds a map from alternating key, value arguments.
// Keys are converted with ToSoyData and rendered; values are converted with
// ToSoyData.
func NewSoyMapDataFromArgs(args ...any) SoyMapData {
	m := make(SoyMapData)
	var key string
	isKey := true
	for _, arg := range args {
		if isKey {
			sdk, err := ToSoyData(arg)
			if err != nil {
				return nil
			}
			key = sdk.String()
		} else {
			value, err := ToSoyData(arg)
			if err != nil {
				return nil
			}
			m[key] = value
		}
		isKey = !isKey
	}
	return m
}

func NewSoyMapDataFromGenericMap(o map[string]any) SoyMapData {
	m := make(SoyMapData)
	for key, v := range o {
		value, err := ToSoyData(v)
		if err != nil {
			return nil
		}
		m[key] = value
	}
	return m
}

func NewSoyMapDataFromMap(o map[string]SoyData) SoyMapData {
	return SoyMapData(o)
}

func (p SoyMapData) BooleanValue() bool    { return defaultBooleanValue() }
func (p SoyMapData) IntegerValue() int     { return defaultIntegerValue() }
func (p SoyMapData) Float64Value() float64 { return defaultFloat64Value() }
func (p SoyMapData) NumberValue() float64  { return defaultNumberValue() }
func (p SoyMapData) StringValue() string   { return defaultStringValue() }
func (p SoyMapData) Len() int              { return len(p) }
func (p SoyMapData) HasElements() bool     { return len(p) > 0 }
func (p SoyMapData) IsEmpty() bool         { return len(p) == 0 }
func (p SoyMapData) Bool() bool            { return len(p) > 0 }

func (p SoyMapData) Get(key string) SoyData {
	value, ok := p[key]
	if !ok {
		return NilDataInstance
	}
	return value
}

func (p SoyMapData) Contains(key string) bool {
	_, ok := p[key]
	return ok
}

func (p SoyMapData) Keys() []string {
	arr := make([]string, 0, len(p))
	for k := range p {
		arr = append(arr, k)
	}
	return arr
}

func (p SoyMapData) Set(key string, value SoyData) {
	p[key] = value
}

func (p SoyMapData) String() string {
	return fmt.Sprintf("%#v", map[string]SoyData(p))
}

func (p SoyMapData) Equals(other any) bool {
	if other == nil {
		return false
	}
	o, ok := other.(SoyMapData)
	if !ok {
		return false
	}
	if len(p) != len(o) {
		return false
	}
	for k, pv := range p {
		ov, found := o[k]
		if !found {
			return false
		}
		if pv == nil {
			if ov != nil {
				return false
			}
			continue
		}
		if !pv.Equals(ov) {
			return false
		}
	}
	return true
}

// ToBooleanData converts obj to the boolean variant, degrading to false for
// values with no boolean meaning.
func ToBooleanData(obj any) BooleanData {
	if obj == nil || obj == NilDataInstance {
		return NewBooleanData(false)
	}
	if o, ok := obj.(BooleanData); ok {
		return o
	}
	s := ToSoyDataNoErr(obj)
	if o, ok := s.(BooleanData); ok {
		return o
	}
	return NewBooleanData(s.BooleanValue())
}

func ToIntegerData(obj any) IntegerData {
	if obj == nil || obj == NilDataInstance {
		return NewIntegerData(0)
	}
	if o, ok := obj.(IntegerData); ok {
		return o
	}
	s := ToSoyDataNoErr(obj)
	if o, ok := s.(IntegerData); ok {
		return o
	}
	return NewIntegerData(s.IntegerValue())
}

func ToFloat64Data(obj any) Float64Data {
	if obj == nil || obj == NilDataInstance {
		return NewFloat64Data(0.0)
	}
	if o, ok := obj.(Float64Data); ok {
		return o
	}
	s := ToSoyDataNoErr(obj)
	if o, ok := s.(Float64Data); ok {
		return o
	}
	return NewFloat64Data(s.Float64Value())
}

func ToStringData(obj any) StringData {
	if obj == nil || obj == NilDataInstance {
		return NewStringData("")
	}
	if o, ok := obj.(StringData); ok {
		return o
	}
	s := ToSoyDataNoErr(obj)
	if o, ok := s.(StringData); ok {
		return o
	}
	return NewStringData(s.StringValue())
}

// ToSoyListData converts obj to the list variant, degrading to an empty list
// for anything that is not list shaped.
func ToSoyListData(obj any) SoyListData {
	if obj == nil || obj == NilDataInstance {
		return NewSoyListData()
	}
	if o, ok := obj.(SoyListData); ok {
		return o
	}
	s := ToSoyDataNoErr(obj)
	if o, ok := s.(SoyListData); ok {
		return o
	}
	return NewSoyListData()
}

// ToSoyMapData converts obj to the map variant, degrading to an empty map
// for anything that is not map shaped.
func ToSoyMapData(obj any) SoyMapData {
	if obj == nil || obj == NilDataInstance {
		return NewSoyMapData()
	}
	if o, ok := obj.(SoyMapData); ok {
		return o
	}
	s := ToSoyDataNoErr(obj)
	if o, ok := s.(SoyMapData); ok {
		return o
	}
	return NewSoyMapData()
}

// ToSoyDataNoErr is ToSoyData with the classification error discarded;
// unconvertible values become null.
func ToSoyDataNoErr(obj any) SoyData {
	s, _ := ToSoyData(obj)
	return s
}

// ToSoyData converts an arbitrary host value, or tree of host values, into
// the equivalent SoyData tree. SoyData inputs pass through unchanged.
// Primitives map onto the matching variant; slices, arrays, maps, and
// structs are converted recursively. Anything else yields a
// *SoyDataException.
func ToSoyData(obj any) (SoyData, error) {
	if obj == nil {
		return NilDataInstance, nil
	}
	switch o := obj.(type) {
	case SoyData:
		return o, nil
	case string:
		return NewStringData(o), nil
	case bool:
		return NewBooleanData(o), nil
	case uint:
		return NewIntegerData(int(o)), nil
	case int:
		return NewIntegerData(o), nil
	case int32:
		return NewIntegerData(int(o)), nil
	case int64:
		return NewIntegerData(int(o)), nil
	case float32:
		return NewFloat64Data(float64(o)), nil
	case float64:
		return NewFloat64Data(o), nil
	case *list.List:
		return NewSoyListDataFromList(o), nil
	case []SoyData:
		return NewSoyListDataFromVector(o), nil
	}
	rv := reflect.ValueOf(obj)
	switch rv.Kind() {
	case reflect.Array, reflect.Slice:
		l := NewSoyListData()
		for i := 0; i < rv.Len(); i++ {
			sv, err := ToSoyData(rv.Index(i).Interface())
			if err != nil {
				return NilDataInstance, err
			}
			l.PushBack(sv)
		}
		return l, nil
	case reflect.Map:
		m := NewSoyMapData()
		if !rv.IsNil() {
			for _, key := range rv.MapKeys() {
				var k string
				switch kv := key.Interface().(type) {
				case string:
					k = kv
				case fmt.Stringer:
					k = kv.String()
				default:
					s, err := ToSoyData(key.Interface())
					if err != nil {
						return NilDataInstance, err
					}
					k = s.String()
				}
				sv, err := ToSoyData(rv.MapIndex(key).Interface())
				if err != nil {
					return NilDataInstance, err
				}
				m.Set(k, sv)
			}
		}
		return m, nil
	case reflect.Struct:
		m := NewSoyMapData()
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if f.PkgPath != "" {
				continue
			}
			v, err := ToSoyData(rv.Field(i).Interface())
			if err != nil {
				return NilDataInstance, err
			}
			m.Set(f.Name, v)
		}
		return m, nil
	}
	msg := fmt.Sprintf("cannot convert value of type %T to soy data", obj)
	return NilDataInstance, NewSoyDataException(msg)
}
