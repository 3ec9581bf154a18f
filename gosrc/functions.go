package gosrc

// Function is a pluggable template function. Apply receives the lowered
// arguments and returns the lowered call; an error is re-wrapped by the
// generator as a syntax error carrying the call's source text.
type Function interface {
	Name() string
	ValidArgSizes() []int
	Apply(args []GoExpr) (GoExpr, error)
}

type funcImpl struct {
	name  string
	sizes []int
	apply func(args []GoExpr) (GoExpr, error)
}

func (f *funcImpl) Name() string         { return f.name }
func (f *funcImpl) ValidArgSizes() []int { return f.sizes }

func (f *funcImpl) Apply(args []GoExpr) (GoExpr, error) {
	return f.apply(args)
}

var builtinFunctions = map[string]Function{
	"length": &funcImpl{
		name:  "length",
		sizes: []int{1},
		apply: func(args []GoExpr) (GoExpr, error) {
			return NewGoExpr("soyutil.Len("+args[0].Text+")", TypeInteger, MaxPrecedence), nil
		},
	},
	"round": &funcImpl{
		name:  "round",
		sizes: []int{1, 2},
		apply: func(args []GoExpr) (GoExpr, error) {
			if len(args) == 2 {
				return NewGoExpr("soyutil.Round2("+args[0].Text+", "+args[1].Text+")", TypeFloat, MaxPrecedence), nil
			}
			return NewGoExpr("soyutil.Round("+args[0].Text+")", TypeFloat, MaxPrecedence), nil
		},
	},
	"floor": &funcImpl{
		name:  "floor",
		sizes: []int{1},
		apply: func(args []GoExpr) (GoExpr, error) {
			return NewGoExpr("soyutil.Floor("+genNumberValue(args[0])+")", TypeFloat, MaxPrecedence), nil
		},
	},
	"ceiling": &funcImpl{
		name:  "ceiling",
		sizes: []int{1},
		apply: func(args []GoExpr) (GoExpr, error) {
			return NewGoExpr("soyutil.Ceiling("+genNumberValue(args[0])+")", TypeFloat, MaxPrecedence), nil
		},
	},
	"min": &funcImpl{
		name:  "min",
		sizes: []int{2},
		apply: func(args []GoExpr) (GoExpr, error) {
			return NewGoExpr("soyutil.Min("+args[0].Text+", "+args[1].Text+")", TypeNumber, MaxPrecedence), nil
		},
	},
	"max": &funcImpl{
		name:  "max",
		sizes: []int{2},
		apply: func(args []GoExpr) (GoExpr, error) {
			return NewGoExpr("soyutil.Max("+args[0].Text+", "+args[1].Text+")", TypeNumber, MaxPrecedence), nil
		},
	},
	"randomInt": &funcImpl{
		name:  "randomInt",
		sizes: []int{1},
		apply: func(args []GoExpr) (GoExpr, error) {
			return NewGoExpr("soyutil.RandomInt("+genIntegerValue(args[0])+")", TypeInteger, MaxPrecedence), nil
		},
	},
}
