package gosrc

// PrintDirective is a pluggable |directive applied to a print statement's
// value. Apply receives the lowered value and the lowered directive
// arguments; an error is re-wrapped as a syntax error carrying the print
// tag's source text.
type PrintDirective interface {
	Name() string
	ValidArgSizes() []int
	Apply(value GoExpr, args []GoExpr) (GoExpr, error)
}

type directiveImpl struct {
	name  string
	sizes []int
	apply func(value GoExpr, args []GoExpr) (GoExpr, error)
}

func (d *directiveImpl) Name() string         { return d.name }
func (d *directiveImpl) ValidArgSizes() []int { return d.sizes }

func (d *directiveImpl) Apply(value GoExpr, args []GoExpr) (GoExpr, error) {
	return d.apply(value, args)
}

// escapingDirective wraps the value in a kind-aware runtime escaping call.
func escapingDirective(name, runtimeFn string) PrintDirective {
	return &directiveImpl{
		name:  name,
		sizes: []int{0},
		apply: func(value GoExpr, args []GoExpr) (GoExpr, error) {
			return NewGoExpr(genNewStringData(runtimeFn+"("+value.Text+")"), TypeString, MaxPrecedence), nil
		},
	}
}

func identityDirective(name string) PrintDirective {
	return &directiveImpl{
		name:  name,
		sizes: []int{0},
		apply: func(value GoExpr, args []GoExpr) (GoExpr, error) {
			return value, nil
		},
	}
}

var builtinDirectives = map[string]PrintDirective{
	"|escapeHtml":        escapingDirective("|escapeHtml", "soyutil.EscapeHtmlData"),
	"|escapeJsString":    escapingDirective("|escapeJsString", "soyutil.EscapeJsStringData"),
	"|escapeUri":         escapingDirective("|escapeUri", "soyutil.EscapeUriData"),
	"|changeNewlineToBr": escapingDirective("|changeNewlineToBr", "soyutil.ChangeNewlineToBrData"),
	"|id":                identityDirective("|id"),
	"|noAutoescape":      identityDirective("|noAutoescape"),
	"|insertWordBreaks": &directiveImpl{
		name:  "|insertWordBreaks",
		sizes: []int{1},
		apply: func(value GoExpr, args []GoExpr) (GoExpr, error) {
			text := "soyutil.InsertWordBreaksData(" + value.Text + ", " + genIntegerValue(args[0]) + ")"
			return NewGoExpr(genNewStringData(text), TypeString, MaxPrecedence), nil
		},
	},
}
