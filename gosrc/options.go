package gosrc

// CodeStyle selects the output-accumulator strategy for generated
// templates.
type CodeStyle int

const (
	// CodeStyleConcat accumulates output in a string with +=. Wholly
	// expressible templates compile to a single return expression.
	CodeStyleConcat CodeStyle = iota

	// CodeStyleStringbuilder accumulates output in a *bytes.Buffer that is
	// threaded through template calls.
	CodeStyleStringbuilder
)

// CssRenamingMap resolves a CSS class name at compile time. Selectors the
// map has no entry for fall back to their literal text.
type CssRenamingMap interface {
	Get(selector string) (string, bool)
}

// Options configures one Generate run.
type Options struct {
	CodeStyle CodeStyle

	// SoyutilImportPath is the import path generated files use for the
	// runtime library.
	SoyutilImportPath string

	// CalleeImportBase is prefixed to the slash-form of an external callee's
	// namespace to form its import path.
	CalleeImportBase string

	// CssRenamingMap renames {css} selectors. Nil leaves selectors as
	// written.
	CssRenamingMap CssRenamingMap

	// Functions maps plugin function names to implementations, in addition
	// to the builtins.
	Functions map[string]Function

	// Directives maps print directive names to implementations, in addition
	// to the builtins.
	Directives map[string]PrintDirective
}

const defaultSoyutilImportPath = "soyc-go/soyutil"

// resolved merges opts with defaults and the builtin registries into the
// lookup tables the generator uses. Caller-supplied entries shadow
// builtins of the same name.
func (o *Options) resolved() *Options {
	r := &Options{}
	if o != nil {
		*r = *o
	}
	if r.SoyutilImportPath == "" {
		r.SoyutilImportPath = defaultSoyutilImportPath
	}
	functions := make(map[string]Function, len(builtinFunctions)+len(r.Functions))
	for name, fn := range builtinFunctions {
		functions[name] = fn
	}
	for name, fn := range r.Functions {
		functions[name] = fn
	}
	r.Functions = functions
	directives := make(map[string]PrintDirective, len(builtinDirectives)+len(r.Directives))
	for name, d := range builtinDirectives {
		directives[name] = d
	}
	for name, d := range r.Directives {
		directives[name] = d
	}
	r.Directives = directives
	return r
}
