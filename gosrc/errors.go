package gosrc

import "fmt"

// SyntaxError reports a template problem found during code generation:
// an unknown function or directive, a wrong-arity call, or a construct the
// backend cannot compile. FilePath and TemplateName locate the problem once
// the generator has unwound to a node that knows them.
type SyntaxError struct {
	FilePath     string
	TemplateName string
	Msg          string
	Err          error
}

func (e *SyntaxError) Error() string {
	s := "syntax error"
	if e.FilePath != "" {
		s += " in file " + e.FilePath
	}
	if e.TemplateName != "" {
		s += ", template " + e.TemplateName
	}
	s += ": " + e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// raiseSyntaxErrorf aborts the current generation pass. The panic is
// recovered at the Generate boundary, where file and template context are
// attached; anything other than a *SyntaxError escaping there is a
// generator defect and propagates.
func raiseSyntaxErrorf(format string, args ...any) {
	panic(&SyntaxError{Msg: fmt.Sprintf(format, args...)})
}

func raiseWrappedSyntaxError(msg string, err error) {
	panic(&SyntaxError{Msg: msg, Err: err})
}
