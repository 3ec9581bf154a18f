package gosrc

// scopeStack maps template variable names to the lowered expressions that
// read them, in a stack of frames. A frame is pushed on entry to any
// block-scoped construct and popped on exit; lookups scan innermost first.
// Synthetic loop-metadata names (<var>__isFirst, <var>__isLast,
// <var>__index) live in the same frames as their loop variable.
type scopeStack struct {
	frames []map[string]GoExpr
}

func newScopeStack() *scopeStack {
	return &scopeStack{}
}

func (s *scopeStack) push() {
	s.frames = append(s.frames, make(map[string]GoExpr))
}

func (s *scopeStack) pop() {
	if len(s.frames) == 0 {
		panic("scope pop without matching push")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// bind records name in the innermost frame.
func (s *scopeStack) bind(name string, expr GoExpr) {
	if len(s.frames) == 0 {
		panic("scope bind without a frame")
	}
	s.frames[len(s.frames)-1][name] = expr
}

func (s *scopeStack) lookup(name string) (GoExpr, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if expr, ok := s.frames[i][name]; ok {
			return expr, true
		}
	}
	return GoExpr{}, false
}

func (s *scopeStack) depth() int {
	return len(s.frames)
}
