package gosrc

import (
	"strings"
)

// maxIndentDepth bounds block nesting in generated code. Exceeding it, or
// dedenting below zero, means the generator's push/pop bookkeeping is
// broken; both are defects, not template errors.
const maxIndentDepth = 20

type outputVar struct {
	name        string
	initialized bool
}

// codeBuilder accumulates the generated source of one file and tracks the
// current indent level and the stack of output accumulators.
type codeBuilder struct {
	buf        strings.Builder
	indent     int
	codeStyle  CodeStyle
	outputVars []outputVar
}

func newCodeBuilder(codeStyle CodeStyle) *codeBuilder {
	return &codeBuilder{codeStyle: codeStyle}
}

func (b *codeBuilder) increaseIndent() {
	if b.indent+1 > maxIndentDepth {
		panic("generated code nesting exceeds maximum indent depth")
	}
	b.indent++
}

func (b *codeBuilder) decreaseIndent() {
	if b.indent == 0 {
		panic("generated code indent dropped below zero")
	}
	b.indent--
}

func (b *codeBuilder) appendLine(parts ...string) {
	b.buf.WriteString(strings.Repeat("\t", b.indent))
	for _, p := range parts {
		b.buf.WriteString(p)
	}
	b.buf.WriteString("\n")
}

func (b *codeBuilder) appendBlankLine() {
	b.buf.WriteString("\n")
}

// pushOutputVar makes name the current accumulator. The variable does not
// exist in the generated code until its first assignment or an explicit
// initOutputVarIfNecessary.
func (b *codeBuilder) pushOutputVar(name string) {
	b.outputVars = append(b.outputVars, outputVar{name: name})
}

func (b *codeBuilder) popOutputVar() {
	if len(b.outputVars) == 0 {
		panic("output var pop without matching push")
	}
	b.outputVars = b.outputVars[:len(b.outputVars)-1]
}

func (b *codeBuilder) currentOutputVar() string {
	if len(b.outputVars) == 0 {
		panic("no current output var")
	}
	return b.outputVars[len(b.outputVars)-1].name
}

// setOutputVarInited records that the current accumulator already exists in
// the generated code, e.g. because it is a function parameter.
func (b *codeBuilder) setOutputVarInited() {
	if len(b.outputVars) == 0 {
		panic("no current output var")
	}
	b.outputVars[len(b.outputVars)-1].initialized = true
}

func (b *codeBuilder) outputVarInited() bool {
	if len(b.outputVars) == 0 {
		panic("no current output var")
	}
	return b.outputVars[len(b.outputVars)-1].initialized
}

// initOutputVarIfNecessary declares the current accumulator empty if
// nothing has assigned it yet.
func (b *codeBuilder) initOutputVarIfNecessary() {
	if b.outputVarInited() {
		return
	}
	name := b.currentOutputVar()
	if b.codeStyle == CodeStyleConcat {
		b.appendLine(name, ` := ""`)
	} else {
		b.appendLine(name, " := bytes.NewBuffer(make([]byte, 0, DEFAULT_BUFFER_SIZE_IN_BYTES))")
	}
	b.setOutputVarInited()
}

// addToOutputVar appends a batch of lowered expressions to the current
// accumulator: one concatenation statement in concat style, one WriteString
// per expression in stringbuilder style.
func (b *codeBuilder) addToOutputVar(exprs []GoExpr) {
	if len(exprs) == 0 {
		return
	}
	name := b.currentOutputVar()
	if b.codeStyle == CodeStyleConcat {
		concat := concatTexts(exprs)
		if b.outputVarInited() {
			b.appendLine(name, " += ", concat)
		} else {
			b.appendLine(name, " := ", concat)
			b.setOutputVarInited()
		}
		return
	}
	b.initOutputVarIfNecessary()
	for _, expr := range exprs {
		b.appendLine(name, ".WriteString(", genCoerceString(expr), ")")
	}
}

func (b *codeBuilder) code() string {
	return b.buf.String()
}
