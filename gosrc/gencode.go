package gosrc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"soyc-go/soytree"
)

// codeGen walks one file set and emits Go source, batching runs of
// consecutive expressible siblings into single append statements and
// descending into full statement emission for everything else. One
// instance serves one Generate call; its scope stack, accumulator stack,
// and classifier cache are not shareable.
type codeGen struct {
	opts        *Options
	checker     *computableChecker
	builder     *codeBuilder
	scope       *scopeStack
	translator  *exprTranslator
	currentFile *soytree.SoyFileNode

	// extImports maps package alias to import path for cross-namespace
	// callees of the file being generated.
	extImports map[string]string
}

func newCodeGen(opts *Options) *codeGen {
	scope := newScopeStack()
	return &codeGen{
		opts:       opts,
		checker:    newComputableChecker(opts.CodeStyle),
		scope:      scope,
		translator: newExprTranslator(scope, opts.Functions),
	}
}

func (g *codeGen) generateFile(file *soytree.SoyFileNode) FileCode {
	g.currentFile = file
	g.extImports = make(map[string]string)
	g.builder = newCodeBuilder(g.opts.CodeStyle)
	for i, t := range file.Templates {
		if i > 0 {
			g.builder.appendBlankLine()
		}
		g.generateTemplate(file, t)
	}
	return FileCode{
		Namespace: file.Namespace,
		FilePath:  file.FilePath,
		Code:      g.genFileHeader(file) + g.builder.code(),
	}
}

func (g *codeGen) genFileHeader(file *soytree.SoyFileNode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated from %s. DO NOT EDIT.\n\n", file.FilePath)
	segments := strings.Split(file.Namespace, ".")
	fmt.Fprintf(&b, "package %s\n\n", segments[len(segments)-1])

	b.WriteString("import (\n")
	if g.opts.CodeStyle == CodeStyleStringbuilder {
		b.WriteString("\t\"bytes\"\n\n")
	}
	fmt.Fprintf(&b, "\t%s\n", strconv.Quote(g.opts.SoyutilImportPath))
	if len(g.extImports) > 0 {
		b.WriteString("\n")
		aliases := make([]string, 0, len(g.extImports))
		for alias := range g.extImports {
			aliases = append(aliases, alias)
		}
		sort.Strings(aliases)
		for _, alias := range aliases {
			fmt.Fprintf(&b, "\t%s %s\n", alias, strconv.Quote(g.extImports[alias]))
		}
	}
	b.WriteString(")\n\n")

	if g.opts.CodeStyle == CodeStyleStringbuilder {
		b.WriteString("const DEFAULT_BUFFER_SIZE_IN_BYTES = 8192\n\n")
	}
	return b.String()
}

func (g *codeGen) generateTemplate(file *soytree.SoyFileNode, t *soytree.TemplateNode) {
	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(*SyntaxError); ok {
				if se.FilePath == "" {
					se.FilePath = file.FilePath
				}
				if se.TemplateName == "" {
					se.TemplateName = t.TemplateName
				}
			}
			panic(r)
		}
	}()

	funcName := templateFuncName(t)
	g.scope.push()
	defer g.scope.pop()

	if g.opts.CodeStyle == CodeStyleStringbuilder {
		g.generateStringbuilderTemplate(t, funcName)
		return
	}

	g.builder.appendLine("func ", funcName, "(data soyutil.SoyMapData) string {")
	g.builder.increaseIndent()
	g.genNilDataDefault()

	if g.checker.isComputable(t) {
		// The whole body is one expression; no accumulator at all.
		g.builder.appendLine("return ", concatTexts(g.genGoExprsForChildren(t)))
	} else {
		g.builder.pushOutputVar("output")
		g.visitChildren(t)
		g.builder.initOutputVarIfNecessary()
		g.builder.appendLine("return output")
		g.builder.popOutputVar()
	}

	g.builder.decreaseIndent()
	g.builder.appendLine("}")
}

func (g *codeGen) generateStringbuilderTemplate(t *soytree.TemplateNode, funcName string) {
	if t.IsPrivate {
		// Private templates write into the caller's buffer and return
		// nothing.
		g.builder.appendLine("func ", funcName, "(data soyutil.SoyMapData, output *bytes.Buffer) {")
		g.builder.increaseIndent()
		g.genNilDataDefault()
		g.builder.pushOutputVar("output")
		g.builder.setOutputVarInited()
		g.visitChildren(t)
		g.builder.popOutputVar()
		g.builder.decreaseIndent()
		g.builder.appendLine("}")
		return
	}

	g.builder.appendLine("func ", funcName, "(data soyutil.SoyMapData, buf *bytes.Buffer) string {")
	g.builder.increaseIndent()
	g.genNilDataDefault()
	g.builder.appendLine("output := buf")
	g.builder.appendLine("if output == nil {")
	g.builder.increaseIndent()
	g.builder.appendLine("output = bytes.NewBuffer(make([]byte, 0, DEFAULT_BUFFER_SIZE_IN_BYTES))")
	g.builder.decreaseIndent()
	g.builder.appendLine("}")
	g.builder.pushOutputVar("output")
	g.builder.setOutputVarInited()
	g.visitChildren(t)
	g.builder.popOutputVar()
	g.builder.appendLine("return output.String()")
	g.builder.decreaseIndent()
	g.builder.appendLine("}")
}

func (g *codeGen) genNilDataDefault() {
	g.builder.appendLine("if data == nil {")
	g.builder.increaseIndent()
	g.builder.appendLine("data = soyutil.NewSoyMapData()")
	g.builder.decreaseIndent()
	g.builder.appendLine("}")
}

// visitChildren drives the batching traversal: consecutive expressible
// siblings accumulate into one append, non-expressible siblings flush the
// batch and emit statements. A statement child cannot perform the
// accumulator's first assignment, so the accumulator is declared first.
func (g *codeGen) visitChildren(parent soytree.ParentNode) {
	var batch []GoExpr
	for _, child := range parent.Children() {
		if g.checker.isComputable(child) {
			batch = append(batch, g.genGoExprs(child)...)
			continue
		}
		if len(batch) > 0 {
			g.builder.addToOutputVar(batch)
			batch = nil
		}
		if !g.checker.canInitOutputVar(child) {
			g.builder.initOutputVarIfNecessary()
		}
		g.visit(child)
	}
	if len(batch) > 0 {
		g.builder.addToOutputVar(batch)
	}
}

// visit emits statement code for one non-expressible node. The switch is
// exhaustive over the statement kinds that can appear in a block.
func (g *codeGen) visit(n soytree.Node) {
	switch n := n.(type) {
	case *soytree.IfNode:
		g.visitIf(n)
	case *soytree.SwitchNode:
		g.visitSwitch(n)
	case *soytree.ForeachNode:
		g.visitForeach(n)
	case *soytree.ForNode:
		g.visitFor(n)
	case *soytree.CallNode:
		g.visitCall(n)
	case *soytree.LetValueNode:
		g.scope.bind(n.VarName, g.translator.translate(n.ValueExpr))
	case *soytree.LetContentNode:
		g.visitLetContent(n)
	case *soytree.MsgHtmlTagNode:
		g.visitChildren(n)
	case *soytree.MsgNode:
		if n.IsPlrsel {
			raiseSyntaxErrorf("plural/select messages are not supported by this backend")
		}
		raiseSyntaxErrorf("msg nodes must be replaced by message substitution before code generation")
	default:
		panic("unexpected statement node; classifier and generator disagree")
	}
}

// visitIf emits a native if / else if / else chain. Even when every arm is
// itself expressible, the chain stays a statement; expression-level
// selection happens only inside expression lowering.
func (g *codeGen) visitIf(n *soytree.IfNode) {
	for i, cond := range n.Conds {
		condText := genCoerceBoolean(g.translator.translate(cond.Expr))
		if i == 0 {
			g.builder.appendLine("if ", condText, " {")
		} else {
			g.builder.appendLine("} else if ", condText, " {")
		}
		g.builder.increaseIndent()
		g.visitBlock(cond)
		g.builder.decreaseIndent()
	}
	if n.Else != nil {
		g.builder.appendLine("} else {")
		g.builder.increaseIndent()
		g.visitBlock(n.Else)
		g.builder.decreaseIndent()
	}
	g.builder.appendLine("}")
}

// visitSwitch evaluates the scrutinee once into a temporary, then emits a
// tagless switch whose case arms compare via Equals. Go evaluates the
// listed case values left to right and stops on the first match.
func (g *codeGen) visitSwitch(n *soytree.SwitchNode) {
	switchVar := fmt.Sprintf("switchValue__%d", n.ID())
	g.builder.appendLine(switchVar, " := ", g.translator.translate(n.Expr).Text)
	if len(n.Cases) == 0 && n.Default == nil {
		g.builder.appendLine("_ = ", switchVar)
		return
	}
	g.builder.appendLine("switch {")
	for _, c := range n.Cases {
		comparisons := make([]string, len(c.Exprs))
		for i, e := range c.Exprs {
			comparisons[i] = switchVar + ".Equals(" + g.translator.translate(e).Text + ")"
		}
		g.builder.appendLine("case ", strings.Join(comparisons, ", "), ":")
		g.builder.increaseIndent()
		g.visitBlock(c)
		g.builder.decreaseIndent()
	}
	if n.Default != nil {
		g.builder.appendLine("default:")
		g.builder.increaseIndent()
		g.visitBlock(n.Default)
		g.builder.decreaseIndent()
	}
	g.builder.appendLine("}")
}

// visitForeach lowers the list once, wraps the loop in a HasElements check
// when an {ifempty} branch exists, and iterates over list-element pointers
// so first/last flags come from neighbor nullness.
func (g *codeGen) visitForeach(n *soytree.ForeachNode) {
	id := n.ID()
	listVar := fmt.Sprintf("%sList__%d", n.VarName, id)
	g.builder.appendLine(listVar, " := soyutil.ToSoyListData(", g.translator.translate(n.Expr).Text, ")")

	if n.Ifempty != nil {
		g.builder.appendLine("if ", listVar, ".HasElements() {")
		g.builder.increaseIndent()
	}
	g.genForeachLoop(n, listVar)
	if n.Ifempty != nil {
		g.builder.decreaseIndent()
		g.builder.appendLine("} else {")
		g.builder.increaseIndent()
		g.visitBlock(n.Ifempty)
		g.builder.decreaseIndent()
		g.builder.appendLine("}")
	}
}

func (g *codeGen) genForeachLoop(n *soytree.ForeachNode, listVar string) {
	id := n.ID()
	indexVar := fmt.Sprintf("%sIndex__%d", n.VarName, id)
	elemVar := fmt.Sprintf("%sElem__%d", n.VarName, id)

	g.builder.appendLine(
		"for ", indexVar, ", ", elemVar, " := 0, ", listVar, ".Front(); ",
		elemVar, " != nil; ",
		indexVar, ", ", elemVar, " = ", indexVar, "+1, ", elemVar, ".Next() {",
	)
	g.builder.increaseIndent()

	g.withFrame(func() {
		g.scope.bind(n.VarName, NewGoExpr("soyutil.ToSoyDataNoErr("+elemVar+".Value)", TypeUnknown, MaxPrecedence))
		g.scope.bind(n.VarName+"__isFirst", NewGoExpr(genNewBooleanData(elemVar+".Prev() == nil"), TypeBoolean, MaxPrecedence))
		g.scope.bind(n.VarName+"__isLast", NewGoExpr(genNewBooleanData(elemVar+".Next() == nil"), TypeBoolean, MaxPrecedence))
		g.scope.bind(n.VarName+"__index", NewGoExpr(genNewIntegerData(indexVar), TypeInteger, MaxPrecedence))
		g.visitChildren(n.Nonempty)
	})

	g.builder.decreaseIndent()
	g.builder.appendLine("}")
}

// visitFor emits a native integer range loop. Each range argument is
// pre-evaluated into a temporary unless its lowered text is already an
// integer literal.
func (g *codeGen) visitFor(n *soytree.ForNode) {
	id := n.ID()
	initText, limitText, incrText := "0", "", "1"
	switch len(n.RangeArgs) {
	case 1:
		limitText = genIntegerValue(g.translator.translate(n.RangeArgs[0]))
	case 2:
		initText = genIntegerValue(g.translator.translate(n.RangeArgs[0]))
		limitText = genIntegerValue(g.translator.translate(n.RangeArgs[1]))
	case 3:
		initText = genIntegerValue(g.translator.translate(n.RangeArgs[0]))
		limitText = genIntegerValue(g.translator.translate(n.RangeArgs[1]))
		incrText = genIntegerValue(g.translator.translate(n.RangeArgs[2]))
	default:
		raiseSyntaxErrorf("range() in for loop over $%s takes 1 to 3 arguments, got %d", n.VarName, len(n.RangeArgs))
	}

	initText = g.precomputeRangeArg(initText, fmt.Sprintf("%sInit__%d", n.VarName, id))
	limitText = g.precomputeRangeArg(limitText, fmt.Sprintf("%sLimit__%d", n.VarName, id))
	incrText = g.precomputeRangeArg(incrText, fmt.Sprintf("%sIncrement__%d", n.VarName, id))

	loopVar := fmt.Sprintf("%s__%d", n.VarName, id)
	post := loopVar + " += " + incrText
	if incrText == "1" {
		post = loopVar + "++"
	}
	g.builder.appendLine("for ", loopVar, " := ", initText, "; ", loopVar, " < ", limitText, "; ", post, " {")
	g.builder.increaseIndent()

	g.withFrame(func() {
		g.scope.bind(n.VarName, NewGoExpr(genNewIntegerData(loopVar), TypeInteger, MaxPrecedence))
		g.visitChildren(n)
	})

	g.builder.decreaseIndent()
	g.builder.appendLine("}")
}

// precomputeRangeArg hoists a range argument into a named temporary so it
// is not re-evaluated on every loop tick; literal integers stay inline.
func (g *codeGen) precomputeRangeArg(text, tempName string) string {
	if intLiteralRe.MatchString(text) {
		return text
	}
	g.builder.appendLine(tempName, " := ", text)
	return tempName
}

// visitCall materializes any non-expressible content params into
// temporaries, then emits the call: appended to the accumulator in concat
// style, or invoked with the accumulator as the output argument in
// stringbuilder style.
func (g *codeGen) visitCall(n *soytree.CallNode) {
	for _, p := range n.Params {
		content, ok := p.(*soytree.CallParamContentNode)
		if !ok || g.checker.isComputable(content) {
			continue
		}
		g.builder.pushOutputVar(paramTempName(content))
		g.withFrame(func() {
			g.visitChildren(content)
			g.builder.initOutputVarIfNecessary()
		})
		g.builder.popOutputVar()
	}

	if g.opts.CodeStyle == CodeStyleConcat {
		g.builder.addToOutputVar([]GoExpr{g.genCallExpr(n)})
		return
	}
	callee := g.calleeRef(n.CalleeName)
	g.builder.appendLine(callee, "(", g.genObjToPass(n), ", ", g.builder.currentOutputVar(), ")")
}

// visitLetContent renders the block into a fresh accumulator and binds the
// serialized result as a string value under the declared name.
func (g *codeGen) visitLetContent(n *soytree.LetContentNode) {
	temp := fmt.Sprintf("%s__%d", n.VarName, n.ID())
	g.builder.pushOutputVar(temp)
	g.withFrame(func() {
		g.visitChildren(n)
		g.builder.initOutputVarIfNecessary()
	})
	g.builder.popOutputVar()

	value := temp
	if g.opts.CodeStyle == CodeStyleStringbuilder {
		value += ".String()"
	}
	g.scope.bind(n.VarName, NewGoExpr(genNewStringData(value), TypeString, MaxPrecedence))
}

// visitBlock runs a block-scoped child list inside its own scope frame.
func (g *codeGen) visitBlock(parent soytree.ParentNode) {
	g.withFrame(func() {
		g.visitChildren(parent)
	})
}

// withFrame brackets fn in a scope frame, popping on every exit path.
func (g *codeGen) withFrame(fn func()) {
	g.scope.push()
	defer g.scope.pop()
	fn()
}
