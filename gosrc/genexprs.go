package gosrc

import (
	"strconv"

	"soyc-go/soytree"
)

// genGoExprs lowers one computable node into the expressions whose
// concatenation is its rendered output. Calling it on a node the
// computability checker rejected is a classifier/generator contract
// violation and panics.
func (g *codeGen) genGoExprs(n soytree.Node) []GoExpr {
	switch n := n.(type) {
	case *soytree.RawTextNode:
		return []GoExpr{NewGoExpr(genNewStringData(strconv.Quote(n.Text)), TypeString, MaxPrecedence)}
	case *soytree.PrintNode:
		return []GoExpr{g.genPrintExpr(n)}
	case *soytree.MsgHtmlTagNode:
		return g.genGoExprsForChildren(n)
	case *soytree.CssNode:
		return []GoExpr{g.genCssExpr(n)}
	case *soytree.CallNode:
		return []GoExpr{g.genCallExpr(n)}
	case *soytree.CallParamContentNode:
		return g.genGoExprsForChildren(n)
	}
	panic("node has no expression form; classifier and generator disagree")
}

func (g *codeGen) genGoExprsForChildren(parent soytree.ParentNode) []GoExpr {
	var exprs []GoExpr
	for _, child := range parent.Children() {
		exprs = append(exprs, g.genGoExprs(child)...)
	}
	return exprs
}

// genPrintExpr lowers a print statement: the value expression, then each
// directive in order, every step staying a single expression.
func (g *codeGen) genPrintExpr(n *soytree.PrintNode) GoExpr {
	expr := g.translator.translate(n.Expr)
	for _, d := range n.Directives {
		directive, ok := g.opts.Directives[d.Name]
		if !ok {
			raiseSyntaxErrorf("unknown print directive %q (in tag {%s})", d.Name, n.ExprText)
		}
		if !containsInt(directive.ValidArgSizes(), len(d.Args)) {
			raiseSyntaxErrorf("print directive %q called with %d arguments (in tag {%s})", d.Name, len(d.Args), n.ExprText)
		}
		args := make([]GoExpr, len(d.Args))
		for i, arg := range d.Args {
			args[i] = g.translator.translate(arg)
		}
		result, err := directive.Apply(expr, args)
		if err != nil {
			raiseWrappedSyntaxError("error in print directive "+d.Name+" (in tag {"+n.ExprText+"})", err)
		}
		expr = result
	}
	return expr
}

// genCssExpr lowers a {css} statement. The renaming map applies at compile
// time; selectors without an entry keep their literal text. A component
// expression prefixes the selector with "<component>-" at render time.
func (g *codeGen) genCssExpr(n *soytree.CssNode) GoExpr {
	selector := n.SelectorText
	if g.opts.CssRenamingMap != nil {
		if renamed, ok := g.opts.CssRenamingMap.Get(selector); ok {
			selector = renamed
		}
	}
	if n.ComponentNameExpr != nil {
		comp := g.translator.translate(n.ComponentNameExpr)
		text := genCoerceString(comp) + " + " + strconv.Quote("-"+selector)
		return NewGoExpr(genNewStringData(text), TypeString, MaxPrecedence)
	}
	return NewGoExpr(genNewStringData(strconv.Quote(selector)), TypeString, MaxPrecedence)
}
