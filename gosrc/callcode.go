package gosrc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"soyc-go/soytree"
)

// genCallExpr lowers a concat-style call into a String-typed expression.
// Only valid when the computability checker accepted the call, i.e. every
// content param is itself expressible.
func (g *codeGen) genCallExpr(n *soytree.CallNode) GoExpr {
	callee := g.calleeRef(n.CalleeName)
	text := callee + "(" + g.genObjToPass(n) + ")"
	return NewGoExpr(genNewStringData(text), TypeString, MaxPrecedence)
}

// genObjToPass builds the data-object expression for a call: ambient data,
// an explicit data expression, explicit params, a merge of data and
// params, or nil when the call passes nothing.
func (g *codeGen) genObjToPass(n *soytree.CallNode) string {
	dataText := ""
	if n.IsPassingAllData {
		dataText = "data"
	} else if n.IsPassingData && n.DataExpr != nil {
		dataText = "soyutil.ToSoyMapData(" + g.translator.translate(n.DataExpr).Text + ")"
	}

	if len(n.Params) == 0 {
		if dataText == "" {
			return "nil"
		}
		return dataText
	}

	pairs := make([]string, 0, 2*len(n.Params))
	for _, p := range n.Params {
		switch p := p.(type) {
		case *soytree.CallParamValueNode:
			pairs = append(pairs, strconv.Quote(p.Key), g.translator.translate(p.ValueExpr).Text)
		case *soytree.CallParamContentNode:
			if g.checker.isComputable(p) {
				pairs = append(pairs, strconv.Quote(p.Key), concatGoExprs(g.genGoExprsForChildren(p)).Text)
				continue
			}
			// Materialized by the statement generator before the call.
			temp := paramTempName(p)
			if g.opts.CodeStyle == CodeStyleStringbuilder {
				temp += ".String()"
			}
			pairs = append(pairs, strconv.Quote(p.Key), temp)
		default:
			panic("unknown call param node")
		}
	}
	paramsText := "soyutil.NewSoyMapDataFromArgs(" + strings.Join(pairs, ", ") + ")"
	if dataText == "" {
		return paramsText
	}
	return "soyutil.AugmentData(" + dataText + ", " + paramsText + ")"
}

func paramTempName(p *soytree.CallParamContentNode) string {
	return fmt.Sprintf("param__%d", p.ID())
}

// calleeRef resolves a callee name to the Go function reference to emit.
// Partial names and full names inside the current namespace resolve against
// sibling templates, taking the sibling's visibility-cased name. Other
// namespaces become an aliased package reference and are recorded for the
// file's import block.
func (g *codeGen) calleeRef(calleeName string) string {
	if strings.HasPrefix(calleeName, ".") {
		t := g.findLocalTemplate(calleeName)
		if t == nil {
			raiseSyntaxErrorf("call to undefined template %q", calleeName)
		}
		return templateFuncName(t)
	}
	ns := g.currentFile.Namespace
	if rest, ok := strings.CutPrefix(calleeName, ns+"."); ok && !strings.Contains(rest, ".") {
		if t := g.findLocalTemplate("." + rest); t != nil {
			return templateFuncName(t)
		}
		raiseSyntaxErrorf("call to undefined template %q in namespace %s", calleeName, ns)
	}
	lastDot := strings.LastIndex(calleeName, ".")
	if lastDot <= 0 {
		raiseSyntaxErrorf("cannot resolve call target %q", calleeName)
	}
	calleeNs := calleeName[:lastDot]
	name := calleeName[lastDot+1:]
	alias := "ct_" + strings.ReplaceAll(calleeNs, ".", "_")
	g.extImports[alias] = g.opts.CalleeImportBase + strings.ReplaceAll(calleeNs, ".", "/")
	return alias + "." + upperFirst(name)
}

func (g *codeGen) findLocalTemplate(partialName string) *soytree.TemplateNode {
	for _, t := range g.currentFile.Templates {
		if t.PartialName == partialName {
			return t
		}
	}
	return nil
}

// templateFuncName derives a template's Go function name from its partial
// name: exported for public templates, unexported for private ones.
func templateFuncName(t *soytree.TemplateNode) string {
	base := strings.TrimPrefix(t.PartialName, ".")
	if t.IsPrivate {
		return lowerFirst(base)
	}
	return upperFirst(base)
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
