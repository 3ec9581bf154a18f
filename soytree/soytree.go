// Package soytree defines the statement-level AST produced by the template
// front-end: files, templates, and the block constructs inside a template
// body. Node IDs are assigned by the front-end and are unique and stable
// within one tree; the backend keys memoization and synthetic variable
// names on them.
package soytree

import (
	"soyc-go/exprtree"
)

// Node is a statement-tree node.
type Node interface {
	ID() int
	soyNode()
}

// ParentNode is a node with a block of children.
type ParentNode interface {
	Node
	Children() []Node
}

type node struct {
	id int
}

func (n *node) ID() int  { return n.id }
func (n *node) soyNode() {}

// SoyFileSetNode is the root of a compilation: one node per run, holding
// every input file.
type SoyFileSetNode struct {
	node
	Files []*SoyFileNode
}

func NewSoyFileSetNode(id int, files ...*SoyFileNode) *SoyFileSetNode {
	return &SoyFileSetNode{node: node{id: id}, Files: files}
}

// SoyFileNode is one input template file.
type SoyFileNode struct {
	node
	Namespace string
	FilePath  string
	Templates []*TemplateNode
}

func NewSoyFileNode(id int, namespace, filePath string, templates ...*TemplateNode) *SoyFileNode {
	return &SoyFileNode{node: node{id: id}, Namespace: namespace, FilePath: filePath, Templates: templates}
}

// TemplateNode is one template definition. TemplateName is the full dotted
// name; PartialName is the name within the file's namespace, with a leading
// dot.
type TemplateNode struct {
	node
	TemplateName string
	PartialName  string
	IsPrivate    bool
	Body         []Node
}

func NewTemplateNode(id int, templateName, partialName string, isPrivate bool, body ...Node) *TemplateNode {
	return &TemplateNode{
		node:         node{id: id},
		TemplateName: templateName,
		PartialName:  partialName,
		IsPrivate:    isPrivate,
		Body:         body,
	}
}

func (n *TemplateNode) Children() []Node { return n.Body }

// RawTextNode is a run of literal template text.
type RawTextNode struct {
	node
	Text string
}

func NewRawTextNode(id int, text string) *RawTextNode {
	return &RawTextNode{node: node{id: id}, Text: text}
}

// PrintNode is a {print ...} or {$...} statement. ExprText preserves the
// original source of the expression for diagnostics.
type PrintNode struct {
	node
	Expr       exprtree.Node
	ExprText   string
	Directives []*PrintDirectiveNode
}

func NewPrintNode(id int, expr exprtree.Node, exprText string, directives ...*PrintDirectiveNode) *PrintNode {
	return &PrintNode{node: node{id: id}, Expr: expr, ExprText: exprText, Directives: directives}
}

// PrintDirectiveNode is one |directive applied to a print statement.
type PrintDirectiveNode struct {
	node
	Name string
	Args []exprtree.Node
}

func NewPrintDirectiveNode(id int, name string, args ...exprtree.Node) *PrintDirectiveNode {
	return &PrintDirectiveNode{node: node{id: id}, Name: name, Args: args}
}

// MsgHtmlTagNode wraps an HTML tag that appeared inside a message; after
// message substitution it is a plain container of raw text and prints.
type MsgHtmlTagNode struct {
	node
	Body []Node
}

func NewMsgHtmlTagNode(id int, body ...Node) *MsgHtmlTagNode {
	return &MsgHtmlTagNode{node: node{id: id}, Body: body}
}

func (n *MsgHtmlTagNode) Children() []Node { return n.Body }

// MsgNode is a {msg} statement. Message substitution replaces these before
// code generation; the generator rejects any that survive. IsPlrsel marks
// plural/select messages.
type MsgNode struct {
	node
	Desc     string
	IsPlrsel bool
	Body     []Node
}

func NewMsgNode(id int, desc string, isPlrsel bool, body ...Node) *MsgNode {
	return &MsgNode{node: node{id: id}, Desc: desc, IsPlrsel: isPlrsel, Body: body}
}

func (n *MsgNode) Children() []Node { return n.Body }

// IfNode is an if / elseif / else chain.
type IfNode struct {
	node
	Conds []*IfCondNode
	Else  *IfElseNode
}

func NewIfNode(id int, conds []*IfCondNode, elseNode *IfElseNode) *IfNode {
	return &IfNode{node: node{id: id}, Conds: conds, Else: elseNode}
}

// IfCondNode is one guarded arm of an IfNode.
type IfCondNode struct {
	node
	Expr     exprtree.Node
	ExprText string
	Body     []Node
}

func NewIfCondNode(id int, expr exprtree.Node, exprText string, body ...Node) *IfCondNode {
	return &IfCondNode{node: node{id: id}, Expr: expr, ExprText: exprText, Body: body}
}

func (n *IfCondNode) Children() []Node { return n.Body }

// IfElseNode is the unguarded arm of an IfNode.
type IfElseNode struct {
	node
	Body []Node
}

func NewIfElseNode(id int, body ...Node) *IfElseNode {
	return &IfElseNode{node: node{id: id}, Body: body}
}

func (n *IfElseNode) Children() []Node { return n.Body }

// SwitchNode is a {switch} statement.
type SwitchNode struct {
	node
	Expr     exprtree.Node
	ExprText string
	Cases    []*SwitchCaseNode
	Default  *SwitchDefaultNode
}

func NewSwitchNode(id int, expr exprtree.Node, exprText string, cases []*SwitchCaseNode, def *SwitchDefaultNode) *SwitchNode {
	return &SwitchNode{node: node{id: id}, Expr: expr, ExprText: exprText, Cases: cases, Default: def}
}

// SwitchCaseNode is one {case v1, v2, ...} arm.
type SwitchCaseNode struct {
	node
	Exprs []exprtree.Node
	Body  []Node
}

func NewSwitchCaseNode(id int, exprs []exprtree.Node, body ...Node) *SwitchCaseNode {
	return &SwitchCaseNode{node: node{id: id}, Exprs: exprs, Body: body}
}

func (n *SwitchCaseNode) Children() []Node { return n.Body }

// SwitchDefaultNode is the {default} arm.
type SwitchDefaultNode struct {
	node
	Body []Node
}

func NewSwitchDefaultNode(id int, body ...Node) *SwitchDefaultNode {
	return &SwitchDefaultNode{node: node{id: id}, Body: body}
}

func (n *SwitchDefaultNode) Children() []Node { return n.Body }

// ForeachNode is a {foreach $x in ...} statement with an optional
// {ifempty} branch.
type ForeachNode struct {
	node
	VarName  string
	Expr     exprtree.Node
	ExprText string
	Nonempty *ForeachNonemptyNode
	Ifempty  *ForeachIfemptyNode
}

func NewForeachNode(id int, varName string, expr exprtree.Node, exprText string, nonempty *ForeachNonemptyNode, ifempty *ForeachIfemptyNode) *ForeachNode {
	return &ForeachNode{
		node:     node{id: id},
		VarName:  varName,
		Expr:     expr,
		ExprText: exprText,
		Nonempty: nonempty,
		Ifempty:  ifempty,
	}
}

// ForeachNonemptyNode is the loop body of a ForeachNode; the loop variable
// is scoped to it.
type ForeachNonemptyNode struct {
	node
	VarName string
	Body    []Node
}

func NewForeachNonemptyNode(id int, varName string, body ...Node) *ForeachNonemptyNode {
	return &ForeachNonemptyNode{node: node{id: id}, VarName: varName, Body: body}
}

func (n *ForeachNonemptyNode) Children() []Node { return n.Body }

// ForeachIfemptyNode is the empty-list branch of a ForeachNode.
type ForeachIfemptyNode struct {
	node
	Body []Node
}

func NewForeachIfemptyNode(id int, body ...Node) *ForeachIfemptyNode {
	return &ForeachIfemptyNode{node: node{id: id}, Body: body}
}

func (n *ForeachIfemptyNode) Children() []Node { return n.Body }

// ForNode is a {for $x in range(...)} statement. RangeArgs holds one to
// three expressions: limit; init, limit; or init, limit, step.
type ForNode struct {
	node
	VarName   string
	RangeArgs []exprtree.Node
	Body      []Node
}

func NewForNode(id int, varName string, rangeArgs []exprtree.Node, body ...Node) *ForNode {
	return &ForNode{node: node{id: id}, VarName: varName, RangeArgs: rangeArgs, Body: body}
}

func (n *ForNode) Children() []Node { return n.Body }

// CallNode is a {call} statement. CalleeName may be a partial name within
// the caller's namespace (leading dot) or a full dotted name. Exactly one
// of the data forms applies: all ambient data, an explicit data expression,
// or no data.
type CallNode struct {
	node
	CalleeName       string
	IsPassingData    bool
	IsPassingAllData bool
	DataExpr         exprtree.Node
	DataExprText     string
	Params           []Node
}

func NewCallNode(id int, calleeName string, isPassingData, isPassingAllData bool, dataExpr exprtree.Node, dataExprText string, params ...Node) *CallNode {
	return &CallNode{
		node:             node{id: id},
		CalleeName:       calleeName,
		IsPassingData:    isPassingData,
		IsPassingAllData: isPassingAllData,
		DataExpr:         dataExpr,
		DataExprText:     dataExprText,
		Params:           params,
	}
}

func (n *CallNode) Children() []Node { return n.Params }

// CallParamValueNode is a {param key: expr /} call parameter.
type CallParamValueNode struct {
	node
	Key       string
	ValueExpr exprtree.Node
	ValueText string
}

func NewCallParamValueNode(id int, key string, valueExpr exprtree.Node, valueText string) *CallParamValueNode {
	return &CallParamValueNode{node: node{id: id}, Key: key, ValueExpr: valueExpr, ValueText: valueText}
}

// CallParamContentNode is a {param key}...{/param} call parameter whose
// value is a rendered block.
type CallParamContentNode struct {
	node
	Key  string
	Body []Node
}

func NewCallParamContentNode(id int, key string, body ...Node) *CallParamContentNode {
	return &CallParamContentNode{node: node{id: id}, Key: key, Body: body}
}

func (n *CallParamContentNode) Children() []Node { return n.Body }

// LetValueNode is a {let $x: expr /} binding.
type LetValueNode struct {
	node
	VarName   string
	ValueExpr exprtree.Node
	ValueText string
}

func NewLetValueNode(id int, varName string, valueExpr exprtree.Node, valueText string) *LetValueNode {
	return &LetValueNode{node: node{id: id}, VarName: varName, ValueExpr: valueExpr, ValueText: valueText}
}

// LetContentNode is a {let $x}...{/let} binding whose value is a rendered
// block.
type LetContentNode struct {
	node
	VarName string
	Body    []Node
}

func NewLetContentNode(id int, varName string, body ...Node) *LetContentNode {
	return &LetContentNode{node: node{id: id}, VarName: varName, Body: body}
}

func (n *LetContentNode) Children() []Node { return n.Body }

// CssNode is a {css selector} or {css $component, selector} statement.
type CssNode struct {
	node
	ComponentNameExpr exprtree.Node
	SelectorText      string
}

func NewCssNode(id int, componentNameExpr exprtree.Node, selectorText string) *CssNode {
	return &CssNode{node: node{id: id}, ComponentNameExpr: componentNameExpr, SelectorText: selectorText}
}
