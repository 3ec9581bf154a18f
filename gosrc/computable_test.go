package gosrc

import (
	"testing"

	"soyc-go/soytree"
)

func TestIsComputable(t *testing.T) {
	raw := soytree.NewRawTextNode(1, "hi")
	print := soytree.NewPrintNode(2, intLit(1), "1")
	ifNode := soytree.NewIfNode(3, []*soytree.IfCondNode{soytree.NewIfCondNode(4, nil, "", raw)}, nil)
	css := soytree.NewCssNode(5, nil, "menu")
	valueCall := soytree.NewCallNode(6, ".helper", false, true, nil, "",
		soytree.NewCallParamValueNode(7, "x", intLit(1), "1"))
	contentCall := soytree.NewCallNode(8, ".helper", false, false, nil, "",
		soytree.NewCallParamContentNode(9, "y", raw, print))
	statementCall := soytree.NewCallNode(10, ".helper", false, false, nil, "",
		soytree.NewCallParamContentNode(11, "y", ifNode))
	letValue := soytree.NewLetValueNode(12, "n", intLit(1), "1")
	foreach := soytree.NewForeachNode(13, "it", dataRef("items"), "$items",
		soytree.NewForeachNonemptyNode(14, "it", raw), nil)

	tests := []struct {
		name string
		node soytree.Node
		want bool
	}{
		{"rawText", raw, true},
		{"print", print, true},
		{"css", css, true},
		{"if", ifNode, false},
		{"letValue", letValue, false},
		{"foreach", foreach, false},
		{"callWithValueParams", valueCall, true},
		{"callWithComputableContentParam", contentCall, true},
		{"callWithStatementContentParam", statementCall, false},
		{"templateOfText", soytree.NewTemplateNode(20, "t", ".t", false, raw, print), true},
		{"templateWithIf", soytree.NewTemplateNode(21, "t", ".t", false, raw, ifNode), false},
		{"msgHtmlTag", soytree.NewMsgHtmlTagNode(22, raw, print), true},
	}
	c := newComputableChecker(CodeStyleConcat)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.isComputable(tt.node); got != tt.want {
				t.Errorf("isComputable = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsComputableStringbuilderCalls(t *testing.T) {
	call := soytree.NewCallNode(1, ".helper", false, true, nil, "")
	c := newComputableChecker(CodeStyleStringbuilder)
	if c.isComputable(call) {
		t.Error("a stringbuilder-style call has no expression form")
	}
	if c.canInitOutputVar(call) {
		t.Error("a stringbuilder-style call only appends to an existing buffer")
	}
}

func TestCanInitOutputVar(t *testing.T) {
	raw := soytree.NewRawTextNode(1, "hi")
	ifNode := soytree.NewIfNode(2, []*soytree.IfCondNode{soytree.NewIfCondNode(3, nil, "", raw)}, nil)
	call := soytree.NewCallNode(4, ".helper", false, true, nil, "")

	c := newComputableChecker(CodeStyleConcat)
	if !c.canInitOutputVar(raw) {
		t.Error("raw text can perform the first assignment")
	}
	if c.canInitOutputVar(ifNode) {
		t.Error("an if statement cannot perform the first assignment")
	}
	if !c.canInitOutputVar(call) {
		t.Error("a concat-style call is an expression and can assign")
	}
}

func TestIsComputableMemoizesByID(t *testing.T) {
	raw := soytree.NewRawTextNode(7, "hi")
	c := newComputableChecker(CodeStyleConcat)
	c.isComputable(raw)
	if v, ok := c.memo[7]; !ok || !v {
		t.Fatalf("memo[7] = %v, %v", v, ok)
	}
	// A poisoned cache entry must win over recomputation.
	c.memo[7] = false
	if c.isComputable(raw) {
		t.Error("second query did not come from the memo")
	}
}
