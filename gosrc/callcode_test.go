package gosrc

import (
	"strings"
	"testing"

	"soyc-go/soytree"
)

func helperTemplate(id int) *soytree.TemplateNode {
	return soytree.NewTemplateNode(id, "examples.simple.helper", ".helper", false,
		soytree.NewRawTextNode(id+1, "x"),
	)
}

func TestCallDataForms(t *testing.T) {
	tests := []struct {
		name string
		call *soytree.CallNode
		want string
	}{
		{
			"allData",
			soytree.NewCallNode(3, ".helper", false, true, nil, ""),
			"return Helper(data)",
		},
		{
			"dataExpr",
			soytree.NewCallNode(3, ".helper", true, false, dataRef("d"), "$d"),
			`return Helper(soyutil.ToSoyMapData(soyutil.GetData(data, "d")))`,
		},
		{
			"noData",
			soytree.NewCallNode(3, ".helper", false, false, nil, ""),
			"return Helper(nil)",
		},
		{
			"paramsOnly",
			soytree.NewCallNode(3, ".helper", false, false, nil, "",
				soytree.NewCallParamValueNode(4, "x", intLit(1), "1"),
			),
			`return Helper(soyutil.NewSoyMapDataFromArgs("x", soyutil.NewIntegerData(1)))`,
		},
		{
			"dataAndParams",
			soytree.NewCallNode(3, ".helper", false, true, nil, "",
				soytree.NewCallParamValueNode(4, "x", intLit(1), "1"),
			),
			`return Helper(soyutil.AugmentData(data, soyutil.NewSoyMapDataFromArgs("x", soyutil.NewIntegerData(1))))`,
		},
		{
			"computableContentParam",
			soytree.NewCallNode(3, ".helper", false, false, nil, "",
				soytree.NewCallParamContentNode(4, "y", soytree.NewRawTextNode(5, "hi")),
			),
			`return Helper(soyutil.NewSoyMapDataFromArgs("y", soyutil.NewStringData("hi")))`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := soytree.NewTemplateNode(2, "examples.simple.caller", ".caller", false, tt.call)
			got := generateOne(t, nil, caller, helperTemplate(10))
			if !strings.Contains(got, tt.want) {
				t.Errorf("generated code missing %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestCallMaterializesStatementContentParam(t *testing.T) {
	call := soytree.NewCallNode(3, ".helper", false, false, nil, "",
		soytree.NewCallParamContentNode(9, "y",
			soytree.NewIfNode(5,
				[]*soytree.IfCondNode{
					soytree.NewIfCondNode(6, dataRef("b"), "$b", soytree.NewRawTextNode(7, "a")),
				},
				soytree.NewIfElseNode(8, soytree.NewRawTextNode(11, "b")),
			),
		),
	)
	caller := soytree.NewTemplateNode(2, "examples.simple.caller", ".caller", false, call)
	got := funcPart(t, generateOne(t, nil, caller, helperTemplate(20)))
	want := `func Caller(data soyutil.SoyMapData) string {
	if data == nil {
		data = soyutil.NewSoyMapData()
	}
	output := ""
	param__9 := ""
	if soyutil.GetData(data, "b").Bool() {
		param__9 += "a"
	} else {
		param__9 += "b"
	}
	output += Helper(soyutil.NewSoyMapDataFromArgs("y", param__9))
	return output
}
`
	if !strings.HasPrefix(got, want) {
		t.Errorf("generated code mismatch:\ngot:\n%s\nwant prefix:\n%s", got, want)
	}
}

func TestCallFullNameInCurrentNamespace(t *testing.T) {
	call := soytree.NewCallNode(3, "examples.simple.helper", false, true, nil, "")
	caller := soytree.NewTemplateNode(2, "examples.simple.caller", ".caller", false, call)
	got := generateOne(t, nil, caller, helperTemplate(10))
	if !strings.Contains(got, "return Helper(data)") {
		t.Errorf("full name did not resolve to the sibling template:\n%s", got)
	}
	if strings.Contains(got, "ct_") {
		t.Errorf("call inside the current namespace must not import anything:\n%s", got)
	}
}

func TestCallExternalNamespace(t *testing.T) {
	call := soytree.NewCallNode(3, "other.ns.widget", false, true, nil, "")
	caller := soytree.NewTemplateNode(2, "examples.simple.caller", ".caller", false, call)
	got := generateOne(t, &Options{CalleeImportBase: "example.com/gen/"}, caller)
	if !strings.Contains(got, "return ct_other_ns.Widget(data)") {
		t.Errorf("external callee reference wrong:\n%s", got)
	}
	if !strings.Contains(got, "\tct_other_ns \"example.com/gen/other/ns\"\n") {
		t.Errorf("external callee import missing:\n%s", got)
	}
}

func TestCallUndefinedTemplate(t *testing.T) {
	call := soytree.NewCallNode(3, ".nope", false, true, nil, "")
	caller := soytree.NewTemplateNode(2, "examples.simple.caller", ".caller", false, call)
	file := soytree.NewSoyFileNode(1, "examples.simple", "hello.soy", caller)
	_, err := Generate(soytree.NewSoyFileSetNode(0, file), nil)
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("err = %v, want *SyntaxError", err)
	}
	if !strings.Contains(se.Msg, `undefined template ".nope"`) {
		t.Errorf("Msg = %q", se.Msg)
	}
}

func TestTemplateFuncName(t *testing.T) {
	public := soytree.NewTemplateNode(1, "ns.fooBar", ".fooBar", false)
	if got := templateFuncName(public); got != "FooBar" {
		t.Errorf("public name = %q", got)
	}
	private := soytree.NewTemplateNode(2, "ns.FooBar", ".FooBar", true)
	if got := templateFuncName(private); got != "fooBar" {
		t.Errorf("private name = %q", got)
	}
}
