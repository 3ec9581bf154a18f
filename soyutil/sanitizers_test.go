package soyutil

import (
	"strings"
	"testing"
)

func TestEscapeHtml(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`<b>"a" & 'b'</b>`, "&lt;b&gt;&#34;a&#34; &amp; &#39;b&#39;&lt;/b&gt;"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EscapeHtml(tt.in); got != tt.want {
			t.Errorf("EscapeHtml(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeHtmlDataPassthrough(t *testing.T) {
	sc := NewSanitizedContent("<b>safe</b>", ContentKindHTML)
	if got := EscapeHtmlData(sc); got != "<b>safe</b>" {
		t.Errorf("sanitized HTML was re-escaped: %q", got)
	}
	if got := EscapeHtmlData(NewStringData("<b>")); got != "&lt;b&gt;" {
		t.Errorf("EscapeHtmlData = %q", got)
	}
	if got := EscapeHtmlData(nil); got != "" {
		t.Errorf("EscapeHtmlData(nil) = %q", got)
	}
}

func TestNormalizeHtml(t *testing.T) {
	if got := NormalizeHtml(`&amp; <i>`); got != "&amp; &lt;i&gt;" {
		t.Errorf("NormalizeHtml = %q", got)
	}
}

func TestEscapeJsString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc", "abc"},
		{`a'b"c`, `a\'b\"c`},
		{"a\\b", `a\\b`},
		{"a\nb", `a\nb`},
		{"a\x00b", `a\x00b`},
		{"café", `caf\xE9`},
		{" ", ` `},
	}
	for _, tt := range tests {
		if got := EscapeJsString(tt.in); got != tt.want {
			t.Errorf("EscapeJsString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeJsValue(t *testing.T) {
	tests := []struct {
		name string
		in   SoyData
		want string
	}{
		{"nil", nil, "null"},
		{"null", NilDataInstance, "null"},
		{"bool", NewBooleanData(true), "true"},
		{"int", NewIntegerData(42), "42"},
		{"float", NewFloat64Data(1.5), "1.5"},
		{"string", NewStringData("a'b"), `'a\'b'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeJsValue(tt.in); got != tt.want {
				t.Errorf("EscapeJsValue = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapeUri(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc-_.!~*'()", "abc-_.!~*'()"},
		{"a b", "a%20b"},
		{"a&b=c", "a%26b%3Dc"},
		{"100%", "100%25"},
	}
	for _, tt := range tests {
		if got := EscapeUri(tt.in); got != tt.want {
			t.Errorf("EscapeUri(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeUri(t *testing.T) {
	in := "http://h/p?q=a b#f"
	want := "http://h/p?q=a%20b#f"
	if got := NormalizeUri(in); got != want {
		t.Errorf("NormalizeUri(%q) = %q, want %q", in, got, want)
	}
}

func TestFilterNormalizeUri(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://example.com/a", "http://example.com/a"},
		{"https://example.com", "https://example.com"},
		{"mailto:a@b.c", "mailto:a@b.c"},
		{"/relative/path", "/relative/path"},
		{"?query=1", "?query=1"},
		{"javascript:alert(1)", "#zSoyz"},
		{"data:text/html,x", "#zSoyz"},
	}
	for _, tt := range tests {
		if got := FilterNormalizeUri(tt.in); got != tt.want {
			t.Errorf("FilterNormalizeUri(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilterCssValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"red", "red"},
		{"12px", "12px"},
		{"#fff", "#fff"},
		{"expression(alert(1))", "zSoyz"},
		{"url(javascript:x)", "zSoyz"},
	}
	for _, tt := range tests {
		if got := FilterCssValue(tt.in); got != tt.want {
			t.Errorf("FilterCssValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanHtml(t *testing.T) {
	got := CleanHtml(`<b>bold</b><script>alert(1)</script>`)
	if !strings.Contains(got, "<b>bold</b>") {
		t.Errorf("CleanHtml dropped allowed markup: %q", got)
	}
	if strings.Contains(got, "<script") || strings.Contains(got, "alert(1)") {
		t.Errorf("CleanHtml kept script content: %q", got)
	}
}

func TestCleanHtmlData(t *testing.T) {
	sc := CleanHtmlData(NewStringData("<em>x</em>"))
	if sc.ContentKind() != ContentKindHTML {
		t.Errorf("ContentKind = %v", sc.ContentKind())
	}
	already := NewSanitizedContent("<b>ok</b>", ContentKindHTML)
	if CleanHtmlData(already) != already {
		t.Error("already-sanitized HTML was re-cleaned")
	}
}

func TestInsertWordBreaks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shortRun", "ab cd", 3, "ab cd"},
		{"longRun", "aaaaa", 3, "aaa<wbr>aa"},
		{"spaceResets", "aaa aaa", 3, "aaa aaa"},
		{"tagSkipped", "<abcdefg>aa", 3, "<abcdefg>aa"},
		{"entityIsOneChar", "a&amp;aa", 3, "a&amp;a<wbr>a"},
		{"zeroMaxClampsToOne", "ab", 0, "a<wbr>b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsertWordBreaks(tt.in, tt.max); got != tt.want {
				t.Errorf("InsertWordBreaks(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestChangeNewlineToBr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"no newline", "no newline"},
		{"a\nb", "a<br/>b"},
		{"a\r\nb", "a<br/>b"},
		{"a\rb", "a<br/>b"},
	}
	for _, tt := range tests {
		if got := ChangeNewlineToBr(tt.in); got != tt.want {
			t.Errorf("ChangeNewlineToBr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
