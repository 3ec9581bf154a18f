package soyutil

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// innocuousOutput replaces values rejected by a filter, so broken data
// cannot break out of the surrounding markup context.
const innocuousOutput = "zSoyz"

var htmlSanitizer = bluemonday.UGCPolicy()

// EscapeHtml escapes '&', '<', '>', and quotes so the result can be embedded
// in HTML text or a double-quoted attribute value.
func EscapeHtml(s string) string {
	return html.EscapeString(s)
}

// EscapeHtmlData is EscapeHtml over a template value, passing content
// already sanitized as HTML through unchanged.
func EscapeHtmlData(v SoyData) string {
	if v == nil {
		return ""
	}
	if sc, ok := v.(*SanitizedContent); ok && sc.ContentKind() == ContentKindHTML {
		return sc.Content()
	}
	return EscapeHtml(v.String())
}

var htmlNormalizer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// NormalizeHtml escapes markup characters but leaves '&' alone, preserving
// entities already present in the input.
func NormalizeHtml(s string) string {
	return htmlNormalizer.Replace(s)
}

func NormalizeHtmlData(v SoyData) string {
	if v == nil {
		return ""
	}
	if sc, ok := v.(*SanitizedContent); ok && sc.ContentKind() == ContentKindHTML {
		return sc.Content()
	}
	return NormalizeHtml(v.String())
}

// EscapeJsString escapes a string for inclusion between quotes in a JS
// string literal. Quotes, backslashes, and control characters are escaped;
// non-ASCII characters are emitted as \uNNNN sequences.
func EscapeJsString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case jsEscapes[r] != "":
			b.WriteString(jsEscapes[r])
		case r > 31 && r < 127:
			b.WriteRune(r)
		case r < 256:
			fmt.Fprintf(&b, `\x%02X`, r)
		default:
			fmt.Fprintf(&b, `\u%04X`, r)
		}
	}
	return b.String()
}

func EscapeJsStringData(v SoyData) string {
	if v == nil {
		return ""
	}
	if sc, ok := v.(*SanitizedContent); ok && sc.ContentKind() == ContentKindJSStrChars {
		return sc.Content()
	}
	return EscapeJsString(v.String())
}

// EscapeJsValue renders a template value as a JS expression: numbers and
// booleans raw, null as null, everything else as a quoted escaped string.
func EscapeJsValue(v SoyData) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case NilData, *NilData:
		return "null"
	case BooleanData, IntegerData, Float64Data:
		return v.String()
	}
	return "'" + EscapeJsString(v.String()) + "'"
}

// EscapeUri escapes a string for embedding as a URI component, in the
// manner of JS encodeURIComponent.
func EscapeUri(s string) string {
	if uriUnreservedRe.MatchString(s) {
		return s
	}
	// QueryEscape space handling differs from encodeURIComponent.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func EscapeUriData(v SoyData) string {
	if v == nil {
		return ""
	}
	if sc, ok := v.(*SanitizedContent); ok && sc.ContentKind() == ContentKindURI {
		return NormalizeUri(sc.Content())
	}
	return EscapeUri(v.String())
}

const uriKeepChars = "-_.!~*'();/?:@&=+$,#[]%"

// NormalizeUri escapes characters not allowed anywhere in a URI while
// preserving the URI's reserved structure, in the manner of JS encodeURI.
func NormalizeUri(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r < 128 && strings.ContainsRune(uriKeepChars, r):
			b.WriteRune(r)
		default:
			b.WriteString(EscapeUri(string(r)))
		}
	}
	return b.String()
}

// FilterNormalizeUri normalizes a URI and rejects schemes other than http,
// https, and mailto. Rejected values become an innocuous fragment.
func FilterNormalizeUri(s string) string {
	if !uriSchemeRe.MatchString(s) {
		return "#" + innocuousOutput
	}
	return NormalizeUri(s)
}

func FilterNormalizeUriData(v SoyData) string {
	if v == nil {
		return ""
	}
	if sc, ok := v.(*SanitizedContent); ok && sc.ContentKind() == ContentKindURI {
		return NormalizeUri(sc.Content())
	}
	return FilterNormalizeUri(v.String())
}

// FilterCssValue allows only property values matching a conservative
// allow-list of identifiers, quantities, and colors.
func FilterCssValue(s string) string {
	if cssValueRe.MatchString(s) && !strings.Contains(s, "expression") {
		return s
	}
	return innocuousOutput
}

func FilterCssValueData(v SoyData) string {
	if v == nil {
		return ""
	}
	if sc, ok := v.(*SanitizedContent); ok && sc.ContentKind() == ContentKindCSS {
		return sc.Content()
	}
	return FilterCssValue(v.String())
}

// CleanHtml strips tags and attributes outside a conservative user-content
// allow-list, leaving well-formed safe HTML.
func CleanHtml(s string) string {
	return htmlSanitizer.Sanitize(s)
}

// CleanHtmlData cleans a template value and marks the result as sanitized
// HTML.
func CleanHtmlData(v SoyData) *SanitizedContent {
	if v == nil {
		return NewSanitizedContent("", ContentKindHTML)
	}
	if sc, ok := v.(*SanitizedContent); ok && sc.ContentKind() == ContentKindHTML {
		return sc
	}
	return NewSanitizedContent(CleanHtml(v.String()), ContentKindHTML)
}

// InsertWordBreaks inserts <wbr> tags into runs of non-space characters
// longer than maxCharsBetweenWordBreaks. HTML tags and entities in the
// input are left intact.
func InsertWordBreaks(value string, maxCharsBetweenWordBreaks int) string {
	if maxCharsBetweenWordBreaks < 1 {
		maxCharsBetweenWordBreaks = 1
	}
	var result strings.Builder
	result.Grow(len(value) + len(value)/maxCharsBetweenWordBreaks + 2)

	isInTag := false
	isMaybeInEntity := false
	numCharsWithoutBreak := 0

	for _, codePoint := range value {
		if numCharsWithoutBreak >= maxCharsBetweenWordBreaks && codePoint != ' ' {
			result.WriteString("<wbr>")
			numCharsWithoutBreak = 0
		}
		switch {
		case isInTag:
			if codePoint == '>' {
				isInTag = false
			}
		case isMaybeInEntity:
			switch codePoint {
			case ';':
				// The entity that just ended counts as one character.
				isMaybeInEntity = false
				numCharsWithoutBreak++
			case '<':
				isMaybeInEntity = false
				isInTag = true
			case ' ':
				isMaybeInEntity = false
				numCharsWithoutBreak = 0
			}
		default:
			switch codePoint {
			case '<':
				isInTag = true
			case '&':
				isMaybeInEntity = true
			case ' ':
				numCharsWithoutBreak = 0
			default:
				numCharsWithoutBreak++
			}
		}
		result.WriteRune(codePoint)
	}
	return result.String()
}

func InsertWordBreaksData(v SoyData, maxCharsBetweenWordBreaks int) string {
	if v == nil {
		return ""
	}
	return InsertWordBreaks(v.String(), maxCharsBetweenWordBreaks)
}

// ChangeNewlineToBr converts \r\n, \r, and \n to <br/> tags.
func ChangeNewlineToBr(str string) string {
	if !newlineRe.MatchString(str) {
		return str
	}
	return newlineReplaceRe.ReplaceAllString(str, "<br/>")
}

func ChangeNewlineToBrData(v SoyData) string {
	if v == nil {
		return ""
	}
	return ChangeNewlineToBr(v.String())
}
