package soyutil

import "regexp"

// ContentKind labels a SanitizedContent value with the markup context its
// content is known to be safe in.
type ContentKind int

const (
	// ContentKindHTML is a snippet of HTML that does not start or end inside
	// a tag, comment, entity, or DOCTYPE, and that contains no executable
	// code from a different trust domain.
	ContentKindHTML ContentKind = iota + 1

	// ContentKindJSStrChars is a sequence of code units that can appear
	// between quotes in a JS program without causing a parse error or side
	// effects. It must not contain unescaped quotes or newlines and must not
	// end inside an escape sequence.
	ContentKindJSStrChars

	// ContentKindURI is a properly encoded portion of a URI.
	ContentKindURI

	// ContentKindHTMLAttribute is an attribute name and value, such as
	// dir="ltr".
	ContentKindHTMLAttribute

	// ContentKindCSS is a CSS declaration or value safe to embed in a style
	// attribute or element.
	ContentKindCSS
)

func (k ContentKind) String() string {
	switch k {
	case ContentKindHTML:
		return "HTML"
	case ContentKindJSStrChars:
		return "JS_STR_CHARS"
	case ContentKindURI:
		return "URI"
	case ContentKindHTMLAttribute:
		return "HTML_ATTRIBUTE"
	case ContentKindCSS:
		return "CSS"
	}
	return "UNKNOWN_CONTENT_KIND"
}

var (
	newlineRe = regexp.MustCompile(`[\r\n]`)

	newlineReplaceRe = regexp.MustCompile(`(\r\n|\r|\n)`)

	// Matches strings that survive URI component encoding unchanged, so the
	// encoder can be skipped for them.
	uriUnreservedRe = regexp.MustCompile(`^[a-zA-Z0-9\-_.!~*'()]*$`)

	// Allow-list for CSS property values: identifiers, quantities, colors,
	// and simple comma/space separated combinations thereof.
	cssValueRe = regexp.MustCompile(`^(?:[*/]?(?:[0-9]+(?:\.[0-9]*)?(?:[a-zA-Z]{1,4}|%)?|!important|[a-zA-Z][a-zA-Z0-9-]*|#[0-9a-fA-F]{3,8})(?:\s*[,\s]\s*|$))*$`)

	// Rejects URI schemes other than http, https, mailto, and
	// scheme-relative or path-relative forms.
	uriSchemeRe = regexp.MustCompile(`^(?:(?:https?|mailto):|[^&:/?#]*(?:[/?#]|$))`)

	jsEscapes = map[rune]string{
		'\b':   `\b`,
		'\f':   `\f`,
		'\n':   `\n`,
		'\r':   `\r`,
		'\t':   `\t`,
		'\x0B': `\x0B`, // '\v' is not supported in JScript
		'"':    `\"`,
		'\'':   `\'`,
		'\\':   `\\`,
	}
)
