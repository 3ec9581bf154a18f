package soyutil

// SanitizedContent wraps a string that is known to be safe in a particular
// markup context. The kind-aware escaping functions pass matching content
// through untouched so already-escaped output is not escaped twice.
type SanitizedContent struct {
	content     string
	contentKind ContentKind
}

func NewSanitizedContent(content string, contentKind ContentKind) *SanitizedContent {
	return &SanitizedContent{
		content:     content,
		contentKind: contentKind,
	}
}

func (p *SanitizedContent) Content() string {
	return p.content
}

func (p *SanitizedContent) ContentKind() ContentKind {
	return p.contentKind
}

func (p *SanitizedContent) String() string        { return p.content }
func (p *SanitizedContent) StringValue() string   { return p.content }
func (p *SanitizedContent) Bool() bool            { return len(p.content) != 0 }
func (p *SanitizedContent) BooleanValue() bool    { return len(p.content) != 0 }
func (p *SanitizedContent) IntegerValue() int     { return defaultIntegerValue() }
func (p *SanitizedContent) Float64Value() float64 { return defaultFloat64Value() }
func (p *SanitizedContent) NumberValue() float64  { return defaultNumberValue() }

func (p *SanitizedContent) Equals(other any) bool {
	if other == nil {
		return false
	}
	switch o := other.(type) {
	case *SanitizedContent:
		if o == nil {
			return false
		}
		return o.content == p.content && o.contentKind == p.contentKind
	case SanitizedContent:
		return o.content == p.content && o.contentKind == p.contentKind
	}
	return false
}
