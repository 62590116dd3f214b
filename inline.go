package pinniped

// InlineElement is a node of formatted inline text. The set of
// implementations is closed: Text, Bold, Italic, Code and Link.
//
// Bold and Italic contain further elements; Code and Link are leaves whose
// content is never re-parsed.
type InlineElement interface {
	isInlineElement()
}

// Text is a literal text run.
type Text string

// Bold is a **strong** span of nested elements.
type Bold []InlineElement

// Italic is an *emphasized* span of nested elements.
type Italic []InlineElement

// Code is an inline `code` span. Its content is raw text.
type Code string

// Link is a [text](url) span. Neither part is re-parsed.
type Link struct {
	Text string
	URL  string
}

func (Text) isInlineElement()   {}
func (Bold) isInlineElement()   {}
func (Italic) isInlineElement() {}
func (Code) isInlineElement()   {}
func (Link) isInlineElement()   {}

// InlineText is one run of formatted text: an ordered element sequence.
type InlineText struct {
	Elements []InlineElement
}

// PlainText wraps a literal string as an InlineText with a single Text
// element.
func PlainText(text string) InlineText {
	return InlineText{Elements: []InlineElement{Text(text)}}
}

// ParseInline tokenizes and parses a single inline run. Block-level syntax
// is not recognized here.
func ParseInline(input string) InlineText {
	tokens := tokenizeInline(input)
	return InlineText{Elements: parseTokens(tokens)}
}
