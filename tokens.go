package pinniped

// inlineToken is one lexeme of an inline text run.
type inlineToken struct {
	kind inlineTokenKind
	text string
}

type inlineTokenKind uint8

const (
	tokText       inlineTokenKind = iota // literal run
	tokBold                              // **
	tokItalic                            // *
	tokCode                              // `
	tokLinkStart                         // [
	tokLinkMiddle                        // ](
	tokLinkEnd                           // )
)

// literal is the source text a markup token stands for, used when a span
// degrades back to text.
func (k inlineTokenKind) literal() string {
	switch k {
	case tokBold:
		return "**"
	case tokItalic:
		return "*"
	case tokCode:
		return "`"
	case tokLinkStart:
		return "["
	case tokLinkMiddle:
		return "]("
	case tokLinkEnd:
		return ")"
	}
	return ""
}
