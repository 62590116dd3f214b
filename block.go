package pinniped

// Block is a top-level document element. The set of implementations is
// closed: Paragraph, Header, UnorderedList, OrderedList, CodeBlock,
// Blockquote and Table.
type Block interface {
	isBlock()
}

// Paragraph is a run of inline text.
type Paragraph struct {
	Text InlineText
}

// Header is a hash-prefixed heading. Level is the raw hash count.
type Header struct {
	Level int
	Text  InlineText
}

// UnorderedList holds one inline run per `- ` item.
type UnorderedList struct {
	Items []InlineText
}

// OrderedList holds one inline run per `N. ` item. Item numbering is
// positional; source numbers are not retained.
type OrderedList struct {
	Items []InlineText
}

// CodeBlock is a fenced code region. Language is nil when the opening fence
// carries no tag. Code is raw text, never inline-parsed.
type CodeBlock struct {
	Language *string
	Code     string
}

// Blockquote is a `> `-prefixed run of inline text.
type Blockquote struct {
	Text InlineText
}

func (Paragraph) isBlock()     {}
func (Header) isBlock()        {}
func (UnorderedList) isBlock() {}
func (OrderedList) isBlock()   {}
func (CodeBlock) isBlock()     {}
func (Blockquote) isBlock()    {}
func (Table) isBlock()         {}
