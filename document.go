package pinniped

// Document is an ordered sequence of blocks in reading order. It owns the
// whole tree; values are immutable once parsed.
type Document struct {
	Blocks []Block
}

// NewDocument creates a Document from blocks.
func NewDocument(blocks []Block) Document {
	return Document{Blocks: blocks}
}

// Markdown renders the document back to Markdown text.
func (d Document) Markdown() string {
	return render(d)
}

// TableAt returns the table stored at block index i.
func (d Document) TableAt(i int) (Table, error) {
	if i < 0 || i >= len(d.Blocks) {
		return Table{}, ErrBlockOutOfRange
	}
	table, ok := d.Blocks[i].(Table)
	if !ok {
		return Table{}, ErrNotATable
	}
	return table, nil
}
