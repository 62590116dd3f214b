package main

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
	"pkt.systems/pinniped"
)

const minPreviewWidth = 20

// renderPreview lays out a document as plain text for a terminal: wrapped
// paragraphs and quotes, hanging-indent list items, verbatim code, and
// display-width-aligned tables. It emits no ANSI sequences.
func renderPreview(doc pinniped.Document, width int) string {
	if width < minPreviewWidth {
		width = minPreviewWidth
	}
	parts := make([]string, 0, len(doc.Blocks))
	for _, block := range doc.Blocks {
		parts = append(parts, previewBlock(block, width))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func previewBlock(block pinniped.Block, width int) string {
	switch b := block.(type) {
	case pinniped.Paragraph:
		return wrapText(b.Text.Markdown(), width)
	case pinniped.Header:
		marker := strings.Repeat("#", b.Level) + " "
		return marker + b.Text.Markdown()
	case pinniped.UnorderedList:
		lines := make([]string, len(b.Items))
		for i, item := range b.Items {
			lines[i] = hangingItem("- ", item.Markdown(), width)
		}
		return strings.Join(lines, "\n")
	case pinniped.OrderedList:
		lines := make([]string, len(b.Items))
		for i, item := range b.Items {
			lines[i] = hangingItem(strconv.Itoa(i+1)+". ", item.Markdown(), width)
		}
		return strings.Join(lines, "\n")
	case pinniped.CodeBlock:
		return strings.TrimRight(b.Code, " \t\n\r")
	case pinniped.Blockquote:
		wrapped := wrapText(b.Text.Markdown(), width-2)
		lines := strings.Split(wrapped, "\n")
		for i, line := range lines {
			lines[i] = "> " + line
		}
		return strings.Join(lines, "\n")
	case pinniped.Table:
		return previewTable(b)
	}
	return ""
}

func wrapText(text string, width int) string {
	if ansi.PrintableRuneWidth(text) <= width {
		return text
	}
	return wordwrap.String(text, width)
}

// hangingItem wraps an item's text and indents continuation lines under the
// marker.
func hangingItem(marker, text string, width int) string {
	indent := strings.Repeat(" ", len(marker))
	wrapped := wrapText(text, width-len(marker))
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = marker + line
		} else {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

// previewTable pads every cell to its column's display width. The separator
// row, when present, is regenerated to match the padded widths.
func previewTable(t pinniped.Table) string {
	widths := columnWidths(t)
	lines := make([]string, 0, len(t.Rows))
	for i, row := range t.Rows {
		if t.HasHeader && i == 1 {
			lines = append(lines, separatorLine(widths))
			continue
		}
		cells := make([]string, len(row))
		for j, cell := range row {
			pad := 0
			if j < len(widths) {
				pad = widths[j] - runewidth.StringWidth(cell)
			}
			cells[j] = " " + cell + strings.Repeat(" ", pad) + " "
		}
		lines = append(lines, "|"+strings.Join(cells, "|")+"|")
	}
	return strings.Join(lines, "\n")
}

func columnWidths(t pinniped.Table) []int {
	var widths []int
	for i, row := range t.Rows {
		if t.HasHeader && i == 1 {
			continue
		}
		for j, cell := range row {
			w := runewidth.StringWidth(cell)
			if j >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

func separatorLine(widths []int) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		cells[i] = strings.Repeat("-", w+2)
	}
	return "|" + strings.Join(cells, "|") + "|"
}
