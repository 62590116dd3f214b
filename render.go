package pinniped

import (
	"strconv"
	"strings"
)

// render converts a Document back into Markdown. Rendering is deterministic
// and stateless: one rule per block and inline variant, blocks joined by a
// blank line. The documented normalizations apply: runs of blank lines
// collapse to one, header whitespace is trimmed, and code block bodies are
// right-trimmed.
func render(d Document) string {
	parts := make([]string, len(d.Blocks))
	for i, block := range d.Blocks {
		parts[i] = renderBlock(block)
	}
	return strings.Join(parts, "\n\n")
}

func renderBlock(block Block) string {
	switch b := block.(type) {
	case Paragraph:
		return renderInlineText(b.Text)
	case Header:
		return strings.Repeat("#", b.Level) + " " + renderInlineText(b.Text)
	case UnorderedList:
		lines := make([]string, len(b.Items))
		for i, item := range b.Items {
			lines[i] = "- " + renderInlineText(item)
		}
		return strings.Join(lines, "\n")
	case OrderedList:
		lines := make([]string, len(b.Items))
		for i, item := range b.Items {
			lines[i] = strconv.Itoa(i+1) + ". " + renderInlineText(item)
		}
		return strings.Join(lines, "\n")
	case CodeBlock:
		var sb strings.Builder
		sb.WriteString("```")
		if b.Language != nil {
			sb.WriteString(*b.Language)
		}
		sb.WriteString("\n")
		sb.WriteString(strings.TrimRight(b.Code, " \t\n\r"))
		sb.WriteString("\n```")
		return sb.String()
	case Blockquote:
		lines := strings.Split(renderInlineText(b.Text), "\n")
		for i, line := range lines {
			lines[i] = "> " + line
		}
		return strings.Join(lines, "\n")
	case Table:
		lines := make([]string, len(b.Rows))
		for i, row := range b.Rows {
			lines[i] = "|" + strings.Join(row, "|") + "|"
		}
		return strings.Join(lines, "\n")
	}
	return ""
}

func renderInlineText(text InlineText) string {
	var sb strings.Builder
	for _, element := range text.Elements {
		writeInlineElement(&sb, element)
	}
	return sb.String()
}

func writeInlineElement(sb *strings.Builder, element InlineElement) {
	switch e := element.(type) {
	case Text:
		sb.WriteString(string(e))
	case Bold:
		sb.WriteString("**")
		for _, inner := range e {
			writeInlineElement(sb, inner)
		}
		sb.WriteString("**")
	case Italic:
		sb.WriteString("*")
		for _, inner := range e {
			writeInlineElement(sb, inner)
		}
		sb.WriteString("*")
	case Code:
		sb.WriteString("`")
		sb.WriteString(string(e))
		sb.WriteString("`")
	case Link:
		sb.WriteString("[")
		sb.WriteString(e.Text)
		sb.WriteString("](")
		sb.WriteString(e.URL)
		sb.WriteString(")")
	}
}

// Markdown renders a single inline run.
func (t InlineText) Markdown() string {
	return renderInlineText(t)
}
