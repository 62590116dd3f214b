package pinniped

import "strings"

// Parse parses Markdown text into a Document. Malformed Markdown degrades
// to literal text instead of failing; the only error is a *ParseError for
// input that is not processable text (invalid UTF-8 or binary data).
func Parse(input string) (Document, error) {
	if err := ValidateInput([]byte(input)); err != nil {
		return Document{}, &ParseError{msg: err.Error(), err: err}
	}

	var blocks []Block
	runes := []rune(input)
	var section strings.Builder
	var code strings.Builder
	var lang *string
	inFence := false
	i := 0

	// Fence pass: find triple-backtick regions first so that fenced
	// content is never section-split or inline-parsed.
	for i < len(runes) {
		if runes[i] == '`' && peekIs(runes, i+1, '`') {
			if peekIs(runes, i+2, '`') {
				i += 3
				if inFence {
					blocks = append(blocks, CodeBlock{Language: lang, Code: code.String()})
					code.Reset()
					lang = nil
					inFence = false
					// Discard the rest of the closing fence line.
					for i < len(runes) {
						r := runes[i]
						i++
						if r == '\n' {
							break
						}
					}
				} else {
					if trimmed := strings.TrimSpace(section.String()); trimmed != "" {
						parseSections(trimmed, &blocks)
					}
					section.Reset()
					// The rest of the fence line is the language tag.
					start := i
					for i < len(runes) && runes[i] != '\n' {
						i++
					}
					tag := strings.TrimSpace(string(runes[start:i]))
					if i < len(runes) {
						i++ // consume the newline
					}
					if tag != "" {
						lang = &tag
					}
					inFence = true
				}
				continue
			}
			// Two backticks only: literal.
			if inFence {
				code.WriteString("``")
			} else {
				section.WriteString("``")
			}
			i += 2
			continue
		}
		if inFence {
			code.WriteRune(runes[i])
		} else {
			section.WriteRune(runes[i])
		}
		i++
	}

	if inFence {
		// Unterminated fence still yields a code block.
		blocks = append(blocks, CodeBlock{Language: lang, Code: code.String()})
	} else if trimmed := strings.TrimSpace(section.String()); trimmed != "" {
		parseSections(trimmed, &blocks)
	}

	return Document{Blocks: blocks}, nil
}

func peekIs(runes []rune, i int, r rune) bool {
	return i < len(runes) && runes[i] == r
}

// parseSections splits non-fenced text on blank lines and classifies each
// section. Classification tests the whole trimmed section against each
// predicate in precedence order; one non-conforming line disqualifies a
// block type and the section falls through, ultimately to Paragraph.
func parseSections(text string, blocks *[]Block) {
	for _, section := range strings.Split(text, "\n\n") {
		trimmed := strings.TrimSpace(section)
		if trimmed == "" {
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "#"):
			*blocks = append(*blocks, parseHeader(trimmed))
		case everyLine(trimmed, isBlockquoteLine):
			*blocks = append(*blocks, parseBlockquote(trimmed))
		case everyLine(trimmed, isUnorderedLine):
			*blocks = append(*blocks, parseUnorderedList(trimmed))
		case everyLine(trimmed, isOrderedLine):
			*blocks = append(*blocks, parseOrderedList(trimmed))
		case strings.Contains(trimmed, "|") && everyLine(trimmed, isTableLine):
			*blocks = append(*blocks, parseTable(trimmed))
		default:
			*blocks = append(*blocks, Paragraph{Text: ParseInline(trimmed)})
		}
	}
}

func everyLine(section string, pred func(string) bool) bool {
	for _, line := range strings.Split(section, "\n") {
		if !pred(line) {
			return false
		}
	}
	return true
}

func isBlockquoteLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "> ")
}

func isUnorderedLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "- ")
}

func isOrderedLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	first := trimmed[0]
	return first >= '0' && first <= '9' && strings.Contains(trimmed, ". ")
}

func isTableLine(line string) bool {
	return strings.Contains(line, "|")
}

func parseHeader(section string) Header {
	level := 0
	for level < len(section) && section[level] == '#' {
		level++
	}
	text := strings.TrimSpace(section[level:])
	return Header{Level: level, Text: ParseInline(text)}
}

func parseBlockquote(section string) Blockquote {
	lines := strings.Split(section, "\n")
	stripped := make([]string, len(lines))
	for i, line := range lines {
		stripped[i] = strings.TrimPrefix(strings.TrimSpace(line), "> ")
	}
	return Blockquote{Text: ParseInline(strings.Join(stripped, "\n"))}
}

func parseUnorderedList(section string) UnorderedList {
	lines := strings.Split(section, "\n")
	items := make([]InlineText, len(lines))
	for i, line := range lines {
		items[i] = ParseInline(strings.TrimPrefix(strings.TrimSpace(line), "- "))
	}
	return UnorderedList{Items: items}
}

func parseOrderedList(section string) OrderedList {
	lines := strings.Split(section, "\n")
	items := make([]InlineText, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if dot := strings.Index(trimmed, ". "); dot != -1 {
			items[i] = ParseInline(trimmed[dot+2:])
		} else {
			items[i] = ParseInline(trimmed)
		}
	}
	return OrderedList{Items: items}
}

func parseTable(section string) Table {
	lines := strings.Split(section, "\n")
	rows := make([][]string, len(lines))
	for i, line := range lines {
		cells := strings.Split(strings.Trim(strings.TrimSpace(line), "|"), "|")
		for j, cell := range cells {
			cells[j] = strings.TrimSpace(cell)
		}
		rows[i] = cells
	}
	return NewTable(rows)
}
