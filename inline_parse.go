package pinniped

import "strings"

// parseTokens builds inline elements from a token slice by recursive
// descent. Unmatched or malformed constructs degrade to literal text, so
// downstream rendering loses no input characters.
func parseTokens(tokens []inlineToken) []InlineElement {
	var elements []InlineElement
	i := 0

	for i < len(tokens) {
		tok := tokens[i]
		switch tok.kind {
		case tokText:
			elements = append(elements, Text(tok.text))
			i++
		case tokBold:
			if content, consumed, ok := parseDelimited(tokens, i, tokBold); ok {
				elements = append(elements, Bold(content))
				i += consumed
			} else {
				elements = append(elements, Text("**"))
				i++
			}
		case tokItalic:
			if content, consumed, ok := parseDelimited(tokens, i, tokItalic); ok {
				elements = append(elements, Italic(content))
				i += consumed
			} else {
				elements = append(elements, Text("*"))
				i++
			}
		case tokCode:
			if text, consumed, ok := parseCodeSpan(tokens, i); ok {
				elements = append(elements, Code(text))
				i += consumed
			} else {
				elements = append(elements, Text("`"))
				i++
			}
		case tokLinkStart:
			if link, consumed, ok := parseLink(tokens, i); ok {
				elements = append(elements, link)
				i += consumed
			} else {
				elements = append(elements, Text("["))
				i++
			}
		default:
			// Stray ]( or ) outside a link is literal.
			elements = append(elements, Text(tok.kind.literal()))
			i++
		}
	}

	return elements
}

// parseDelimited scans forward from an opening Bold/Italic token for its
// matching closer and recursively parses the enclosed tokens. Reports false
// when no closer exists.
func parseDelimited(tokens []inlineToken, start int, kind inlineTokenKind) ([]InlineElement, int, bool) {
	for i := start + 1; i < len(tokens); i++ {
		if tokens[i].kind == kind {
			return parseTokens(tokens[start+1 : i]), i - start + 1, true
		}
	}
	return nil, 0, false
}

// parseCodeSpan collects raw text up to the closing backtick. Markup tokens
// inside the span are re-escaped to their source characters: code spans are
// never formatted.
func parseCodeSpan(tokens []inlineToken, start int) (string, int, bool) {
	var text strings.Builder
	for i := start + 1; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.kind == tokCode {
			return text.String(), i - start + 1, true
		}
		if tok.kind == tokText {
			text.WriteString(tok.text)
		} else {
			text.WriteString(tok.kind.literal())
		}
	}
	return "", 0, false
}

// parseLink reads [text](url). Only text tokens contribute to the link text
// and URL. Reports false when the ]( or ) boundary is missing, in which
// case the caller degrades the [ to literal text and rescans from the next
// token.
func parseLink(tokens []inlineToken, start int) (Link, int, bool) {
	var text strings.Builder
	i := start + 1
	for i < len(tokens) {
		tok := tokens[i]
		i++
		if tok.kind == tokLinkMiddle {
			break
		}
		if tok.kind == tokText {
			text.WriteString(tok.text)
		}
	}

	var url strings.Builder
	for i < len(tokens) {
		tok := tokens[i]
		if tok.kind == tokLinkEnd {
			return Link{Text: text.String(), URL: url.String()}, i - start + 1, true
		}
		if tok.kind == tokText {
			url.WriteString(tok.text)
		}
		i++
	}
	return Link{}, 0, false
}
