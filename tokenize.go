package pinniped

// Balance penalty weights for triple-star disambiguation. These values are
// part of the dialect: changing them changes which hypothesis wins on real
// documents.
const (
	penaltyCrossedClose = 3  // per stack slot between closer and its opener
	penaltyUnmatched    = 15 // closer with no opener on the stack
	penaltyUnclosed     = 8  // opener still on the stack at end of text
)

// tokenizeInline lexes one inline run into markup tokens. It never fails:
// every character lands in some token.
func tokenizeInline(input string) []inlineToken {
	var tokens []inlineToken
	runes := []rune(input)
	i := 0

	for i < len(runes) {
		switch runes[i] {
		case '*':
			if i+2 < len(runes) && runes[i+1] == '*' && runes[i+2] == '*' {
				first, second := decideTripleStar(runes[i:])
				tokens = append(tokens, inlineToken{kind: first}, inlineToken{kind: second})
				i += 3
			} else if i+1 < len(runes) && runes[i+1] == '*' {
				tokens = append(tokens, inlineToken{kind: tokBold})
				i += 2
			} else {
				tokens = append(tokens, inlineToken{kind: tokItalic})
				i++
			}
		case '`':
			tokens = append(tokens, inlineToken{kind: tokCode})
			i++
		case '[':
			tokens = append(tokens, inlineToken{kind: tokLinkStart})
			i++
		case ']':
			if i+1 < len(runes) && runes[i+1] == '(' {
				tokens = append(tokens, inlineToken{kind: tokLinkMiddle})
				i += 2
			} else {
				// Bare ] is literal text.
				if n := len(tokens); n > 0 && tokens[n-1].kind == tokText {
					tokens[n-1].text += "]"
				} else {
					tokens = append(tokens, inlineToken{kind: tokText, text: "]"})
				}
				i++
			}
		case ')':
			tokens = append(tokens, inlineToken{kind: tokLinkEnd})
			i++
		default:
			start := i
			for i < len(runes) && !isInlineSpecial(runes[i]) {
				i++
			}
			tokens = append(tokens, inlineToken{kind: tokText, text: string(runes[start:i])})
		}
	}

	return tokens
}

func isInlineSpecial(r rune) bool {
	switch r {
	case '*', '`', '[', ']', ')':
		return true
	}
	return false
}

// decideTripleStar resolves a *** run starting at rest[0]: either ** then *
// (Bold first) or * then ** (Italic first). Each hypothesis is scored by
// simulating delimiter matching over the remaining text; the lower penalty
// wins and ties go to Bold first.
func decideTripleStar(rest []rune) (first, second inlineTokenKind) {
	boldFirst := balancePenalty(rest, true)
	italicFirst := balancePenalty(rest, false)
	if boldFirst <= italicFirst {
		return tokBold, tokItalic
	}
	return tokItalic, tokBold
}

type delimKind uint8

const (
	delimBold delimKind = iota
	delimItalic
)

// balancePenalty scores one triple-star hypothesis with a greedy single
// pass. The two hypothesized openers are pushed, then every later ** or *
// lexeme pops the nearest-from-top delimiter of its kind (penalizing
// crossed nesting by distance) or counts as an unmatched closer. Openers
// left on the stack at the end are penalized per entry.
func balancePenalty(text []rune, boldFirst bool) int {
	var stack []delimKind
	if boldFirst {
		stack = append(stack, delimBold, delimItalic)
	} else {
		stack = append(stack, delimItalic, delimBold)
	}

	penalty := 0
	i := 3 // past the ***
	for i < len(text) {
		if i+1 < len(text) && text[i] == '*' && text[i+1] == '*' {
			penalty += popDelim(&stack, delimBold)
			i += 2
		} else if text[i] == '*' {
			penalty += popDelim(&stack, delimItalic)
			i++
		} else {
			i++
		}
	}

	return penalty + len(stack)*penaltyUnclosed
}

// popDelim removes the topmost delimiter of the given kind and returns the
// penalty for reaching it: zero when it is on top, scaled by distance when
// closing crosses other open delimiters, fixed when nothing matches.
func popDelim(stack *[]delimKind, kind delimKind) int {
	s := *stack
	for pos := len(s) - 1; pos >= 0; pos-- {
		if s[pos] != kind {
			continue
		}
		distance := len(s) - 1 - pos
		*stack = append(s[:pos], s[pos+1:]...)
		return distance * penaltyCrossedClose
	}
	return penaltyUnmatched
}
