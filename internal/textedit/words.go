package textedit

import "unicode"

// Rune classes used for word boundaries.
const (
	classSpace = iota
	classWord
	classPunct
)

func runeClass(r rune) int {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r):
		return classWord
	default:
		return classPunct
	}
}

// IsWordRune reports whether r is a letter, a number or an underscore.
func IsWordRune(r rune) bool {
	return runeClass(r) == classWord
}

// token is a half-open rune range [start, end).
type token struct {
	start int
	end   int
}

// tokenize splits r into maximal runs of word runes and single punctuation
// runes. Whitespace separates tokens and belongs to none of them.
func tokenize(r []rune) []token {
	var tokens []token
	i := 0
	for i < len(r) {
		switch runeClass(r[i]) {
		case classSpace:
			i++
		case classPunct:
			tokens = append(tokens, token{start: i, end: i + 1})
			i++
		default:
			start := i
			for i < len(r) && runeClass(r[i]) == classWord {
				i++
			}
			tokens = append(tokens, token{start: start, end: i})
		}
	}
	return tokens
}

func trimRightSpace(r []rune) []rune {
	end := len(r)
	for end > 0 && unicode.IsSpace(r[end-1]) {
		end--
	}
	return r[:end]
}

// DeleteLastWords removes the last n tokens from text.
//
// Before each removal trailing whitespace is trimmed. The loop stops as soon as
// the text is empty, and n larger than the number of tokens is clamped to the
// tokens available. n < 1 returns text unchanged.
func DeleteLastWords(text string, n int) string {
	r := []rune(text)
	tokens := tokenize(r)
	for i := 1; i <= n; i++ {
		r = trimRightSpace(r)
		if len(r) == 0 {
			return ""
		}
		if i > len(tokens) {
			break
		}
		r = r[:tokens[len(tokens)-i].start]
	}
	return string(r)
}

// prevWordStart returns the start of the word before pos.
func prevWordStart(r []rune, pos int) int {
	pos = clampInt(pos, 0, len(r))
	for pos > 0 && !IsWordRune(r[pos-1]) {
		pos--
	}
	for pos > 0 && IsWordRune(r[pos-1]) {
		pos--
	}
	return pos
}

// nextWordEnd returns the end of the word at or after pos.
func nextWordEnd(r []rune, pos int) int {
	pos = clampInt(pos, 0, len(r))
	for pos < len(r) && !IsWordRune(r[pos]) {
		pos++
	}
	for pos < len(r) && IsWordRune(r[pos]) {
		pos++
	}
	return pos
}
