package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsWord reports whether word occurs in text at a word boundary on both
// sides. A boundary sits between a word rune (letter, digit or underscore) and
// a non-word rune, or at either end of the text. Both arguments are compared
// as-is; callers lowercase them first.
//
// The regexp package only knows ASCII word boundaries, which breaks on aliases
// such as "çevik metodoloji", so the boundary test is done by hand.
func ContainsWord(text, word string) bool {
	if word == "" || len(word) > len(text) {
		return false
	}

	offset := 0
	for offset <= len(text)-len(word) {
		idx := strings.Index(text[offset:], word)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(word)
		if atBoundary(text, start) && atBoundary(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

// atBoundary reports whether the byte position pos in s is a word boundary.
func atBoundary(s string, pos int) bool {
	before, after := false, false
	if pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:pos])
		before = isWordRune(r)
	}
	if pos < len(s) {
		r, _ := utf8.DecodeRuneInString(s[pos:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
