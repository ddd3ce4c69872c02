package tokenize

import (
	"fmt"
	"strings"
	"unicode"
)

// ClassEscape renders the runes of s so they can be placed inside a regexp2
// character class. Only characters with a meaning inside a class are
// escaped; control characters are written as \uXXXX.
func ClassEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\' || r == ']' || r == '[' || r == '^' || r == '-':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r <= 0xFFFF && (unicode.IsControl(r) || unicode.Is(unicode.Cf, r) || unicode.IsSpace(r)):
			fmt.Fprintf(&b, `\u%04X`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// QuoteLetter escapes a grapheme for use as one alternative of a regexp2
// alternation such as (a|b|ch). Graphemes may legitimately contain
// characters like ? or + (glottal stops and tone marks in some orthographies).
func QuoteLetter(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`\?+*[](){}|.^$#`, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isJSSpace matches the characters String.prototype.trim removes.
func isJSSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// isWordSeparator reports the characters words are split on: separators,
// real control characters and the invisible formatting marks that editors
// insert between words.
func isWordSeparator(r rune) bool {
	switch {
	case unicode.In(r, unicode.Z, unicode.Cc):
		return true
	case r == '\u200B', r == '\u200E', r == '\u200F':
		return true
	case r >= '\u202A' && r <= '\u202E':
		return true
	case r >= '\u2066' && r <= '\u2069':
		return true
	}
	return false
}
