package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// LowerWord folds a word to lower case using language-neutral Unicode rules.
func LowerWord(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.Und).String(s)
}

// UpperWord is the upper-case counterpart of LowerWord.
func UpperWord(s string) string {
	if s == "" {
		return ""
	}
	return cases.Upper(language.Und).String(s)
}

// NormalizeNFC returns s in Unicode normalization form C, so precomposed and
// decomposed spellings of the same grapheme compare equal.
func NormalizeNFC(s string) string {
	return norm.NFC.String(s)
}

// SplitList splits a space separated settings list ("a b ch", "one two")
// and drops empty entries.
func SplitList(s string) []string {
	return strings.Fields(s)
}

// NormalizeName prepares a curriculum name for storage and lookup:
// surrounding whitespace is removed and inner runs of spaces collapse to one.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
