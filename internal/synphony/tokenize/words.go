package tokenize

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/synphony-backend/internal/domain"
)

var (
	lineBreak = regexp.MustCompile(`<br></br>|<br>|<br />|<br/>|\r?\n`)

	jsDecimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	jsRadix   = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
	jsInf     = regexp.MustCompile(`^[+-]?Infinity$`)

	// punctCache holds punctuation patterns by letter class. Each curriculum
	// adds at most one.
	punctCache = mustCache(punctCacheSize)
)

const punctCacheSize = 128

func mustCache(size int) *lru.Cache[string, *regexp2.Regexp] {
	c, err := lru.New[string, *regexp2.Regexp](size)
	if err != nil {
		panic(err)
	}
	return c
}

const edgeSpace = `[\s\p{Z}\p{C}]+`

// punctuationPattern matches punctuation runs that touch a word boundary or
// the ends of the string. Runs inside a word (don't, well-known) are kept.
// Characters of letters are not punctuation even when Unicode says so.
func punctuationPattern(letters string) *regexp2.Regexp {
	if re, ok := punctCache.Get(letters); ok {
		return re
	}

	p := `\p{P}`
	if letters != "" {
		p = `(?![` + ClassEscape(letters) + `])` + p
	}
	expr := `(^` + p + `+)` +
		`|(` + p + `+` + edgeSpace + p + `+)` +
		`|(` + edgeSpace + p + `+)` +
		`|(` + p + `+` + edgeSpace + `)` +
		`|(` + p + `+\z)`

	re := regexp2.MustCompile(expr, regexp2.None)
	punctCache.Add(letters, re)
	return re
}

// Words splits text into lower-case words. Line breaks (<br> forms and
// newlines) separate words, punctuation at word edges is dropped, and
// punctuation inside a word is kept. Characters of the optional letters are
// treated as letters, which matters for orthographies that write sounds with
// apostrophes or similar marks.
func Words(text string, letters ...string) []string {
	s := lineBreak.ReplaceAllString(text, " ")
	s = domain.LowerWord(s)

	re := punctuationPattern(letterSet(letters))
	if out, err := re.Replace(s, " ", -1, -1); err == nil {
		s = out
	}

	s = strings.TrimFunc(s, isJSSpace)
	if s == "" {
		return []string{}
	}
	return strings.FieldsFunc(s, isWordSeparator)
}

// UniqueWords is Words with duplicates removed, keeping first occurrences.
func UniqueWords(text string, letters ...string) []string {
	return Uniq(Words(text, letters...))
}

// Uniq removes duplicate strings, keeping the first occurrence of each.
func Uniq(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// IsNumeric reports whether a token reads as a JavaScript number literal
// ("12", "3.5", "1e3", "0x1f"). Such tokens are not counted as words.
func IsNumeric(word string) bool {
	s := strings.TrimFunc(word, isJSSpace)
	if s == "" {
		return true
	}
	return jsDecimal.MatchString(s) || jsRadix.MatchString(s) || jsInf.MatchString(s)
}

func letterSet(letters []string) string {
	if len(letters) == 0 {
		return ""
	}
	seen := make(map[rune]struct{})
	var b strings.Builder
	for _, l := range letters {
		for _, r := range l {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			b.WriteRune(r)
		}
	}
	return b.String()
}
