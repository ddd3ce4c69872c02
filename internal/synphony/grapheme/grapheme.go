// Package grapheme turns words into sequences of graphemes, the written units
// a phonics curriculum teaches (single letters and multi-letter units such as
// "ch" or "igh").
package grapheme

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/synphony-backend/internal/domain"
)

// SortByLengthDesc returns a copy of graphemes ordered longest first. Ties
// keep their input order.
func SortByLengthDesc(graphemes []string) []string {
	out := make([]string, len(graphemes))
	copy(out, graphemes)
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i]) > utf8.RuneCountInString(out[j])
	})
	return out
}

// Form segments word into graphemes by greedy longest match, working from the
// end of the word. sorted must be ordered longest first (see
// SortByLengthDesc). A character no grapheme covers becomes a grapheme of its
// own, so joining the result always gives back the word.
func Form(word string, sorted []string) []string {
	var rev []string
	for word != "" {
		hit := false
		for _, g := range sorted {
			if g != "" && strings.HasSuffix(word, g) {
				rev = append(rev, g)
				word = word[:len(word)-len(g)]
				hit = true
				break
			}
		}
		if !hit {
			_, size := utf8.DecodeLastRuneInString(word)
			rev = append(rev, word[len(word)-size:])
			word = word[:len(word)-size]
		}
	}

	form := make([]string, len(rev))
	for i, g := range rev {
		form[len(rev)-1-i] = g
	}
	return form
}

// Reverse joins a grapheme form back to front. The result keys suffix
// searches ("words ending in -ing").
func Reverse(form []string) string {
	var b strings.Builder
	for i := len(form) - 1; i >= 0; i-- {
		b.WriteString(form[i])
	}
	return b.String()
}

// Unique returns the distinct graphemes of a form in first-seen order.
func Unique(form []string) []string {
	seen := make(map[string]struct{}, len(form))
	out := make([]string, 0, len(form))
	for _, g := range form {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

// FullToRegular converts GPC notation to conventional spelling. Full notation
// is phoneme_grapheme ("b_b", "o_a", "l_ll"); a split digraph such as
// "ae_a-e" yields "a" and moves "e" onto the following entry. Simple
// notation ("b", "a", "ll") passes through. The input is not modified.
func FullToRegular(gpcs []string) []string {
	work := make([]string, len(gpcs))
	copy(work, gpcs)

	out := make([]string, 0, len(work))
	for i, g := range work {
		_, spelling, full := strings.Cut(g, "_")
		if !full {
			out = append(out, g)
			continue
		}
		// Only the part between the first and second underscore is used.
		spelling, _, _ = strings.Cut(spelling, "_")
		if first, rest, split := strings.Cut(spelling, "-"); split {
			out = append(out, first)
			if i+1 < len(work) {
				work[i+1] += strings.SplitN(rest, "-", 2)[0]
			}
			continue
		}
		out = append(out, spelling)
	}
	return out
}

// Markup renders word with every grapheme listed in desired wrapped in a
// desired-grapheme span. form must be the grapheme form of word.
func Markup(word string, form []string, desired []string) string {
	want := make(map[string]struct{}, len(desired))
	for _, d := range desired {
		want[d] = struct{}{}
	}

	var b strings.Builder
	rest := word
	for _, g := range form {
		n := len(g)
		if n > len(rest) {
			n = len(rest)
		}
		piece := rest[:n]
		rest = rest[n:]
		if _, ok := want[g]; ok {
			b.WriteString(`<span class="` + domain.ClassDesiredGrapheme + `" data-segment="` + domain.SegmentGrapheme.String() + `">`)
			b.WriteString(piece)
			b.WriteString("</span>")
			continue
		}
		b.WriteString(piece)
	}
	b.WriteString(rest)
	return b.String()
}
