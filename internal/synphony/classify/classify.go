// Package classify sorts the words of a story by how a reader at a given
// stage can read them.
package classify

import (
	"slices"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/synphony/grapheme"
	"github.com/heartmarshall/synphony-backend/internal/synphony/tokenize"
)

// DefaultMatchTimeout bounds a single decodability match. Words that hit it
// are treated as not decodable.
const DefaultMatchTimeout = 250 * time.Millisecond

// Checker classifies story words against the grapheme table of one
// language. It is safe for concurrent use.
type Checker struct {
	gpcs          []string
	fullNotation  bool
	possibleWords bool
	matchTimeout  time.Duration

	patterns *lru.Cache[string, *regexp2.Regexp]
}

// patternCacheSize bounds the compiled patterns a Checker keeps. Each known
// grapheme set needs two.
const patternCacheSize = 64

// Option configures a Checker.
type Option func(*Checker)

// WithPossibleWords toggles the pass that accepts words decodable from the
// known graphemes even when no word list contains them. On by default.
func WithPossibleWords(enabled bool) Option {
	return func(c *Checker) { c.possibleWords = enabled }
}

// WithMatchTimeout overrides DefaultMatchTimeout.
func WithMatchTimeout(d time.Duration) Option {
	return func(c *Checker) {
		if d > 0 {
			c.matchTimeout = d
		}
	}
}

// NewChecker returns a Checker for a language whose grapheme table lists
// gpcs. fullNotation is set when the table uses phoneme_grapheme notation;
// the possible-word pass cannot work on it and is skipped.
func NewChecker(gpcs []string, fullNotation bool, opts ...Option) *Checker {
	c := &Checker{
		gpcs:          slices.Clone(gpcs),
		fullNotation:  fullNotation,
		possibleWords: true,
		matchTimeout:  DefaultMatchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	// lru.New only fails on a non-positive size.
	c.patterns, _ = lru.New[string, *regexp2.Regexp](patternCacheSize)
	return c
}

// Story is the input of a story check.
type Story struct {
	// Focus words are the words of the current stage.
	Focus []string
	// Cumulative words are the words of every stage up to the current one.
	Cumulative []string
	// Known graphemes, in GPC notation.
	Known []string
	// Text may contain HTML line breaks.
	Text string
	// SightWords is a space separated list.
	SightWords string
}

// CheckStory partitions the distinct words of a story into focus,
// cumulative, possible and sight words, leaving the rest in RemainingWords.
// Every list is ordered longest first.
func (c *Checker) CheckStory(s Story) domain.StoryCheckResult {
	var letters []string
	var vocab []string
	if len(s.Known) > 0 {
		letters = grapheme.FullToRegular(s.Known)
		vocab = tokenize.Words(s.Text, letters...)
	} else {
		vocab = tokenize.Words(s.Text)
	}

	total := 0
	for _, w := range vocab {
		if !tokenize.IsNumeric(w) {
			total++
		}
	}

	compacted := tokenize.Uniq(vocab)

	focus := intersect(s.Focus, compacted)
	remaining := difference(compacted, focus)

	cumulative := intersect(intersect(s.Cumulative, vocab), remaining)
	remaining = difference(remaining, cumulative)

	possible := []string{}
	if c.possibleWords && !c.fullNotation && len(letters) > 0 {
		possible = c.possible(remaining, letters)
		remaining = difference(remaining, possible)
	}

	sight := []string{}
	if strings.TrimSpace(s.SightWords) != "" {
		sight = intersect(strings.Split(s.SightWords, " "), remaining)
		remaining = difference(remaining, sight)
	}

	return domain.StoryCheckResult{
		FocusWords:        sortByLength(focus),
		CumulativeWords:   sortByLength(cumulative),
		PossibleWords:     sortByLength(possible),
		SightWords:        sortByLength(sight),
		RemainingWords:    sortByLength(remaining),
		ReadableWordCount: len(focus) + len(cumulative) + len(possible),
		TotalWordCount:    total,
	}
}

// possible returns the words made only of known graphemes, with word-internal
// punctuation allowed, that contain no grapheme the reader has not learned.
func (c *Checker) possible(words, letters []string) []string {
	quoted := make([]string, len(letters))
	for i, l := range letters {
		quoted[i] = tokenize.QuoteLetter(l)
	}
	alt := strings.Join(quoted, "|")
	class := tokenize.ClassEscape(strings.Join(letters, ""))
	decodable := c.pattern(`^((` + alt + `)+((?![` + class + `])[\p{P}]*(` + alt + `)*)*)$`)

	var excluded *regexp2.Regexp
	if unknown := c.unknown(letters); len(unknown) > 0 {
		for i, u := range unknown {
			unknown[i] = tokenize.QuoteLetter(u)
		}
		excluded = c.pattern(`(` + strings.Join(unknown, "|") + `)+`)
	}

	out := []string{}
	for _, w := range words {
		if !matches(decodable, w) {
			continue
		}
		if excluded != nil && matches(excluded, w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// unknown lists the graphemes of the language the reader has not learned,
// leaving out any that occur inside a known grapheme: "h" is not unknown
// when "ch" is known, since it then matches inside "ch" words.
func (c *Checker) unknown(letters []string) []string {
	joined := strings.Join(letters, "|")
	out := []string{}
	for _, g := range c.gpcs {
		if slices.Contains(letters, g) || strings.Contains(joined, g) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func (c *Checker) pattern(expr string) *regexp2.Regexp {
	if re, ok := c.patterns.Get(expr); ok {
		return re
	}
	re, err := regexp2.Compile(expr, regexp2.IgnoreCase)
	if err != nil {
		// Graphemes are quoted, so this only happens on malformed input;
		// match nothing.
		re = regexp2.MustCompile(`(?!)`, regexp2.None)
	}
	re.MatchTimeout = c.matchTimeout
	c.patterns.Add(expr, re)
	return re
}

func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// intersect returns the members of a that are in b, in a's order, without
// duplicates.
func intersect(a, b []string) []string {
	in := make(map[string]struct{}, len(b))
	for _, s := range b {
		in[s] = struct{}{}
	}
	seen := make(map[string]struct{}, len(a))
	out := []string{}
	for _, s := range a {
		if _, ok := in[s]; !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// difference returns the members of a that are not in b, in a's order.
func difference(a, b []string) []string {
	drop := make(map[string]struct{}, len(b))
	for _, s := range b {
		drop[s] = struct{}{}
	}
	out := []string{}
	for _, s := range a {
		if _, ok := drop[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

func sortByLength(words []string) []string {
	sort.SliceStable(words, func(i, j int) bool {
		return utf8.RuneCountInString(words[i]) > utf8.RuneCountInString(words[j])
	})
	return words
}
