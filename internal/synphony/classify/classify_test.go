package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var languageGPCs = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"ch", "'", "b'", "-", "aa", "ng",
}

func without(list []string, drop string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != drop {
			out = append(out, s)
		}
	}
	return out
}

func TestCheckStory_PossibleWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		text          string
		known         []string
		wantPossible  []string
		wantRemaining []string
	}{
		{
			name:          "letter combination validated separately from letters",
			text:          "a bad cad chad ch,ad had d,ach d,ac",
			known:         []string{"a", "b", "ch", "d", "n"},
			wantPossible:  []string{"a", "bad", "chad", "ch,ad", "d,ach"},
			wantRemaining: []string{"cad", "had", "d,ac"},
		},
		{
			name:          "letter combination and its letters",
			text:          "a bad cad chad ch,ad had d,ach d,ac",
			known:         []string{"a", "b", "ch", "h", "d", "n"},
			wantPossible:  []string{"a", "bad", "chad", "ch,ad", "had", "d,ach"},
			wantRemaining: []string{"cad", "d,ac"},
		},
		{
			name:          "single quote as grapheme",
			text:          "o'o 'obo bodo' cob",
			known:         []string{"'", "b", "o", "d"},
			wantPossible:  []string{"o'o", "'obo", "bodo'"},
			wantRemaining: []string{"cob"},
		},
		{
			name:          "single quote only inside a digraph",
			text:          "o'o b'ob bob' ob'o cob",
			known:         []string{"b", "b'", "o", "d"},
			wantPossible:  []string{"b'ob", "bob'", "ob'o"},
			wantRemaining: []string{"o'o", "cob"},
		},
		{
			name:          "hyphen as grapheme",
			text:          "o-o -obo bodo- cob d,oc",
			known:         []string{"b", "-", "o", "d"},
			wantPossible:  []string{"o-o", "-obo", "bodo-"},
			wantRemaining: []string{"cob", "d,oc"},
		},
		{
			name:          "double letter combination not learned",
			text:          "a and nad dan aa dad aand naad daan",
			known:         []string{"a", "d", "n"},
			wantPossible:  []string{"a", "and", "nad", "dan", "dad"},
			wantRemaining: []string{"aa", "aand", "naad", "daan"},
		},
		{
			name:          "only unknown letter is part of a known digraph",
			text:          "a an ang gang ga nga ngag",
			known:         without(languageGPCs, "g"),
			wantPossible:  []string{"a", "an", "ang", "nga"},
			wantRemaining: []string{"gang", "ga", "ngag"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewChecker(languageGPCs, false)
			got := c.CheckStory(Story{Known: tt.known, Text: tt.text})

			assert.ElementsMatch(t, tt.wantPossible, got.PossibleWords)
			assert.ElementsMatch(t, tt.wantRemaining, got.RemainingWords)
			assert.Empty(t, got.FocusWords)
			assert.Empty(t, got.CumulativeWords)
			assert.Equal(t, len(tt.wantPossible), got.ReadableWordCount)
		})
	}
}

func TestCheckStory_Partition(t *testing.T) {
	t.Parallel()

	c := NewChecker(languageGPCs, false)
	got := c.CheckStory(Story{
		Focus:      []string{"cat", "rat"},
		Cumulative: []string{"cat", "mat", "at"},
		Known:      []string{"a", "c", "m", "r", "t"},
		Text:       "The cat sat on the mat. A cat, a rat, tram 42!",
		SightWords: "the on",
	})

	assert.Equal(t, []string{"cat", "rat"}, got.FocusWords)
	assert.Equal(t, []string{"mat"}, got.CumulativeWords)
	assert.Equal(t, []string{"tram", "a"}, got.PossibleWords)
	assert.Equal(t, []string{"the", "on"}, got.SightWords)
	assert.Equal(t, []string{"sat", "42"}, got.RemainingWords)
	assert.Equal(t, 5, got.ReadableWordCount)
	assert.Equal(t, 11, got.TotalWordCount)
	assert.Equal(t, []string{"42"}, got.Numbers())
	assert.Equal(t, []string{"sat"}, got.NotFound())
}

func TestCheckStory_LongestFirst(t *testing.T) {
	t.Parallel()

	c := NewChecker(languageGPCs, false)
	got := c.CheckStory(Story{
		Known: []string{"a", "b", "ch", "d", "n"},
		Text:  "a bad cad chad ch,ad had d,ach d,ac",
	})

	assert.Equal(t, []string{"ch,ad", "d,ach", "chad", "bad", "a"}, got.PossibleWords)
	assert.Equal(t, []string{"d,ac", "cad", "had"}, got.RemainingWords)
}

func TestCheckStory_NoKnownGraphemes(t *testing.T) {
	t.Parallel()

	c := NewChecker(languageGPCs, false)
	got := c.CheckStory(Story{
		Cumulative: []string{"dog"},
		Text:       "Dog and cat.",
	})

	assert.Empty(t, got.PossibleWords)
	assert.Equal(t, []string{"dog"}, got.CumulativeWords)
	assert.ElementsMatch(t, []string{"and", "cat"}, got.RemainingWords)
	assert.Equal(t, 3, got.TotalWordCount)
}

func TestCheckStory_PossibleWordsDisabled(t *testing.T) {
	t.Parallel()

	text := "a bad cad chad"
	known := []string{"a", "b", "ch", "d"}

	for _, c := range []*Checker{
		NewChecker(languageGPCs, false, WithPossibleWords(false)),
		NewChecker(languageGPCs, true),
	} {
		got := c.CheckStory(Story{Known: known, Text: text})
		assert.Empty(t, got.PossibleWords)
		assert.Len(t, got.RemainingWords, 4)
		assert.Equal(t, 0, got.ReadableWordCount)
	}
}

func TestCheckStory_FullNotationKnown(t *testing.T) {
	t.Parallel()

	c := NewChecker(nil, true)
	got := c.CheckStory(Story{
		Focus: []string{"bat"},
		Known: []string{"b_b", "a_a", "t_t"},
		Text:  "bat tab",
	})

	assert.Equal(t, []string{"bat"}, got.FocusWords)
	assert.Equal(t, []string{"tab"}, got.RemainingWords)
}

func TestCheckStory_SightWordsOnlyFromRemaining(t *testing.T) {
	t.Parallel()

	c := NewChecker(languageGPCs, false)
	got := c.CheckStory(Story{
		Focus:      []string{"cat"},
		Known:      []string{"c", "a", "t"},
		Text:       "cat the",
		SightWords: "cat the",
	})

	assert.Equal(t, []string{"cat"}, got.FocusWords)
	assert.Equal(t, []string{"the"}, got.SightWords)
	assert.Empty(t, got.RemainingWords)
	assert.Equal(t, 1, got.ReadableWordCount)
}

func TestCheckStory_EmptyText(t *testing.T) {
	t.Parallel()

	got := NewChecker(languageGPCs, false).CheckStory(Story{Known: []string{"a"}})
	assert.NotNil(t, got.RemainingWords)
	assert.Empty(t, got.RemainingWords)
	assert.Equal(t, 0, got.TotalWordCount)
}

func TestCheckStory_Concurrent(t *testing.T) {
	t.Parallel()

	c := NewChecker(languageGPCs, false)
	text := strings.Repeat("a bad cad chad ", 20)
	done := make(chan int, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- len(c.CheckStory(Story{Known: []string{"a", "b", "ch", "d"}, Text: text}).PossibleWords)
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, 3, <-done)
	}
}

func TestCheckStory_PatternCacheIsBounded(t *testing.T) {
	t.Parallel()

	checker := NewChecker(languageGPCs, false)
	for i := 0; i < 26; i++ {
		for j := i + 1; j <= 26; j += 3 {
			checker.CheckStory(Story{Known: languageGPCs[i:j], Text: "ab cab"})
		}
	}
	assert.LessOrEqual(t, checker.patterns.Len(), patternCacheSize)

	res := checker.CheckStory(Story{Known: []string{"a", "b", "c"}, Text: "ab cab"})
	assert.Equal(t, []string{"cab", "ab"}, res.PossibleWords)
}
