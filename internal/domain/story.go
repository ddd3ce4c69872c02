package domain

import "regexp"

var numericWord = regexp.MustCompile(`^[\p{N}\p{P}]+$`)

// StoryCheckResult partitions the distinct words of a text. Every word lands
// in at most one list; each list is ordered longest first.
type StoryCheckResult struct {
	FocusWords        []string `json:"focus_words"`
	CumulativeWords   []string `json:"cumulative_words"`
	PossibleWords     []string `json:"possible_words"`
	SightWords        []string `json:"sight_words"`
	RemainingWords    []string `json:"remaining_words"`
	ReadableWordCount int      `json:"readable_word_count"`
	TotalWordCount    int      `json:"total_word_count"`
}

// IsNumberLike reports whether a token consists only of digits and
// punctuation ("12", "3.5", "1,000").
func IsNumberLike(word string) bool {
	return numericWord.MatchString(word)
}

// Numbers returns the remaining words that are number-like. They stay in
// RemainingWords; callers subtract them for a true unknown count.
func (r StoryCheckResult) Numbers() []string {
	out := []string{}
	for _, w := range r.RemainingWords {
		if IsNumberLike(w) {
			out = append(out, w)
		}
	}
	return out
}

// NotFound returns RemainingWords minus Numbers.
func (r StoryCheckResult) NotFound() []string {
	out := []string{}
	for _, w := range r.RemainingWords {
		if !IsNumberLike(w) {
			out = append(out, w)
		}
	}
	return out
}
