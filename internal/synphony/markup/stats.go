package markup

import (
	"math"

	"github.com/heartmarshall/synphony-backend/internal/synphony/tokenize"
)

// BookStats are the whole-book counts a leveled reader is measured by.
type BookStats struct {
	WordCount               int `json:"word_count"`
	MaxWordsPerPage         int `json:"max_words_per_page"`
	UniqueWords             int `json:"unique_words"`
	AverageWordsPerSentence int `json:"average_words_per_sentence"`
}

// ComputeBookStats measures the pages of a book, each given as HTML. The
// average is rounded half up and is 0 for a book without sentences.
func ComputeBookStats(pages []string, tok *tokenize.Tokenizer) BookStats {
	var st BookStats
	unique := make(map[string]struct{})
	sentences := 0

	for _, page := range pages {
		pageWords := 0
		for _, frag := range tok.Sentences(page) {
			if !frag.IsSentence {
				continue
			}
			sentences++
			pageWords += frag.WordCount()
			for _, w := range frag.Words {
				unique[w] = struct{}{}
			}
		}
		st.WordCount += pageWords
		if pageWords > st.MaxWordsPerPage {
			st.MaxWordsPerPage = pageWords
		}
	}

	st.UniqueWords = len(unique)
	if sentences > 0 {
		st.AverageWordsPerSentence = int(math.Floor(float64(st.WordCount)/float64(sentences) + 0.5))
	}
	return st
}
