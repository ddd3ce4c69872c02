package domain

// TextFragment is a sentence or the space between two sentences, as cut from
// an HTML string. Text keeps the original markup of the fragment.
type TextFragment struct {
	Text       string   `json:"text"`
	IsSentence bool     `json:"is_sentence"`
	IsSpace    bool     `json:"is_space"`
	Words      []string `json:"words"`
}

// WordCount is the number of words in the fragment.
func (f TextFragment) WordCount() int { return len(f.Words) }
