package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stage is one decodability step: the graphemes introduced at this stage,
// the sight words taught alongside them and, optionally, an allowed-word list
// that replaces decodability checking.
type Stage struct {
	Name             string   `json:"name"`
	Letters          []string `json:"letters"`
	SightWords       []string `json:"sight_words"`
	AllowedWordsFile string   `json:"allowed_words_file,omitempty"`
	AllowedWords     []string `json:"allowed_words,omitempty"`
}

// Level is one readability step.
type Level struct {
	Name                       string   `json:"name"`
	MaxWordsPerSentence        int      `json:"max_words_per_sentence"`
	MaxWordsPerPage            int      `json:"max_words_per_page"`
	MaxWordsPerBook            int      `json:"max_words_per_book"`
	MaxUniqueWordsPerBook      int      `json:"max_unique_words_per_book"`
	MaxAverageWordsPerSentence int      `json:"max_average_words_per_sentence"`
	ThingsToRemember           []string `json:"things_to_remember"`
}

// Curriculum is a named, persisted set of reader settings.
type Curriculum struct {
	ID        uuid.UUID
	Name      string
	Settings  []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SampleText is a text attached to a curriculum: either corpus material the
// vocabulary is counted from, or an allowed-word list referenced by a stage.
type SampleText struct {
	ID           uuid.UUID
	CurriculumID uuid.UUID
	FileName     string
	Kind         SampleKind
	Content      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
