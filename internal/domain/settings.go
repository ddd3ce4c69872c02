package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ReaderSettings is the curriculum settings document exchanged with authoring
// clients. Field names follow the established JSON wire format.
type ReaderSettings struct {
	Letters            string          `json:"letters"`
	LetterCombinations string          `json:"letterCombinations"`
	MoreWords          string          `json:"moreWords"`
	Stages             []StageSettings `json:"stages"`
	Levels             []LevelSettings `json:"levels"`
	UseAllowedWords    Flag            `json:"useAllowedWords"`
	SentencePunct      string          `json:"sentencePunct"`
}

// StageSettings is a stage as it appears in the settings document.
type StageSettings struct {
	Letters          string `json:"letters"`
	SightWords       string `json:"sightWords"`
	AllowedWordsFile string `json:"allowedWordsFile,omitempty"`
}

// LevelSettings is a level as it appears in the settings document.
type LevelSettings struct {
	MaxWordsPerSentence        Count    `json:"maxWordsPerSentence"`
	MaxWordsPerPage            Count    `json:"maxWordsPerPage"`
	MaxWordsPerBook            Count    `json:"maxWordsPerBook"`
	MaxUniqueWordsPerBook      Count    `json:"maxUniqueWordsPerBook"`
	MaxAverageWordsPerSentence Count    `json:"maxAverageWordsPerSentence"`
	ThingsToRemember           []string `json:"thingsToRemember"`
}

// ParseReaderSettings decodes a settings document.
func ParseReaderSettings(raw []byte) (ReaderSettings, error) {
	var s ReaderSettings
	if len(bytes.TrimSpace(raw)) == 0 {
		return s, fmt.Errorf("%w: empty document", ErrInvalidSettings)
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return s, nil
}

// Flag is a boolean that also accepts the numeric 0/1 form older settings
// files use.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	switch s := string(bytes.TrimSpace(b)); s {
	case "null", "":
		*f = false
	case "true", "1", `"1"`, `"true"`:
		*f = true
	case "false", "0", `"0"`, `"false"`:
		*f = false
	default:
		return fmt.Errorf("flag: unexpected value %s", s)
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// Count is a non-negative limit that may be written as a number or a
// numeric string. Empty strings and null decode to zero.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "null" {
		*c = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		uq, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}
		s = uq
		if s == "" {
			*c = 0
			return nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("count: %q is not a whole number", s)
	}
	if n < 0 {
		return fmt.Errorf("count: %d is negative", n)
	}
	*c = Count(n)
	return nil
}
