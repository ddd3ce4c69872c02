// Package curriculum models the ordered stages (decodability) and levels
// (readability) of a reader curriculum.
package curriculum

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/heartmarshall/synphony-backend/internal/domain"
)

// Limits applied when a curriculum defines no levels.
const (
	DefaultMaxWordsPerSentence        = 9999
	DefaultMaxWordsPerPage            = 9999
	DefaultMaxWordsPerBook            = 999999
	DefaultMaxUniqueWordsPerBook      = 99999
	DefaultMaxAverageWordsPerSentence = 99999
)

// Model is an immutable set of stages and levels. A settings reload builds a
// new Model; there is no partial update.
type Model struct {
	stages          []domain.Stage
	levels          []domain.Level
	letters         []string
	useAllowedWords bool
}

// FromSettings builds a Model from a settings document. Stage allowed-word
// lists are resolved separately with WithAllowedWords; a stage without a
// file simply allows nothing.
func FromSettings(s domain.ReaderSettings) *Model {
	m := &Model{
		letters:         domain.SplitList(s.Letters),
		useAllowedWords: bool(s.UseAllowedWords),
		stages:          make([]domain.Stage, 0, len(s.Stages)),
		levels:          make([]domain.Level, 0, len(s.Levels)),
	}

	for i, st := range s.Stages {
		m.stages = append(m.stages, domain.Stage{
			Name:             strconv.Itoa(i + 1),
			Letters:          domain.SplitList(st.Letters),
			SightWords:       domain.SplitList(st.SightWords),
			AllowedWordsFile: strings.TrimSpace(st.AllowedWordsFile),
		})
	}

	for i, lv := range s.Levels {
		things := make([]string, 0, len(lv.ThingsToRemember))
		for _, t := range lv.ThingsToRemember {
			if t = strings.TrimSpace(t); t != "" {
				things = append(things, t)
			}
		}
		m.levels = append(m.levels, domain.Level{
			Name:                       strconv.Itoa(i + 1),
			MaxWordsPerSentence:        int(lv.MaxWordsPerSentence),
			MaxWordsPerPage:            int(lv.MaxWordsPerPage),
			MaxWordsPerBook:            int(lv.MaxWordsPerBook),
			MaxUniqueWordsPerBook:      int(lv.MaxUniqueWordsPerBook),
			MaxAverageWordsPerSentence: int(lv.MaxAverageWordsPerSentence),
			ThingsToRemember:           things,
		})
	}

	return m
}

// WithAllowedWords returns a copy of m with the allowed-word lists of its
// stages filled from files, keyed by file name. Stages whose file is missing
// keep an empty list.
func (m *Model) WithAllowedWords(files map[string]string) *Model {
	cp := *m
	cp.stages = make([]domain.Stage, len(m.stages))
	for i, st := range m.stages {
		if content, ok := files[st.AllowedWordsFile]; ok && st.AllowedWordsFile != "" {
			st.AllowedWords = ParseAllowedWords(content)
		}
		cp.stages[i] = st
	}
	return &cp
}

// ParseAllowedWords reads an allowed-word file: words separated by white
// space or commas, lower-cased, first occurrence kept.
func ParseAllowedWords(content string) []string {
	fields := strings.FieldsFunc(content, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := domain.LowerWord(f)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// UseAllowedWords reports whether stages are defined by allowed-word lists
// instead of graphemes.
func (m *Model) UseAllowedWords() bool { return m.useAllowedWords }

// Letters is the alphabet of the settings in entry order.
func (m *Model) Letters() []string { return m.letters }

// StageCount returns the number of stages.
func (m *Model) StageCount() int { return len(m.stages) }

// LevelCount returns the number of levels.
func (m *Model) LevelCount() int { return len(m.levels) }

// Stage returns stage n (1-based).
func (m *Model) Stage(n int) (domain.Stage, bool) {
	if n < 1 || n > len(m.stages) {
		return domain.Stage{}, false
	}
	return m.stages[n-1], true
}

// Stages returns stages 1..n. n <= 0 or past the end returns every stage.
func (m *Model) Stages(n int) []domain.Stage {
	if n <= 0 || n > len(m.stages) {
		n = len(m.stages)
	}
	return m.stages[:n:n]
}

// Level returns level n (1-based).
func (m *Model) Level(n int) (domain.Level, bool) {
	if n < 1 || n > len(m.levels) {
		return domain.Level{}, false
	}
	return m.levels[n-1], true
}

// KnownGraphemes returns the graphemes of stages 1..n.
func (m *Model) KnownGraphemes(n int) []string {
	return m.union(n, func(s domain.Stage) []string { return s.Letters })
}

// StageGraphemes returns the graphemes introduced at stage n only.
func (m *Model) StageGraphemes(n int) []string {
	st, ok := m.Stage(n)
	if !ok {
		return []string{}
	}
	return append([]string{}, st.Letters...)
}

// SightWords returns the sight words of stages 1..n. Sight words of earlier
// stages stay in the list even once they become decodable.
func (m *Model) SightWords(n int) []string {
	return m.union(n, func(s domain.Stage) []string { return s.SightWords })
}

// AllowedWords concatenates the allowed-word lists of stages 1..n, keeping at
// most max words when max is positive.
func (m *Model) AllowedWords(n, max int) []string {
	out := []string{}
	for _, st := range m.Stages(n) {
		out = append(out, st.AllowedWords...)
	}
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

// OrderLetters sorts graphemes by their position in the settings alphabet.
// Graphemes outside the alphabet come first, in their original order.
func (m *Model) OrderLetters(graphemes []string) []string {
	pos := make(map[string]int, len(m.letters))
	for i, l := range m.letters {
		if _, ok := pos[l]; !ok {
			pos[l] = i
		}
	}
	rank := func(g string) int {
		if p, ok := pos[g]; ok {
			return p
		}
		return -1
	}
	out := append([]string{}, graphemes...)
	sort.SliceStable(out, func(i, j int) bool { return rank(out[i]) < rank(out[j]) })
	return out
}

// Limits returns the limits of level n, or the defaults when the curriculum
// has no levels. A zero limit means "no limit".
func (m *Model) Limits(n int) domain.Level {
	if len(m.levels) == 0 {
		return domain.Level{
			MaxWordsPerSentence:        DefaultMaxWordsPerSentence,
			MaxWordsPerPage:            DefaultMaxWordsPerPage,
			MaxWordsPerBook:            DefaultMaxWordsPerBook,
			MaxUniqueWordsPerBook:      DefaultMaxUniqueWordsPerBook,
			MaxAverageWordsPerSentence: DefaultMaxAverageWordsPerSentence,
		}
	}
	lv, ok := m.Level(n)
	if !ok {
		return domain.Level{}
	}
	return lv
}

func (m *Model) union(n int, pick func(domain.Stage) []string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, st := range m.Stages(n) {
		for _, s := range pick(st) {
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
