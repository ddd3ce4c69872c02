// Package synphony ties the text-analysis packages together. Build turns a
// settings document and its sample texts into an immutable Snapshot that
// answers word-list and checking requests.
package synphony

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/synphony/classify"
	"github.com/heartmarshall/synphony-backend/internal/synphony/curriculum"
	"github.com/heartmarshall/synphony-backend/internal/synphony/markup"
	"github.com/heartmarshall/synphony-backend/internal/synphony/tokenize"
	"github.com/heartmarshall/synphony-backend/internal/synphony/vocab"
)

// DefaultMaxAllowedWords caps the distinct words read from sample texts and
// the length of allowed-word lists.
const DefaultMaxAllowedWords = 10000

// Options tune a build. Use DefaultOptions as the starting point.
type Options struct {
	MaxAllowedWords    int
	ExtraSentencePunct string
	PossibleWords      bool
	CacheSize          int
	MaxSyllables       int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		MaxAllowedWords: DefaultMaxAllowedWords,
		PossibleWords:   true,
		CacheSize:       vocab.DefaultCacheSize,
		MaxSyllables:    vocab.MaxSyllables,
	}
}

func (o Options) normalized() Options {
	if o.MaxAllowedWords <= 0 {
		o.MaxAllowedWords = DefaultMaxAllowedWords
	}
	if o.CacheSize <= 0 {
		o.CacheSize = vocab.DefaultCacheSize
	}
	if o.MaxSyllables <= 0 || o.MaxSyllables > vocab.MaxSyllables {
		o.MaxSyllables = vocab.MaxSyllables
	}
	return o
}

// Snapshot is everything needed to serve one curriculum. It never changes
// after Build and is safe for concurrent use.
type Snapshot struct {
	model     *curriculum.Model
	index     *vocab.Index
	tok       *tokenize.Tokenizer
	checker   *classify.Checker
	counts    map[string]int
	opts      Options
	syllables []int
}

// Build assembles a Snapshot. Samples are read in the given order: allowed
// lists are matched to stages by file name, language data files are merged
// and other texts are counted word by word.
func Build(settings domain.ReaderSettings, samples []domain.SampleText, opts Options) (*Snapshot, error) {
	opts = opts.normalized()

	lang := vocab.NewLanguageData()
	lang.AddGrapheme(domain.SplitList(settings.Letters)...)
	lang.AddGrapheme(domain.SplitList(settings.LetterCombinations)...)
	lang.AddWords(domain.SplitList(settings.MoreWords)...)

	counts := make(map[string]int)
	order := make([]string, 0)
	allowed := make(map[string]string)

	for _, sample := range samples {
		switch {
		case sample.Kind == domain.SampleKindAllowed:
			allowed[sample.FileName] = sample.Content
		case vocab.IsLanguageData(sample.Content):
			other, err := vocab.ParseLanguageData(sample.Content)
			if err != nil {
				return nil, fmt.Errorf("synphony.Build: sample %q: %w", sample.FileName, err)
			}
			lang.Merge(other)
		default:
			words := tokenize.Words(sample.Content)
			lim := len(words)
			if len(counts)+len(words) > opts.MaxAllowedWords {
				lim = opts.MaxAllowedWords - len(counts)
			}
			for i := 0; i < lim; i++ {
				w := words[i]
				if _, ok := counts[w]; !ok {
					order = append(order, w)
				}
				counts[w]++
			}
		}
	}

	for _, w := range order {
		lang.AddWord(w, counts[w])
	}

	punct := strings.TrimSpace(settings.SentencePunct + " " + opts.ExtraSentencePunct)
	tok, err := tokenize.New(punct)
	if err != nil {
		return nil, fmt.Errorf("synphony.Build: %w", err)
	}

	index := lang.BuildWithCache(opts.CacheSize)
	syllables := make([]int, opts.MaxSyllables)
	for i := range syllables {
		syllables[i] = i + 1
	}

	return &Snapshot{
		model:     curriculum.FromSettings(settings).WithAllowedWords(allowed),
		index:     index,
		tok:       tok,
		checker:   classify.NewChecker(index.GPCNames(), index.FullNotation(), classify.WithPossibleWords(opts.PossibleWords)),
		counts:    counts,
		opts:      opts,
		syllables: syllables,
	}, nil
}

// Model returns the curriculum of the snapshot.
func (s *Snapshot) Model() *curriculum.Model { return s.model }

// Index returns the vocabulary index of the snapshot.
func (s *Snapshot) Index() *vocab.Index { return s.index }

// Tokenizer returns the sentence tokenizer configured for the curriculum.
func (s *Snapshot) Tokenizer() *tokenize.Tokenizer { return s.tok }

// SampleCount returns how often word occurred in the sample texts.
func (s *Snapshot) SampleCount(word string) int { return s.counts[word] }

func (s *Snapshot) checkStage(stage int) error {
	if stage < 1 || stage > s.model.StageCount() {
		return fmt.Errorf("stage %d: %w", stage, domain.ErrNotFound)
	}
	return nil
}

func (s *Snapshot) limits(level int) (domain.Level, error) {
	if s.model.LevelCount() > 0 && (level < 1 || level > s.model.LevelCount()) {
		return domain.Level{}, fmt.Errorf("level %d: %w", level, domain.ErrNotFound)
	}
	return s.model.Limits(level), nil
}

// StageWords returns the vocabulary words a reader at stage can decode.
func (s *Snapshot) StageWords(stage int) ([]domain.WordRecord, error) {
	if err := s.checkStage(stage); err != nil {
		return nil, err
	}
	return s.stageWords(stage), nil
}

func (s *Snapshot) stageWords(stage int) []domain.WordRecord {
	known := s.model.KnownGraphemes(stage)
	if len(known) == 0 {
		return []domain.WordRecord{}
	}
	return s.index.Select(s.query(known, known))
}

func (s *Snapshot) query(desired, known []string) vocab.Query {
	return vocab.Query{
		Desired:         desired,
		Known:           known,
		RestrictToKnown: true,
		AllowUpperCase:  true,
		SyllableLengths: s.syllables,
	}
}

// StageLetters returns the graphemes known at stage in alphabet order.
func (s *Snapshot) StageLetters(stage int) ([]string, error) {
	if err := s.checkStage(stage); err != nil {
		return nil, err
	}
	return s.model.OrderLetters(s.model.KnownGraphemes(stage)), nil
}

// StageWordList returns the word list shown for stage: the allowed words
// when the curriculum uses allowed lists, otherwise the decodable words plus
// the sight words taught so far.
func (s *Snapshot) StageWordList(stage int, order domain.SortType) ([]domain.WordRecord, error) {
	if err := s.checkStage(stage); err != nil {
		return nil, err
	}
	if order == "" {
		order = domain.SortAlphabetic
	}
	if !order.IsValid() {
		return nil, domain.NewValidationError("sort", fmt.Sprintf("unknown sort %q", order))
	}

	var words []domain.WordRecord
	if s.model.UseAllowedWords() {
		for _, w := range s.model.AllowedWords(stage, s.opts.MaxAllowedWords) {
			words = append(words, domain.WordRecord{Name: w, Count: s.counts[w]})
		}
	} else {
		words = s.stageWords(stage)
		for _, w := range s.model.SightWords(stage) {
			words = append(words, domain.WordRecord{Name: w, Count: s.counts[w], IsSightWord: true})
		}
	}

	words = uniqueByName(words)
	SortWords(words, order)
	return words, nil
}

func uniqueByName(words []domain.WordRecord) []domain.WordRecord {
	seen := make(map[string]struct{}, len(words))
	out := make([]domain.WordRecord, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w.Name]; ok {
			continue
		}
		seen[w.Name] = struct{}{}
		out = append(out, w)
	}
	return out
}

// SortWords orders words in place. Ties in length and frequency fall back
// to alphabetic order.
func SortWords(words []domain.WordRecord, order domain.SortType) {
	col := collate.New(language.Und)
	alpha := func(i, j int) bool { return col.CompareString(words[i].Name, words[j].Name) < 0 }

	switch order {
	case domain.SortByLength:
		sort.SliceStable(words, func(i, j int) bool {
			li, lj := utf8.RuneCountInString(words[i].Name), utf8.RuneCountInString(words[j].Name)
			if li != lj {
				return li < lj
			}
			return alpha(i, j)
		})
	case domain.SortByFrequency:
		sort.SliceStable(words, func(i, j int) bool {
			if words[i].Count != words[j].Count {
				return words[i].Count > words[j].Count
			}
			return alpha(i, j)
		})
	default:
		sort.SliceStable(words, alpha)
	}
}

// CheckDecodable annotates elements for a reader at stage.
func (s *Snapshot) CheckDecodable(stage int, elements []markup.Element) (markup.DecodableResult, error) {
	if err := s.checkStage(stage); err != nil {
		return markup.DecodableResult{}, err
	}

	opts := markup.DecodableOptions{
		Known:      s.model.KnownGraphemes(stage),
		Focus:      []string{},
		Cumulative: []string{},
	}
	var sight []string
	if s.model.UseAllowedWords() {
		sight = s.model.AllowedWords(stage, s.opts.MaxAllowedWords)
	} else {
		opts.Cumulative = domain.WordNames(s.stageWords(stage))
		if own := s.model.StageGraphemes(stage); len(own) > 0 {
			opts.Focus = s.index.SelectNames(s.query(own, opts.Known))
		}
		sight = s.model.SightWords(stage)
	}
	opts.SightWords = strings.Fields(domain.LowerWord(strings.Join(sight, " ")))

	return markup.CheckDecodable(elements, opts, s.checker), nil
}

// CheckLeveled annotates elements against the limits of level.
func (s *Snapshot) CheckLeveled(level int, elements []markup.Element) (markup.LeveledResult, error) {
	lv, err := s.limits(level)
	if err != nil {
		return markup.LeveledResult{}, err
	}
	return markup.CheckLeveled(elements, markup.LeveledOptions{
		MaxWordsPerSentence: lv.MaxWordsPerSentence,
		MaxWordsPerPage:     lv.MaxWordsPerPage,
	}, s.tok), nil
}

// Measure compares one book statistic with its level limit.
type Measure struct {
	Actual     int  `json:"actual"`
	Max        int  `json:"max"`
	Acceptable bool `json:"acceptable"`
}

func measure(actual, max int) Measure {
	return Measure{Actual: actual, Max: max, Acceptable: max == 0 || actual <= max}
}

// BookReport is the outcome of BookStats.
type BookReport struct {
	Level                   int              `json:"level"`
	WordsPerBook            Measure          `json:"words_per_book"`
	WordsPerPage            Measure          `json:"words_per_page"`
	UniqueWords             Measure          `json:"unique_words"`
	AverageWordsPerSentence Measure          `json:"average_words_per_sentence"`
	Stats                   markup.BookStats `json:"stats"`
}

// BookStats measures the pages of a book against the limits of level.
func (s *Snapshot) BookStats(level int, pages []string) (BookReport, error) {
	lv, err := s.limits(level)
	if err != nil {
		return BookReport{}, err
	}

	clean := make([]string, len(pages))
	for i, p := range pages {
		clean[i] = markup.RemoveSynphonyMarkup(p)
	}
	st := markup.ComputeBookStats(clean, s.tok)

	return BookReport{
		Level:                   level,
		WordsPerBook:            measure(st.WordCount, lv.MaxWordsPerBook),
		WordsPerPage:            measure(st.MaxWordsPerPage, lv.MaxWordsPerPage),
		UniqueWords:             measure(st.UniqueWords, lv.MaxUniqueWordsPerBook),
		AverageWordsPerSentence: measure(st.AverageWordsPerSentence, lv.MaxAverageWordsPerSentence),
		Stats:                   st,
	}, nil
}

// Sentences splits text with the curriculum's sentence punctuation.
func (s *Snapshot) Sentences(text string) []domain.TextFragment {
	return s.tok.Sentences(text)
}
