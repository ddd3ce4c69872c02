package readers

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/synphony"
	"github.com/heartmarshall/synphony-backend/internal/synphony/markup"
	"github.com/heartmarshall/synphony-backend/internal/synphony/tokenize"
)

// StageWords returns the sorted word list of a stage.
func (s *Service) StageWords(ctx context.Context, input StageWordsInput) ([]domain.WordRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	snap, err := s.Snapshot(ctx, input.Curriculum)
	if err != nil {
		return nil, err
	}
	return snap.StageWordList(input.Stage, input.Sort)
}

// StageLetters returns the graphemes known at a stage in alphabet order.
func (s *Service) StageLetters(ctx context.Context, input StageLettersInput) ([]string, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	snap, err := s.Snapshot(ctx, input.Curriculum)
	if err != nil {
		return nil, err
	}
	return snap.StageLetters(input.Stage)
}

// CheckDecodable marks the words of a page a reader at the stage cannot
// decode.
func (s *Service) CheckDecodable(ctx context.Context, input CheckDecodableInput) (markup.DecodableResult, error) {
	if err := input.Validate(); err != nil {
		return markup.DecodableResult{}, err
	}
	snap, err := s.Snapshot(ctx, input.Curriculum)
	if err != nil {
		return markup.DecodableResult{}, err
	}
	return snap.CheckDecodable(input.Stage, s.normalizeElements(input.Elements))
}

// CheckLeveled marks the sentences of a page that are too long for the
// level.
func (s *Service) CheckLeveled(ctx context.Context, input CheckLeveledInput) (markup.LeveledResult, error) {
	if err := input.Validate(); err != nil {
		return markup.LeveledResult{}, err
	}
	snap, err := s.Snapshot(ctx, input.Curriculum)
	if err != nil {
		return markup.LeveledResult{}, err
	}
	return snap.CheckLeveled(input.Level, s.normalizeElements(input.Elements))
}

// BookStats measures a book against the limits of the level.
func (s *Service) BookStats(ctx context.Context, input BookStatsInput) (synphony.BookReport, error) {
	if err := input.Validate(); err != nil {
		return synphony.BookReport{}, err
	}
	snap, err := s.Snapshot(ctx, input.Curriculum)
	if err != nil {
		return synphony.BookReport{}, err
	}
	return snap.BookStats(input.Level, s.normalizeAll(input.Pages))
}

// Sentences splits a text into sentence and space fragments. It needs no
// curriculum; extra punctuation is added to the configured set.
func (s *Service) Sentences(ctx context.Context, input SentencesInput) ([]domain.TextFragment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	punct := strings.TrimSpace(s.cfg.Engine.ExtraSentencePunct + " " + input.ExtraPunct)
	tok, err := tokenize.New(punct)
	if err != nil {
		return nil, fmt.Errorf("sentence punctuation: %w", err)
	}
	return tok.Sentences(s.normalize(input.Text)), nil
}

func (s *Service) normalizeElements(elements []markup.Element) []markup.Element {
	out := make([]markup.Element, len(elements))
	for i, el := range elements {
		out[i] = markup.Element{Tag: el.Tag, HTML: s.normalize(el.HTML)}
	}
	return out
}
