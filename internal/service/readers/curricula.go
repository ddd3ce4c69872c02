package readers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/synphony"
)

// SaveSettings stores the settings of a curriculum and activates them. The
// document is rejected, and nothing is stored, if a snapshot cannot be built
// from it together with the curriculum's samples.
func (s *Service) SaveSettings(ctx context.Context, input SaveSettingsInput) (*domain.Curriculum, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.NormalizeName(input.Name)
	raw := []byte(s.normalize(string(input.Settings)))
	settings, err := domain.ParseReaderSettings(raw)
	if err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	lock := s.writeLock(name)
	lock.Lock()
	defer lock.Unlock()

	var (
		cur  *domain.Curriculum
		snap *synphony.Snapshot
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		cur, txErr = s.curricula.Upsert(txCtx, name, raw)
		if txErr != nil {
			return fmt.Errorf("upsert curriculum: %w", txErr)
		}
		snap, txErr = s.build(txCtx, cur.ID, settings)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.holder(name).Store(snap)

	s.log.InfoContext(ctx, "curriculum settings saved",
		slog.String("curriculum", name),
		slog.Int("stages", snap.Model().StageCount()),
		slog.Int("levels", snap.Model().LevelCount()),
		slog.Int("words", snap.Index().WordCount()),
	)

	return cur, nil
}

// AddSample stores a sample text or allowed-word list and rebuilds the
// curriculum snapshot.
func (s *Service) AddSample(ctx context.Context, input AddSampleInput) (*domain.SampleText, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.NormalizeName(input.Curriculum)

	lock := s.writeLock(name)
	lock.Lock()
	defer lock.Unlock()

	cur, err := s.curricula.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get curriculum: %w", err)
	}
	settings, err := domain.ParseReaderSettings(cur.Settings)
	if err != nil {
		return nil, fmt.Errorf("parse stored settings: %w", err)
	}

	var (
		sample *domain.SampleText
		snap   *synphony.Snapshot
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		sample, txErr = s.samples.Upsert(txCtx, &domain.SampleText{
			CurriculumID: cur.ID,
			FileName:     strings.TrimSpace(input.FileName),
			Kind:         input.Kind,
			Content:      s.normalize(input.Content),
		})
		if txErr != nil {
			return fmt.Errorf("upsert sample: %w", txErr)
		}
		snap, txErr = s.build(txCtx, cur.ID, settings)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.holder(name).Store(snap)

	s.log.InfoContext(ctx, "sample text saved",
		slog.String("curriculum", name),
		slog.String("file_name", sample.FileName),
		slog.String("kind", sample.Kind.String()),
		slog.Int("words", snap.Index().WordCount()),
	)

	return sample, nil
}

// ListCurricula returns all stored curricula.
func (s *Service) ListCurricula(ctx context.Context) ([]*domain.Curriculum, error) {
	list, err := s.curricula.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list curricula: %w", err)
	}
	return list, nil
}

// DeleteCurriculum removes a curriculum with its samples and drops its
// snapshot.
func (s *Service) DeleteCurriculum(ctx context.Context, name string) error {
	errs := validateName(nil, "name", name)
	if err := validationResult(errs); err != nil {
		return err
	}
	name = domain.NormalizeName(name)

	lock := s.writeLock(name)
	lock.Lock()
	defer lock.Unlock()

	if err := s.curricula.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete curriculum: %w", err)
	}

	s.mu.Lock()
	delete(s.holders, name)
	s.mu.Unlock()

	s.log.InfoContext(ctx, "curriculum deleted", slog.String("curriculum", name))
	return nil
}

// Snapshot returns the active snapshot of a curriculum, loading it from
// storage on first use. Concurrent first calls share one build.
func (s *Service) Snapshot(ctx context.Context, name string) (*synphony.Snapshot, error) {
	name = domain.NormalizeName(name)
	if name == "" {
		return nil, domain.NewValidationError("curriculum", "required")
	}

	h := s.holder(name)
	if snap := h.Load(); snap != nil {
		return snap, nil
	}

	// The load is shared, so one caller's cancellation must not fail the rest.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.loads.Do(name, func() (any, error) {
		cur, err := s.curricula.GetByName(loadCtx, name)
		if err != nil {
			return nil, fmt.Errorf("get curriculum: %w", err)
		}
		settings, err := domain.ParseReaderSettings(cur.Settings)
		if err != nil {
			return nil, fmt.Errorf("parse stored settings: %w", err)
		}
		snap, err := s.build(loadCtx, cur.ID, settings)
		if err != nil {
			return nil, err
		}

		s.log.InfoContext(loadCtx, "curriculum loaded",
			slog.String("curriculum", name),
			slog.Int("words", snap.Index().WordCount()),
		)
		return h.StoreIfEmpty(snap), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*synphony.Snapshot), nil
}

func (s *Service) build(ctx context.Context, curriculumID uuid.UUID, settings domain.ReaderSettings) (*synphony.Snapshot, error) {
	stored, err := s.samples.ListByCurriculum(ctx, curriculumID)
	if err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}
	samples := make([]domain.SampleText, len(stored))
	for i, st := range stored {
		samples[i] = *st
	}

	snap, err := synphony.Build(settings, samples, s.cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("build snapshot: %w", err)
	}
	return snap, nil
}
