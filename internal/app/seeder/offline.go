package seeder

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/service/readers"
	"github.com/heartmarshall/synphony-backend/internal/synphony"
)

// Offline is an in-memory Target. It validates and builds every curriculum
// exactly like the readers service does, without a database. Dry runs and
// the command line tools use it.
type Offline struct {
	cfg readers.Config

	mu        sync.Mutex
	curricula map[string]*offlineCurriculum
}

type offlineCurriculum struct {
	cur      domain.Curriculum
	settings domain.ReaderSettings
	samples  []domain.SampleText
	snap     *synphony.Snapshot
}

// NewOffline creates an empty Offline target.
func NewOffline(cfg readers.Config) *Offline {
	return &Offline{cfg: cfg, curricula: make(map[string]*offlineCurriculum)}
}

// SaveSettings stores a settings document and builds the curriculum.
func (o *Offline) SaveSettings(_ context.Context, input readers.SaveSettingsInput) (*domain.Curriculum, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.NormalizeName(input.Name)
	raw := []byte(o.normalize(string(input.Settings)))
	settings, err := domain.ParseReaderSettings(raw)
	if err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	now := time.Now()
	c, ok := o.curricula[name]
	if !ok {
		c = &offlineCurriculum{cur: domain.Curriculum{ID: uuid.New(), Name: name, CreatedAt: now}}
	}

	snap, err := synphony.Build(settings, c.samples, o.cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("build snapshot: %w", err)
	}

	c.cur.Settings = raw
	c.cur.UpdatedAt = now
	c.settings = settings
	c.snap = snap
	o.curricula[name] = c

	cur := c.cur
	return &cur, nil
}

// AddSample stores a sample text or allowed-word list and rebuilds the
// curriculum.
func (o *Offline) AddSample(_ context.Context, input readers.AddSampleInput) (*domain.SampleText, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.NormalizeName(input.Curriculum)

	o.mu.Lock()
	defer o.mu.Unlock()

	c, ok := o.curricula[name]
	if !ok {
		return nil, fmt.Errorf("get curriculum: curriculum %s: %w", name, domain.ErrNotFound)
	}

	now := time.Now()
	sample := domain.SampleText{
		ID:           uuid.New(),
		CurriculumID: c.cur.ID,
		FileName:     strings.TrimSpace(input.FileName),
		Kind:         input.Kind,
		Content:      o.normalize(input.Content),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	samples := slices.Clone(c.samples)
	i := slices.IndexFunc(samples, func(s domain.SampleText) bool {
		return s.FileName == sample.FileName && s.Kind == sample.Kind
	})
	if i >= 0 {
		sample.ID = samples[i].ID
		sample.CreatedAt = samples[i].CreatedAt
		samples[i] = sample
	} else {
		samples = append(samples, sample)
	}
	sortSamples(samples)

	snap, err := synphony.Build(c.settings, samples, o.cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("build snapshot: %w", err)
	}
	c.samples = samples
	c.snap = snap

	return &sample, nil
}

// Snapshot returns the built curriculum.
func (o *Offline) Snapshot(name string) (*synphony.Snapshot, error) {
	name = domain.NormalizeName(name)

	o.mu.Lock()
	defer o.mu.Unlock()

	c, ok := o.curricula[name]
	if !ok {
		return nil, fmt.Errorf("curriculum %s: %w", name, domain.ErrNotFound)
	}
	return c.snap, nil
}

func (o *Offline) normalize(text string) string {
	if !o.cfg.NormalizeNFC {
		return text
	}
	return domain.NormalizeNFC(text)
}

// sortSamples orders samples the way storage lists them: by file name,
// sample texts before allowed lists.
func sortSamples(samples []domain.SampleText) {
	slices.SortStableFunc(samples, func(a, b domain.SampleText) int {
		if c := strings.Compare(a.FileName, b.FileName); c != 0 {
			return c
		}
		return strings.Compare(string(b.Kind), string(a.Kind))
	})
}
