package readers

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/synphony"
)

type curriculumRepo interface {
	Upsert(ctx context.Context, name string, settings []byte) (*domain.Curriculum, error)
	GetByName(ctx context.Context, name string) (*domain.Curriculum, error)
	List(ctx context.Context) ([]*domain.Curriculum, error)
	Delete(ctx context.Context, name string) error
}

type sampleRepo interface {
	Upsert(ctx context.Context, sample *domain.SampleText) (*domain.SampleText, error)
	ListByCurriculum(ctx context.Context, curriculumID uuid.UUID) ([]*domain.SampleText, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the engine options and text handling switches.
type Config struct {
	Engine       synphony.Options
	NormalizeNFC bool
}

// Service manages curricula and answers reader-tool requests against their
// in-memory snapshots.
type Service struct {
	curricula curriculumRepo
	samples   sampleRepo
	tx        txManager
	cfg       Config
	log       *slog.Logger

	mu      sync.Mutex
	holders map[string]*synphony.Holder
	writes  map[string]*sync.Mutex
	loads   singleflight.Group
}

// NewService creates a new Readers service.
func NewService(
	log *slog.Logger,
	curricula curriculumRepo,
	samples sampleRepo,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		curricula: curricula,
		samples:   samples,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "readers"),
		holders:   make(map[string]*synphony.Holder),
		writes:    make(map[string]*sync.Mutex),
	}
}

func (s *Service) holder(name string) *synphony.Holder {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.holders[name]
	if !ok {
		h = &synphony.Holder{}
		s.holders[name] = h
	}
	return h
}

// writeLock returns the lock held across a change to one curriculum, from
// the transaction to the snapshot swap. The snapshot stored last is then
// built from the last committed state.
func (s *Service) writeLock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.writes[name]
	if !ok {
		l = &sync.Mutex{}
		s.writes[name] = l
	}
	return l
}

// LoadedCurricula returns the sorted names of curricula with an active
// snapshot.
func (s *Service) LoadedCurricula() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.holders))
	for name, h := range s.holders {
		if h.Load() != nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func (s *Service) normalize(text string) string {
	if !s.cfg.NormalizeNFC {
		return text
	}
	return domain.NormalizeNFC(text)
}

func (s *Service) normalizeAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = s.normalize(t)
	}
	return out
}
