package readers

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/synphony-backend/internal/domain"
)

var _ sampleRepo = &sampleRepoMock{}

type sampleRepoMock struct {
	UpsertFunc           func(ctx context.Context, sample *domain.SampleText) (*domain.SampleText, error)
	ListByCurriculumFunc func(ctx context.Context, curriculumID uuid.UUID) ([]*domain.SampleText, error)

	calls struct {
		Upsert []struct {
			Ctx    context.Context
			Sample *domain.SampleText
		}
		ListByCurriculum []struct {
			Ctx          context.Context
			CurriculumID uuid.UUID
		}
	}
	lockUpsert           sync.RWMutex
	lockListByCurriculum sync.RWMutex
}

func (mock *sampleRepoMock) Upsert(ctx context.Context, sample *domain.SampleText) (*domain.SampleText, error) {
	if mock.UpsertFunc == nil {
		panic("sampleRepoMock.UpsertFunc: method is nil but sampleRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Sample *domain.SampleText
	}{Ctx: ctx, Sample: sample}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, sample)
}

func (mock *sampleRepoMock) UpsertCalls() []struct {
	Ctx    context.Context
	Sample *domain.SampleText
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *sampleRepoMock) ListByCurriculum(ctx context.Context, curriculumID uuid.UUID) ([]*domain.SampleText, error) {
	if mock.ListByCurriculumFunc == nil {
		panic("sampleRepoMock.ListByCurriculumFunc: method is nil but sampleRepo.ListByCurriculum was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		CurriculumID uuid.UUID
	}{Ctx: ctx, CurriculumID: curriculumID}
	mock.lockListByCurriculum.Lock()
	mock.calls.ListByCurriculum = append(mock.calls.ListByCurriculum, callInfo)
	mock.lockListByCurriculum.Unlock()
	return mock.ListByCurriculumFunc(ctx, curriculumID)
}

func (mock *sampleRepoMock) ListByCurriculumCalls() []struct {
	Ctx          context.Context
	CurriculumID uuid.UUID
} {
	mock.lockListByCurriculum.RLock()
	calls := mock.calls.ListByCurriculum
	mock.lockListByCurriculum.RUnlock()
	return calls
}
