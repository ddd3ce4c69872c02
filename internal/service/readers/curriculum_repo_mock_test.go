package readers

import (
	"context"
	"sync"

	"github.com/heartmarshall/synphony-backend/internal/domain"
)

var _ curriculumRepo = &curriculumRepoMock{}

type curriculumRepoMock struct {
	UpsertFunc    func(ctx context.Context, name string, settings []byte) (*domain.Curriculum, error)
	GetByNameFunc func(ctx context.Context, name string) (*domain.Curriculum, error)
	ListFunc      func(ctx context.Context) ([]*domain.Curriculum, error)
	DeleteFunc    func(ctx context.Context, name string) error

	calls struct {
		Upsert []struct {
			Ctx      context.Context
			Name     string
			Settings []byte
		}
		GetByName []struct {
			Ctx  context.Context
			Name string
		}
		List []struct {
			Ctx context.Context
		}
		Delete []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockUpsert    sync.RWMutex
	lockGetByName sync.RWMutex
	lockList      sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *curriculumRepoMock) Upsert(ctx context.Context, name string, settings []byte) (*domain.Curriculum, error) {
	if mock.UpsertFunc == nil {
		panic("curriculumRepoMock.UpsertFunc: method is nil but curriculumRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Name     string
		Settings []byte
	}{Ctx: ctx, Name: name, Settings: settings}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, name, settings)
}

func (mock *curriculumRepoMock) UpsertCalls() []struct {
	Ctx      context.Context
	Name     string
	Settings []byte
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *curriculumRepoMock) GetByName(ctx context.Context, name string) (*domain.Curriculum, error) {
	if mock.GetByNameFunc == nil {
		panic("curriculumRepoMock.GetByNameFunc: method is nil but curriculumRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *curriculumRepoMock) GetByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *curriculumRepoMock) List(ctx context.Context) ([]*domain.Curriculum, error) {
	if mock.ListFunc == nil {
		panic("curriculumRepoMock.ListFunc: method is nil but curriculumRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *curriculumRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *curriculumRepoMock) Delete(ctx context.Context, name string) error {
	if mock.DeleteFunc == nil {
		panic("curriculumRepoMock.DeleteFunc: method is nil but curriculumRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, name)
}

func (mock *curriculumRepoMock) DeleteCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
