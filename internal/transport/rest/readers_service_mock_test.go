package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/service/readers"
	"github.com/heartmarshall/synphony-backend/internal/synphony"
	"github.com/heartmarshall/synphony-backend/internal/synphony/markup"
)

var _ readersService = &readersServiceMock{}

type readersServiceMock struct {
	SaveSettingsFunc     func(ctx context.Context, input readers.SaveSettingsInput) (*domain.Curriculum, error)
	AddSampleFunc        func(ctx context.Context, input readers.AddSampleInput) (*domain.SampleText, error)
	ListCurriculaFunc    func(ctx context.Context) ([]*domain.Curriculum, error)
	DeleteCurriculumFunc func(ctx context.Context, name string) error
	StageWordsFunc       func(ctx context.Context, input readers.StageWordsInput) ([]domain.WordRecord, error)
	StageLettersFunc     func(ctx context.Context, input readers.StageLettersInput) ([]string, error)
	CheckDecodableFunc   func(ctx context.Context, input readers.CheckDecodableInput) (markup.DecodableResult, error)
	CheckLeveledFunc     func(ctx context.Context, input readers.CheckLeveledInput) (markup.LeveledResult, error)
	BookStatsFunc        func(ctx context.Context, input readers.BookStatsInput) (synphony.BookReport, error)
	SentencesFunc        func(ctx context.Context, input readers.SentencesInput) ([]domain.TextFragment, error)

	calls struct {
		SaveSettings []struct {
			Ctx   context.Context
			Input readers.SaveSettingsInput
		}
		AddSample []struct {
			Ctx   context.Context
			Input readers.AddSampleInput
		}
		ListCurricula []struct {
			Ctx context.Context
		}
		DeleteCurriculum []struct {
			Ctx  context.Context
			Name string
		}
		StageWords []struct {
			Ctx   context.Context
			Input readers.StageWordsInput
		}
		StageLetters []struct {
			Ctx   context.Context
			Input readers.StageLettersInput
		}
		CheckDecodable []struct {
			Ctx   context.Context
			Input readers.CheckDecodableInput
		}
		CheckLeveled []struct {
			Ctx   context.Context
			Input readers.CheckLeveledInput
		}
		BookStats []struct {
			Ctx   context.Context
			Input readers.BookStatsInput
		}
		Sentences []struct {
			Ctx   context.Context
			Input readers.SentencesInput
		}
	}
	lockSaveSettings     sync.RWMutex
	lockAddSample        sync.RWMutex
	lockListCurricula    sync.RWMutex
	lockDeleteCurriculum sync.RWMutex
	lockStageWords       sync.RWMutex
	lockStageLetters     sync.RWMutex
	lockCheckDecodable   sync.RWMutex
	lockCheckLeveled     sync.RWMutex
	lockBookStats        sync.RWMutex
	lockSentences        sync.RWMutex
}

func (mock *readersServiceMock) SaveSettings(ctx context.Context, input readers.SaveSettingsInput) (*domain.Curriculum, error) {
	if mock.SaveSettingsFunc == nil {
		panic("readersServiceMock.SaveSettingsFunc: method is nil but readersService.SaveSettings was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input readers.SaveSettingsInput
	}{Ctx: ctx, Input: input}
	mock.lockSaveSettings.Lock()
	mock.calls.SaveSettings = append(mock.calls.SaveSettings, callInfo)
	mock.lockSaveSettings.Unlock()
	return mock.SaveSettingsFunc(ctx, input)
}

func (mock *readersServiceMock) SaveSettingsCalls() []struct {
	Ctx   context.Context
	Input readers.SaveSettingsInput
} {
	mock.lockSaveSettings.RLock()
	calls := mock.calls.SaveSettings
	mock.lockSaveSettings.RUnlock()
	return calls
}

func (mock *readersServiceMock) AddSample(ctx context.Context, input readers.AddSampleInput) (*domain.SampleText, error) {
	if mock.AddSampleFunc == nil {
		panic("readersServiceMock.AddSampleFunc: method is nil but readersService.AddSample was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input readers.AddSampleInput
	}{Ctx: ctx, Input: input}
	mock.lockAddSample.Lock()
	mock.calls.AddSample = append(mock.calls.AddSample, callInfo)
	mock.lockAddSample.Unlock()
	return mock.AddSampleFunc(ctx, input)
}

func (mock *readersServiceMock) AddSampleCalls() []struct {
	Ctx   context.Context
	Input readers.AddSampleInput
} {
	mock.lockAddSample.RLock()
	calls := mock.calls.AddSample
	mock.lockAddSample.RUnlock()
	return calls
}

func (mock *readersServiceMock) ListCurricula(ctx context.Context) ([]*domain.Curriculum, error) {
	if mock.ListCurriculaFunc == nil {
		panic("readersServiceMock.ListCurriculaFunc: method is nil but readersService.ListCurricula was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListCurricula.Lock()
	mock.calls.ListCurricula = append(mock.calls.ListCurricula, callInfo)
	mock.lockListCurricula.Unlock()
	return mock.ListCurriculaFunc(ctx)
}

func (mock *readersServiceMock) ListCurriculaCalls() []struct {
	Ctx context.Context
} {
	mock.lockListCurricula.RLock()
	calls := mock.calls.ListCurricula
	mock.lockListCurricula.RUnlock()
	return calls
}

func (mock *readersServiceMock) DeleteCurriculum(ctx context.Context, name string) error {
	if mock.DeleteCurriculumFunc == nil {
		panic("readersServiceMock.DeleteCurriculumFunc: method is nil but readersService.DeleteCurriculum was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockDeleteCurriculum.Lock()
	mock.calls.DeleteCurriculum = append(mock.calls.DeleteCurriculum, callInfo)
	mock.lockDeleteCurriculum.Unlock()
	return mock.DeleteCurriculumFunc(ctx, name)
}

func (mock *readersServiceMock) DeleteCurriculumCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockDeleteCurriculum.RLock()
	calls := mock.calls.DeleteCurriculum
	mock.lockDeleteCurriculum.RUnlock()
	return calls
}

func (mock *readersServiceMock) StageWords(ctx context.Context, input readers.StageWordsInput) ([]domain.WordRecord, error) {
	if mock.StageWordsFunc == nil {
		panic("readersServiceMock.StageWordsFunc: method is nil but readersService.StageWords was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input readers.StageWordsInput
	}{Ctx: ctx, Input: input}
	mock.lockStageWords.Lock()
	mock.calls.StageWords = append(mock.calls.StageWords, callInfo)
	mock.lockStageWords.Unlock()
	return mock.StageWordsFunc(ctx, input)
}

func (mock *readersServiceMock) StageWordsCalls() []struct {
	Ctx   context.Context
	Input readers.StageWordsInput
} {
	mock.lockStageWords.RLock()
	calls := mock.calls.StageWords
	mock.lockStageWords.RUnlock()
	return calls
}

func (mock *readersServiceMock) StageLetters(ctx context.Context, input readers.StageLettersInput) ([]string, error) {
	if mock.StageLettersFunc == nil {
		panic("readersServiceMock.StageLettersFunc: method is nil but readersService.StageLetters was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input readers.StageLettersInput
	}{Ctx: ctx, Input: input}
	mock.lockStageLetters.Lock()
	mock.calls.StageLetters = append(mock.calls.StageLetters, callInfo)
	mock.lockStageLetters.Unlock()
	return mock.StageLettersFunc(ctx, input)
}

func (mock *readersServiceMock) StageLettersCalls() []struct {
	Ctx   context.Context
	Input readers.StageLettersInput
} {
	mock.lockStageLetters.RLock()
	calls := mock.calls.StageLetters
	mock.lockStageLetters.RUnlock()
	return calls
}

func (mock *readersServiceMock) CheckDecodable(ctx context.Context, input readers.CheckDecodableInput) (markup.DecodableResult, error) {
	if mock.CheckDecodableFunc == nil {
		panic("readersServiceMock.CheckDecodableFunc: method is nil but readersService.CheckDecodable was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input readers.CheckDecodableInput
	}{Ctx: ctx, Input: input}
	mock.lockCheckDecodable.Lock()
	mock.calls.CheckDecodable = append(mock.calls.CheckDecodable, callInfo)
	mock.lockCheckDecodable.Unlock()
	return mock.CheckDecodableFunc(ctx, input)
}

func (mock *readersServiceMock) CheckDecodableCalls() []struct {
	Ctx   context.Context
	Input readers.CheckDecodableInput
} {
	mock.lockCheckDecodable.RLock()
	calls := mock.calls.CheckDecodable
	mock.lockCheckDecodable.RUnlock()
	return calls
}

func (mock *readersServiceMock) CheckLeveled(ctx context.Context, input readers.CheckLeveledInput) (markup.LeveledResult, error) {
	if mock.CheckLeveledFunc == nil {
		panic("readersServiceMock.CheckLeveledFunc: method is nil but readersService.CheckLeveled was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input readers.CheckLeveledInput
	}{Ctx: ctx, Input: input}
	mock.lockCheckLeveled.Lock()
	mock.calls.CheckLeveled = append(mock.calls.CheckLeveled, callInfo)
	mock.lockCheckLeveled.Unlock()
	return mock.CheckLeveledFunc(ctx, input)
}

func (mock *readersServiceMock) CheckLeveledCalls() []struct {
	Ctx   context.Context
	Input readers.CheckLeveledInput
} {
	mock.lockCheckLeveled.RLock()
	calls := mock.calls.CheckLeveled
	mock.lockCheckLeveled.RUnlock()
	return calls
}

func (mock *readersServiceMock) BookStats(ctx context.Context, input readers.BookStatsInput) (synphony.BookReport, error) {
	if mock.BookStatsFunc == nil {
		panic("readersServiceMock.BookStatsFunc: method is nil but readersService.BookStats was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input readers.BookStatsInput
	}{Ctx: ctx, Input: input}
	mock.lockBookStats.Lock()
	mock.calls.BookStats = append(mock.calls.BookStats, callInfo)
	mock.lockBookStats.Unlock()
	return mock.BookStatsFunc(ctx, input)
}

func (mock *readersServiceMock) BookStatsCalls() []struct {
	Ctx   context.Context
	Input readers.BookStatsInput
} {
	mock.lockBookStats.RLock()
	calls := mock.calls.BookStats
	mock.lockBookStats.RUnlock()
	return calls
}

func (mock *readersServiceMock) Sentences(ctx context.Context, input readers.SentencesInput) ([]domain.TextFragment, error) {
	if mock.SentencesFunc == nil {
		panic("readersServiceMock.SentencesFunc: method is nil but readersService.Sentences was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input readers.SentencesInput
	}{Ctx: ctx, Input: input}
	mock.lockSentences.Lock()
	mock.calls.Sentences = append(mock.calls.Sentences, callInfo)
	mock.lockSentences.Unlock()
	return mock.SentencesFunc(ctx, input)
}

func (mock *readersServiceMock) SentencesCalls() []struct {
	Ctx   context.Context
	Input readers.SentencesInput
} {
	mock.lockSentences.RLock()
	calls := mock.calls.Sentences
	mock.lockSentences.RUnlock()
	return calls
}
