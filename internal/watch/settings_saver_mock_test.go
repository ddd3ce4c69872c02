package watch

import (
	"context"
	"sync"

	"github.com/heartmarshall/synphony-backend/internal/domain"
	"github.com/heartmarshall/synphony-backend/internal/service/readers"
)

var _ settingsSaver = &settingsSaverMock{}

type settingsSaverMock struct {
	SaveSettingsFunc func(ctx context.Context, input readers.SaveSettingsInput) (*domain.Curriculum, error)

	calls struct {
		SaveSettings []struct {
			Ctx   context.Context
			Input readers.SaveSettingsInput
		}
	}
	lockSaveSettings sync.RWMutex
}

func (mock *settingsSaverMock) SaveSettings(ctx context.Context, input readers.SaveSettingsInput) (*domain.Curriculum, error) {
	if mock.SaveSettingsFunc == nil {
		panic("settingsSaverMock.SaveSettingsFunc: method is nil but settingsSaver.SaveSettings was just called")
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

func (mock *settingsSaverMock) SaveSettingsCalls() []struct {
	Ctx   context.Context
	Input readers.SaveSettingsInput
} {
	mock.lockSaveSettings.RLock()
	calls := mock.calls.SaveSettings
	mock.lockSaveSettings.RUnlock()
	return calls
}
