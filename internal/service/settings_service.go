package service

import (
	"context"

	"comitefd/internal/repository"
)

type SettingsService interface {
	GetSettings(ctx context.Context) (map[string]string, error)
	UpsertSetting(ctx context.Context, key, value string) error
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetSettings(ctx context.Context) (map[string]string, error) {
	settings, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	settingsMap := make(map[string]string, len(settings))
	for _, setting := range settings {
		settingsMap[setting.Key] = setting.Value
	}

	return settingsMap, nil
}

func (s *settingsService) UpsertSetting(ctx context.Context, key, value string) error {
	return s.settingsRepo.Upsert(ctx, key, value)
}
