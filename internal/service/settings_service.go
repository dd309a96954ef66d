package service

import (
	"context"
	"errors"
	"sync"

	"github.com/nubetechmdq-wq/crmcasino/internal/models"
	"github.com/nubetechmdq-wq/crmcasino/internal/repository"

	"go.uber.org/zap"
)

// SettingsService owns the application settings lifecycle: loaded once at
// startup, read through Get, and written back only on an explicit save.
type SettingsService struct {
	repo   SettingsStore
	ai     AIClient
	logger *zap.Logger

	mu      sync.RWMutex
	current *models.AppSettings
}

func NewSettingsService(repo SettingsStore, ai AIClient, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		repo:   repo,
		ai:     ai,
		logger: logger,
	}
}

// Load reads the persisted settings, falling back to defaults on first run.
func (s *SettingsService) Load(ctx context.Context) error {
	settings, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		settings = models.DefaultSettings()
		if err := s.repo.Save(ctx, settings); err != nil {
			return err
		}
		s.logger.Info("Default settings persisted")
	} else if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()
	return nil
}

// Get returns a copy of the current settings.
func (s *SettingsService) Get() models.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return *models.DefaultSettings()
	}
	return *s.current
}

// Update persists the new settings and makes them current.
func (s *SettingsService) Update(ctx context.Context, settings *models.AppSettings) error {
	if err := s.repo.Save(ctx, settings); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()

	s.logger.Info("Settings updated")
	return nil
}

// TestAI checks whether the configured AI backend responds.
func (s *SettingsService) TestAI(ctx context.Context) error {
	return s.ai.Ping(ctx)
}
