package service

import (
	"context"
	"errors"

	"github.com/bytehaven/staffdesk/api/internal/database"
	"github.com/bytehaven/staffdesk/api/internal/model"
)

// SettingsRepository defines the interface for settings storage
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Create(ctx context.Context, settings *model.Settings) error
	Update(ctx context.Context, updates map[string]interface{}) (*model.Settings, error)
}

// SettingsService handles portal settings business logic
type SettingsService struct {
	repo SettingsRepository
}

// SettingsServiceConfig holds configuration for the settings service
type SettingsServiceConfig struct {
	Repo SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(cfg SettingsServiceConfig) *SettingsService {
	return &SettingsService{
		repo: cfg.Repo,
	}
}

// Get returns the settings singleton, creating it with defaults on first read
func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	defaults := model.DefaultSettings()
	if err := s.repo.Create(ctx, &defaults); err != nil {
		// A concurrent first read may have created the record already;
		// the fixed record ID makes the second create fail, so re-read.
		if existing, getErr := s.repo.Get(ctx); getErr == nil {
			return existing, nil
		}
		return nil, err
	}
	return &defaults, nil
}

// Update applies a partial settings patch and returns the updated singleton
func (s *SettingsService) Update(ctx context.Context, req *model.UpdateSettingsRequest) (*model.Settings, error) {
	// Lazily create the singleton so a PATCH before any GET still works
	if _, err := s.Get(ctx); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.IsOpen != nil {
		updates["is_open"] = *req.IsOpen
	}
	if req.ClosedMessage != nil {
		updates["closed_message"] = *req.ClosedMessage
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx)
	}

	settings, err := s.repo.Update(ctx, updates)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrSettingsUnavailable
		}
		return nil, err
	}
	return settings, nil
}
