package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/uniplace/placement-backend/internal/app/models"
	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/app/repositories"
	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
)

// SettingsService handles the singleton placement cell settings
type SettingsService struct {
	settingsRepo *repositories.SettingsRepository
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo *repositories.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves the settings row
func (s *SettingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingsNotFound) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies a partial update to the settings row
func (s *SettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*models.Settings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.CollegeName != nil {
		settings.CollegeName = *req.CollegeName
	}
	if req.AdminEmail != nil {
		settings.AdminEmail = *req.AdminEmail
	}
	if req.PlacementYear != nil {
		settings.PlacementYear = *req.PlacementYear
	}
	if req.NotifyOnApplication != nil {
		settings.NotifyOnApplication = *req.NotifyOnApplication
	}
	if req.NotifyOnResult != nil {
		settings.NotifyOnResult = *req.NotifyOnResult
	}
	if req.AutoSyncSheets != nil {
		settings.AutoSyncSheets = *req.AutoSyncSheets
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("error updating settings: %w", err)
	}

	return settings, nil
}
