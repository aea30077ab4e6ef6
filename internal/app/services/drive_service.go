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

// DriveService handles drive listings and their result rows
type DriveService struct {
	driveRepo  *repositories.DriveRepository
	resultRepo *repositories.ResultRepository
}

// NewDriveService creates a new drive service instance
func NewDriveService(driveRepo *repositories.DriveRepository, resultRepo *repositories.ResultRepository) *DriveService {
	return &DriveService{
		driveRepo:  driveRepo,
		resultRepo: resultRepo,
	}
}

// ListDrives retrieves all drives, newest first
func (s *DriveService) ListDrives(ctx context.Context) (*dto.DriveListResponse, error) {
	drives, err := s.driveRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing drives: %w", err)
	}

	total, err := s.driveRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting drives: %w", err)
	}

	return &dto.DriveListResponse{Drives: drives, Total: total}, nil
}

// GetDrive retrieves a drive by ID
func (s *DriveService) GetDrive(ctx context.Context, id int64) (*models.Drive, error) {
	drive, err := s.driveRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDriveNotFound) {
			return nil, apperrors.ErrDriveNotFound
		}
		return nil, fmt.Errorf("error retrieving drive: %w", err)
	}
	return drive, nil
}

// GetDriveResults retrieves the joined result rows for a drive
func (s *DriveService) GetDriveResults(ctx context.Context, id int64) ([]models.ResultRow, error) {
	if _, err := s.GetDrive(ctx, id); err != nil {
		return nil, err
	}

	rows, err := s.resultRepo.ListRows(ctx, repositories.ResultFilter{DriveID: id})
	if err != nil {
		return nil, fmt.Errorf("error loading drive results: %w", err)
	}

	return rows, nil
}

// DeleteDrive removes a drive and, via cascade, its results
func (s *DriveService) DeleteDrive(ctx context.Context, id int64) error {
	err := s.driveRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDriveNotFound) {
			return apperrors.ErrDriveNotFound
		}
		return fmt.Errorf("error deleting drive: %w", err)
	}
	return nil
}
