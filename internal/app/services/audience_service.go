package services

import (
	"context"
	"fmt"

	"github.com/uniplace/placement-backend/internal/app/models"
	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
)

// studentEmailSource provides student email listings for audience groups.
type studentEmailSource interface {
	AllEmails(ctx context.Context) ([]string, error)
	EmailsByBranch(ctx context.Context, branch string) ([]string, error)
}

// resultEmailSource provides result-derived email listings.
type resultEmailSource interface {
	EmailsByDrive(ctx context.Context, driveID int64) ([]string, error)
	PlacedEmails(ctx context.Context) ([]string, error)
	UnplacedEmails(ctx context.Context) ([]string, error)
	QualifiedEmails(ctx context.Context, resultType models.ResultType, driveID int64) ([]string, error)
	SelectedEmails(ctx context.Context, driveID int64) ([]string, error)
}

// AudienceService resolves recipient groups for the mail composer.
type AudienceService struct {
	students studentEmailSource
	results  resultEmailSource
}

// NewAudienceService creates a new audience service instance
func NewAudienceService(students studentEmailSource, results resultEmailSource) *AudienceService {
	return &AudienceService{
		students: students,
		results:  results,
	}
}

// Resolve returns the recipient emails for the requested group selector.
func (s *AudienceService) Resolve(ctx context.Context, query dto.AudienceQuery) (*dto.AudienceResponse, error) {
	var (
		emails []string
		err    error
	)

	switch query.Group {
	case "all":
		emails, err = s.students.AllEmails(ctx)
	case "branch":
		if query.Branch == "" {
			return nil, apperrors.NewValidationError("branch is required for the branch group")
		}
		emails, err = s.students.EmailsByBranch(ctx, query.Branch)
	case "job":
		if query.DriveID == 0 {
			return nil, apperrors.NewValidationError("driveId is required for the job group")
		}
		emails, err = s.results.EmailsByDrive(ctx, query.DriveID)
	case "placed":
		emails, err = s.results.PlacedEmails(ctx)
	case "unplaced":
		emails, err = s.results.UnplacedEmails(ctx)
	case "oa":
		emails, err = s.results.QualifiedEmails(ctx, models.ResultTypeOA, query.DriveID)
	case "selected":
		emails, err = s.results.SelectedEmails(ctx, query.DriveID)
	default:
		return nil, apperrors.ErrUnknownAudience
	}

	if err != nil {
		return nil, fmt.Errorf("error resolving audience %q: %w", query.Group, err)
	}

	return &dto.AudienceResponse{
		Group:      query.Group,
		Recipients: emails,
		Count:      len(emails),
	}, nil
}
