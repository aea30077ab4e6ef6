package services

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5"

	"github.com/uniplace/placement-backend/internal/app/models"
	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/app/repositories"
	"github.com/uniplace/placement-backend/internal/db"
	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
	"github.com/uniplace/placement-backend/internal/pkg/csvtable"
	"github.com/uniplace/placement-backend/internal/pkg/logger"
)

// studentMatcher finds students by their primary or secondary emails.
type studentMatcher interface {
	FindByEmails(ctx context.Context, emails []string) ([]repositories.MatchedStudent, error)
}

// driveWriter creates drives inside a transaction.
type driveWriter interface {
	CreateTx(ctx context.Context, tx pgx.Tx, drive *models.Drive) error
}

// resultWriter bulk-inserts result rows inside a transaction.
type resultWriter interface {
	BulkInsertTx(ctx context.Context, tx pgx.Tx, driveID int64, status models.ResultStatus, studentIDs []string) (int, error)
}

// transactionRunner runs a function within a database transaction.
type transactionRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// IngestService turns uploaded result CSVs into a drive plus its result rows.
type IngestService struct {
	students studentMatcher
	drives   driveWriter
	results  resultWriter
	txRunner transactionRunner
}

// NewIngestService creates a new ingest service instance
func NewIngestService(students studentMatcher, drives driveWriter, results resultWriter, txRunner transactionRunner) *IngestService {
	return &IngestService{
		students: students,
		drives:   drives,
		results:  results,
		txRunner: txRunner,
	}
}

// deriveStatus maps a drive's result type to the status stored on each row.
// Final offer lists mark students as selected; OA lists as shortlisted.
func deriveStatus(resultType models.ResultType) models.ResultStatus {
	if resultType == models.ResultTypeFinalOffer {
		return models.StatusSelected
	}
	return models.StatusShortlisted
}

// UploadResults parses the uploaded CSV, matches its emails against the
// student database, and writes the drive and all matched results in one
// transaction. Nothing is persisted when the file has no usable rows.
func (s *IngestService) UploadResults(ctx context.Context, req dto.UploadResultsRequest, file io.Reader) (*dto.UploadResultsResponse, error) {
	table, err := csvtable.Parse(file)
	if err != nil {
		return nil, err
	}

	emails, skipped, err := table.ExtractEmails()
	if err != nil {
		return nil, err
	}

	matches, err := s.students.FindByEmails(ctx, emails)
	if err != nil {
		return nil, fmt.Errorf("error matching students: %w", err)
	}

	// Primary email matches take precedence over secondary ones.
	byEmail := make(map[string]string, len(matches))
	for _, m := range matches {
		byEmail[m.PrimaryEmail] = m.EnrollmentNumber
	}
	for _, m := range matches {
		if m.SecondaryEmail == "" {
			continue
		}
		if _, ok := byEmail[m.SecondaryEmail]; !ok {
			byEmail[m.SecondaryEmail] = m.EnrollmentNumber
		}
	}

	// File order, one row per student even if both emails appear.
	seenStudents := make(map[string]struct{}, len(emails))
	var studentIDs []string
	unmatched := 0
	for _, email := range emails {
		enrollment, ok := byEmail[email]
		if !ok {
			unmatched++
			continue
		}
		if _, dup := seenStudents[enrollment]; dup {
			skipped++
			continue
		}
		seenStudents[enrollment] = struct{}{}
		studentIDs = append(studentIDs, enrollment)
	}

	// A drive with zero results would be invisible everywhere, so refuse the
	// upload outright instead of persisting it.
	if len(studentIDs) == 0 {
		return nil, apperrors.ErrNoMatchingStudents
	}

	drive := &models.Drive{
		CompanyName:    req.CompanyName,
		JobTitle:       req.JobTitle,
		EmploymentType: models.EmploymentType(req.EmploymentType),
		ResultType:     models.ResultType(req.ResultType),
		Batch:          req.Batch,
		Description:    req.Description,
		UnmatchedCount: unmatched,
	}
	status := deriveStatus(drive.ResultType)

	inserted := 0
	err = s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.drives.CreateTx(ctx, tx, drive); err != nil {
			return err
		}
		n, err := s.results.BulkInsertTx(ctx, tx, drive.ID, status, studentIDs)
		if err != nil {
			return err
		}
		inserted = n
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error ingesting results: %w", err)
	}

	logger.Info().
		Int64("driveId", drive.ID).
		Str("company", drive.CompanyName).
		Int("inserted", inserted).
		Int("unmatched", unmatched).
		Int("skipped", skipped).
		Msg("Results uploaded")

	return &dto.UploadResultsResponse{
		DriveID:   drive.ID,
		Inserted:  inserted,
		Unmatched: unmatched,
		Skipped:   skipped,
	}, nil
}
