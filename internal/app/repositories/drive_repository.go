package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uniplace/placement-backend/internal/app/models"
)

// Drive error types
var (
	ErrDriveNotFound = errors.New("drive not found")
)

// DriveRepository handles database operations for recruitment drives
type DriveRepository struct {
	db *pgxpool.Pool
}

// NewDriveRepository creates a new drive repository
func NewDriveRepository(db *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{
		db: db,
	}
}

const driveColumns = `id, company_name, job_title, employment_type, result_type, batch, COALESCE(description, ''), unmatched_count, created_at`

func scanDrive(row pgx.Row) (*models.Drive, error) {
	var drive models.Drive
	err := row.Scan(
		&drive.ID,
		&drive.CompanyName,
		&drive.JobTitle,
		&drive.EmploymentType,
		&drive.ResultType,
		&drive.Batch,
		&drive.Description,
		&drive.UnmatchedCount,
		&drive.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &drive, nil
}

// CreateTx creates a drive inside an existing transaction and fills its ID.
func (r *DriveRepository) CreateTx(ctx context.Context, tx pgx.Tx, drive *models.Drive) error {
	query := `
		INSERT INTO drives (company_name, job_title, employment_type, result_type, batch, description, unmatched_count)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		RETURNING id, created_at
	`

	err := tx.QueryRow(ctx, query,
		drive.CompanyName,
		drive.JobTitle,
		drive.EmploymentType,
		drive.ResultType,
		drive.Batch,
		drive.Description,
		drive.UnmatchedCount,
	).Scan(&drive.ID, &drive.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating drive: %w", err)
	}

	return nil
}

// GetByID retrieves a drive by ID
func (r *DriveRepository) GetByID(ctx context.Context, id int64) (*models.Drive, error) {
	query := `SELECT ` + driveColumns + ` FROM drives WHERE id = $1`

	drive, err := scanDrive(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDriveNotFound
		}
		return nil, fmt.Errorf("error retrieving drive: %w", err)
	}

	return drive, nil
}

// GetAll retrieves all drives, newest first
func (r *DriveRepository) GetAll(ctx context.Context) ([]models.Drive, error) {
	query := `SELECT ` + driveColumns + ` FROM drives ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drives []models.Drive
	for rows.Next() {
		drive, err := scanDrive(rows)
		if err != nil {
			return nil, err
		}
		drives = append(drives, *drive)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drives, nil
}

// CountAll returns the total number of drives
func (r *DriveRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM drives`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting drives: %w", err)
	}
	return count, nil
}

// SumUnmatched returns the total number of unmatched emails across all uploads
func (r *DriveRepository) SumUnmatched(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(unmatched_count), 0) FROM drives`).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("error summing unmatched emails: %w", err)
	}
	return sum, nil
}

// UpdateUnmatchedTx sets the unmatched count on a drive inside a transaction.
func (r *DriveRepository) UpdateUnmatchedTx(ctx context.Context, tx pgx.Tx, driveID int64, unmatched int) error {
	cmdTag, err := tx.Exec(ctx, `UPDATE drives SET unmatched_count = $1 WHERE id = $2`, unmatched, driveID)
	if err != nil {
		return fmt.Errorf("error updating unmatched count: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrDriveNotFound
	}
	return nil
}

// Delete deletes a drive and, via cascade, its results
func (r *DriveRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM drives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting drive: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrDriveNotFound
	}

	return nil
}
