package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uniplace/placement-backend/internal/app/models"
)

// ResultRepository handles database operations for drive results
type ResultRepository struct {
	db *pgxpool.Pool
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{
		db: db,
	}
}

// BulkInsertTx inserts one result row per student for a drive inside an
// existing transaction, using the COPY protocol.
func (r *ResultRepository) BulkInsertTx(ctx context.Context, tx pgx.Tx, driveID int64, status models.ResultStatus, studentIDs []string) (int, error) {
	rows := make([][]interface{}, len(studentIDs))
	for i, id := range studentIDs {
		rows[i] = []interface{}{driveID, id, string(status)}
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"results"},
		[]string{"drive_id", "student_id", "status"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("error bulk inserting results: %w", err)
	}

	return int(copied), nil
}

const resultRowColumns = `
	s.enrollment_number, s.name, s.branch, s.cgpa, s.primary_email,
	r.status, d.company_name, d.job_title, d.employment_type, d.result_type`

const resultRowJoins = `
	FROM results r
	JOIN students s ON s.enrollment_number = r.student_id
	JOIN drives d ON d.id = r.drive_id`

// ResultFilter narrows joined result listings.
type ResultFilter struct {
	DriveID        int64
	Status         models.ResultStatus
	EmploymentType models.EmploymentType
	ResultType     models.ResultType
}

// ListRows retrieves joined result rows matching the filter, newest drive first.
func (r *ResultRepository) ListRows(ctx context.Context, filter ResultFilter) ([]models.ResultRow, error) {
	query := `SELECT ` + resultRowColumns + resultRowJoins + ` WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.DriveID != 0 {
		query += fmt.Sprintf(" AND r.drive_id = $%d", argPos)
		args = append(args, filter.DriveID)
		argPos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND r.status = $%d", argPos)
		args = append(args, string(filter.Status))
		argPos++
	}
	if filter.EmploymentType != "" {
		query += fmt.Sprintf(" AND d.employment_type = $%d", argPos)
		args = append(args, string(filter.EmploymentType))
		argPos++
	}
	if filter.ResultType != "" {
		query += fmt.Sprintf(" AND d.result_type = $%d", argPos)
		args = append(args, string(filter.ResultType))
		argPos++
	}

	query += " ORDER BY d.created_at DESC, s.enrollment_number"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.ResultRow
	for rows.Next() {
		var row models.ResultRow
		if err := rows.Scan(
			&row.StudentID,
			&row.StudentName,
			&row.Branch,
			&row.CGPA,
			&row.PrimaryEmail,
			&row.Status,
			&row.CompanyName,
			&row.JobTitle,
			&row.EmploymentType,
			&row.ResultType,
		); err != nil {
			return nil, err
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// RowsByStudent retrieves every result row for one student, newest first.
func (r *ResultRepository) RowsByStudent(ctx context.Context, enrollment string) ([]models.ResultRow, error) {
	query := `SELECT ` + resultRowColumns + resultRowJoins + `
		WHERE r.student_id = $1
		ORDER BY d.created_at DESC`

	rows, err := r.db.Query(ctx, query, enrollment)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.ResultRow
	for rows.Next() {
		var row models.ResultRow
		if err := rows.Scan(
			&row.StudentID,
			&row.StudentName,
			&row.Branch,
			&row.CGPA,
			&row.PrimaryEmail,
			&row.Status,
			&row.CompanyName,
			&row.JobTitle,
			&row.EmploymentType,
			&row.ResultType,
		); err != nil {
			return nil, err
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// EmailsByDrive returns the primary emails of students with a result in a drive.
func (r *ResultRepository) EmailsByDrive(ctx context.Context, driveID int64) ([]string, error) {
	query := `
		SELECT DISTINCT s.primary_email` + resultRowJoins + `
		WHERE r.drive_id = $1 AND s.primary_email LIKE '%@%'
		ORDER BY s.primary_email
	`
	return r.queryEmails(ctx, query, driveID)
}

// PlacedEmails returns the primary emails of students holding at least one
// selected result.
func (r *ResultRepository) PlacedEmails(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT s.primary_email` + resultRowJoins + `
		WHERE r.status = 'Selected' AND s.primary_email LIKE '%@%'
		ORDER BY s.primary_email
	`
	return r.queryEmails(ctx, query)
}

// UnplacedEmails returns the primary emails of students with no selected result.
func (r *ResultRepository) UnplacedEmails(ctx context.Context) ([]string, error) {
	query := `
		SELECT primary_email FROM students
		WHERE primary_email LIKE '%@%'
		AND enrollment_number NOT IN (
			SELECT student_id FROM results WHERE status = 'Selected'
		)
		ORDER BY primary_email
	`
	return r.queryEmails(ctx, query)
}

// QualifiedEmails returns the primary emails of students with any result in
// drives of the given result type, optionally scoped to one drive.
func (r *ResultRepository) QualifiedEmails(ctx context.Context, resultType models.ResultType, driveID int64) ([]string, error) {
	query := `
		SELECT DISTINCT s.primary_email` + resultRowJoins + `
		WHERE d.result_type = $1 AND s.primary_email LIKE '%@%'
	`
	args := []interface{}{string(resultType)}
	if driveID != 0 {
		query += " AND r.drive_id = $2"
		args = append(args, driveID)
	}
	query += " ORDER BY s.primary_email"

	return r.queryEmails(ctx, query, args...)
}

// SelectedEmails returns the primary emails of selected students, optionally
// scoped to one drive.
func (r *ResultRepository) SelectedEmails(ctx context.Context, driveID int64) ([]string, error) {
	query := `
		SELECT DISTINCT s.primary_email` + resultRowJoins + `
		WHERE r.status = 'Selected' AND s.primary_email LIKE '%@%'
	`
	args := []interface{}{}
	if driveID != 0 {
		query += " AND r.drive_id = $1"
		args = append(args, driveID)
	}
	query += " ORDER BY s.primary_email"

	return r.queryEmails(ctx, query, args...)
}

func (r *ResultRepository) queryEmails(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return emails, nil
}

// CountPlaced returns the number of distinct students with a selected result.
func (r *ResultRepository) CountPlaced(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(DISTINCT student_id) FROM results WHERE status = 'Selected'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting placed students: %w", err)
	}
	return count, nil
}

// CountPlacedByEmployment returns distinct selected students split by drive
// employment type. PPO offers count toward FTE.
func (r *ResultRepository) CountPlacedByEmployment(ctx context.Context) (intern, fte int64, err error) {
	query := `
		SELECT
			COUNT(DISTINCT r.student_id) FILTER (WHERE d.employment_type = 'Intern'),
			COUNT(DISTINCT r.student_id) FILTER (WHERE d.employment_type IN ('FTE', 'PPO'))
		FROM results r
		JOIN drives d ON d.id = r.drive_id
		WHERE r.status = 'Selected'
	`

	err = r.db.QueryRow(ctx, query).Scan(&intern, &fte)
	if err != nil {
		return 0, 0, fmt.Errorf("error counting placements by employment type: %w", err)
	}
	return intern, fte, nil
}

// CompanySelection pairs a company with its selection count.
type CompanySelection struct {
	Company    string
	Selections int64
}

// SelectionsByCompany returns selection counts grouped by company, most first.
func (r *ResultRepository) SelectionsByCompany(ctx context.Context) ([]CompanySelection, error) {
	query := `
		SELECT d.company_name, COUNT(*)
		FROM results r
		JOIN drives d ON d.id = r.drive_id
		WHERE r.status = 'Selected'
		GROUP BY d.company_name
		ORDER BY COUNT(*) DESC, d.company_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var selections []CompanySelection
	for rows.Next() {
		var cs CompanySelection
		if err := rows.Scan(&cs.Company, &cs.Selections); err != nil {
			return nil, err
		}
		selections = append(selections, cs)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return selections, nil
}

// PlacedByBranch returns the number of distinct placed students per branch.
func (r *ResultRepository) PlacedByBranch(ctx context.Context) (map[string]int64, error) {
	query := `
		SELECT s.branch, COUNT(DISTINCT r.student_id)
		FROM results r
		JOIN students s ON s.enrollment_number = r.student_id
		WHERE r.status = 'Selected'
		GROUP BY s.branch
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	placed := make(map[string]int64)
	for rows.Next() {
		var branch string
		var count int64
		if err := rows.Scan(&branch, &count); err != nil {
			return nil, err
		}
		placed[branch] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return placed, nil
}
