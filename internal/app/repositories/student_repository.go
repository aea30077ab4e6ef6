package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uniplace/placement-backend/internal/app/models"
)

// Student error types
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentAlreadyExists = errors.New("student with this enrollment number already exists")
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `enrollment_number, name, branch, primary_email, COALESCE(secondary_email, ''), cgpa, passing_year`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.EnrollmentNumber,
		&student.Name,
		&student.Branch,
		&student.PrimaryEmail,
		&student.SecondaryEmail,
		&student.CGPA,
		&student.PassingYear,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create creates a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (enrollment_number, name, branch, primary_email, secondary_email, cgpa, passing_year)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		student.EnrollmentNumber,
		student.Name,
		student.Branch,
		strings.ToLower(student.PrimaryEmail),
		strings.ToLower(student.SecondaryEmail),
		student.CGPA,
		student.PassingYear,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetByEnrollment retrieves a student by enrollment number
func (r *StudentRepository) GetByEnrollment(ctx context.Context, enrollment string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE enrollment_number = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, enrollment))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// List retrieves students filtered by branch and a name/enrollment search term
func (r *StudentRepository) List(ctx context.Context, branch, search string, offset uint64, limit int) ([]models.Student, int64, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if branch != "" {
		conditions = append(conditions, fmt.Sprintf("branch = $%d", argPos))
		args = append(args, branch)
		argPos++
	}
	if search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR enrollment_number ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM students WHERE ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM students WHERE %s ORDER BY enrollment_number LIMIT $%d OFFSET $%d`,
		studentColumns, where, argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, *student)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// GetAll retrieves every student ordered by enrollment number
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY enrollment_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update updates an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, branch = $2, primary_email = $3, secondary_email = NULLIF($4, ''), cgpa = $5, passing_year = $6
		WHERE enrollment_number = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name,
		student.Branch,
		strings.ToLower(student.PrimaryEmail),
		strings.ToLower(student.SecondaryEmail),
		student.CGPA,
		student.PassingYear,
		student.EnrollmentNumber,
	)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by enrollment number
func (r *StudentRepository) Delete(ctx context.Context, enrollment string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE enrollment_number = $1`, enrollment)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// MatchedStudent pairs a student's enrollment number with the emails it
// can be matched on.
type MatchedStudent struct {
	EnrollmentNumber string
	PrimaryEmail     string
	SecondaryEmail   string
}

// FindByEmails retrieves the students whose primary or secondary email
// appears in the given list. Emails are compared lowercased.
func (r *StudentRepository) FindByEmails(ctx context.Context, emails []string) ([]MatchedStudent, error) {
	query := `
		SELECT enrollment_number, LOWER(primary_email), COALESCE(LOWER(secondary_email), '')
		FROM students
		WHERE LOWER(primary_email) = ANY($1) OR LOWER(secondary_email) = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, emails)
	if err != nil {
		return nil, fmt.Errorf("error matching students by email: %w", err)
	}
	defer rows.Close()

	var matches []MatchedStudent
	for rows.Next() {
		var m MatchedStudent
		if err := rows.Scan(&m.EnrollmentNumber, &m.PrimaryEmail, &m.SecondaryEmail); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return matches, nil
}

// AllEmails returns every student primary email that looks like an email.
func (r *StudentRepository) AllEmails(ctx context.Context) ([]string, error) {
	return r.queryEmails(ctx, `SELECT primary_email FROM students WHERE primary_email LIKE '%@%' ORDER BY primary_email`)
}

// EmailsByBranch returns primary emails of students in a branch.
func (r *StudentRepository) EmailsByBranch(ctx context.Context, branch string) ([]string, error) {
	return r.queryEmails(ctx,
		`SELECT primary_email FROM students WHERE branch = $1 AND primary_email LIKE '%@%' ORDER BY primary_email`, branch)
}

func (r *StudentRepository) queryEmails(ctx context.Context, query string, args ...interface{}) ([]string, error) {
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

// Branches returns the distinct branch names in the student database
func (r *StudentRepository) Branches(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT branch FROM students ORDER BY branch`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []string
	for rows.Next() {
		var branch string
		if err := rows.Scan(&branch); err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}

// CountAll returns the total number of students
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}

// BranchTotals returns the number of students per branch
func (r *StudentRepository) BranchTotals(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT branch, COUNT(*) FROM students GROUP BY branch`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int64)
	for rows.Next() {
		var branch string
		var count int64
		if err := rows.Scan(&branch, &count); err != nil {
			return nil, err
		}
		totals[branch] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}
