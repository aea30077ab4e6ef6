package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uniplace/placement-backend/internal/app/models"
)

// Company error types
var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company with this name already exists")
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
	}
}

const companyColumns = `id, name, COALESCE(industry, ''), COALESCE(location, ''), COALESCE(website, ''),
	COALESCE(description, ''), COALESCE(poc_name, ''), COALESCE(poc_email, ''), COALESCE(poc_phone, '')`

func scanCompany(row pgx.Row) (*models.Company, error) {
	var company models.Company
	err := row.Scan(
		&company.ID,
		&company.Name,
		&company.Industry,
		&company.Location,
		&company.Website,
		&company.Description,
		&company.POCName,
		&company.POCEmail,
		&company.POCPhone,
	)
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (name, industry, location, website, description, poc_name, poc_email, poc_phone)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''))
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		company.Name, company.Industry, company.Location, company.Website,
		company.Description, company.POCName, company.POCEmail, company.POCPhone,
	).Scan(&company.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	company, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}

	return company, nil
}

// GetAll retrieves all companies ordered by name
func (r *CompanyRepository) GetAll(ctx context.Context) ([]models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *company)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

// CountAll returns the total number of companies
func (r *CompanyRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting companies: %w", err)
	}
	return count, nil
}

// ExistsByName checks if a company exists by name
func (r *CompanyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM companies WHERE LOWER(name) = LOWER($1))`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking company existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing company
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	query := `
		UPDATE companies
		SET name = $1, industry = NULLIF($2, ''), location = NULLIF($3, ''), website = NULLIF($4, ''),
			description = NULLIF($5, ''), poc_name = NULLIF($6, ''), poc_email = NULLIF($7, ''), poc_phone = NULLIF($8, '')
		WHERE id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		company.Name, company.Industry, company.Location, company.Website,
		company.Description, company.POCName, company.POCEmail, company.POCPhone,
		company.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating company: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCompanyNotFound
	}

	return nil
}

// Delete deletes a company by ID
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting company: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCompanyNotFound
	}

	return nil
}
