package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/uniplace/placement-backend/internal/app/models"
	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/app/repositories"
	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
)

// CompanyService handles recruiting company management
type CompanyService struct {
	companyRepo *repositories.CompanyRepository
}

// NewCompanyService creates a new company service instance
func NewCompanyService(companyRepo *repositories.CompanyRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
	}
}

// CreateCompany registers a recruiting company
func (s *CompanyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*models.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("company name cannot be empty")
	}

	exists, err := s.companyRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error checking company: %w", err)
	}
	if exists {
		return nil, apperrors.ErrCompanyAlreadyExists
	}

	company := &models.Company{
		Name:        name,
		Industry:    req.Industry,
		Location:    req.Location,
		Website:     req.Website,
		Description: req.Description,
		POCName:     req.POCName,
		POCEmail:    req.POCEmail,
		POCPhone:    req.POCPhone,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("error creating company: %w", err)
	}

	return company, nil
}

// GetCompany retrieves a company by ID
func (s *CompanyService) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}
	return company, nil
}

// ListCompanies retrieves all companies
func (s *CompanyService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	companies, err := s.companyRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing companies: %w", err)
	}
	return companies, nil
}

// UpdateCompany edits an existing company
func (s *CompanyService) UpdateCompany(ctx context.Context, id int64, req dto.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("company name cannot be empty")
		}
		company.Name = name
	}
	if req.Industry != nil {
		company.Industry = *req.Industry
	}
	if req.Location != nil {
		company.Location = *req.Location
	}
	if req.Website != nil {
		company.Website = *req.Website
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.POCName != nil {
		company.POCName = *req.POCName
	}
	if req.POCEmail != nil {
		company.POCEmail = *req.POCEmail
	}
	if req.POCPhone != nil {
		company.POCPhone = *req.POCPhone
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error updating company: %w", err)
	}

	return company, nil
}

// DeleteCompany removes a company
func (s *CompanyService) DeleteCompany(ctx context.Context, id int64) error {
	err := s.companyRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return fmt.Errorf("error deleting company: %w", err)
	}
	return nil
}
