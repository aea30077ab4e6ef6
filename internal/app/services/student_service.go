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
	"github.com/uniplace/placement-backend/internal/pkg/dberrors"
	"github.com/uniplace/placement-backend/internal/pkg/helpers"
	"github.com/uniplace/placement-backend/internal/pkg/validation"
)

// StudentService handles the student master database
type StudentService struct {
	studentRepo *repositories.StudentRepository
	resultRepo  *repositories.ResultRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, resultRepo *repositories.ResultRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		resultRepo:  resultRepo,
	}
}

// CreateStudent adds a student record
func (s *StudentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	if !validation.IsValidEnrollment(req.EnrollmentNumber) {
		return nil, apperrors.ErrInvalidEnrollment
	}

	student := &models.Student{
		EnrollmentNumber: req.EnrollmentNumber,
		Name:             strings.TrimSpace(req.Name),
		Branch:           strings.TrimSpace(req.Branch),
		PrimaryEmail:     strings.ToLower(strings.TrimSpace(req.PrimaryEmail)),
		SecondaryEmail:   strings.ToLower(strings.TrimSpace(req.SecondaryEmail)),
		CGPA:             req.CGPA,
		PassingYear:      req.PassingYear,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEnrollmentExists
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

// GetStudent retrieves a student by enrollment number
func (s *StudentService) GetStudent(ctx context.Context, enrollment string) (*models.Student, error) {
	student, err := s.studentRepo.GetByEnrollment(ctx, enrollment)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// ListStudents retrieves a filtered, paginated student listing
func (s *StudentService) ListStudents(ctx context.Context, filter dto.StudentListFilter) (*dto.StudentListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)

	students, total, err := s.studentRepo.List(ctx, filter.Branch, filter.Search, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	return &dto.StudentListResponse{
		Students: students,
		Total:    total,
		Page:     filter.Page,
		Size:     limit,
	}, nil
}

// ListBranches returns the distinct branch names present in the database
func (s *StudentService) ListBranches(ctx context.Context) ([]string, error) {
	branches, err := s.studentRepo.Branches(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing branches: %w", err)
	}
	return branches, nil
}

// UpdateStudent edits the mutable fields of a student record
func (s *StudentService) UpdateStudent(ctx context.Context, enrollment string, req dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.GetStudent(ctx, enrollment)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = strings.TrimSpace(*req.Name)
	}
	if req.Branch != nil {
		student.Branch = strings.TrimSpace(*req.Branch)
	}
	if req.PrimaryEmail != nil {
		student.PrimaryEmail = strings.ToLower(strings.TrimSpace(*req.PrimaryEmail))
	}
	if req.SecondaryEmail != nil {
		student.SecondaryEmail = strings.ToLower(strings.TrimSpace(*req.SecondaryEmail))
	}
	if req.CGPA != nil {
		student.CGPA = *req.CGPA
	}
	if req.PassingYear != nil {
		student.PassingYear = *req.PassingYear
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return student, nil
}

// DeleteStudent removes a student record
func (s *StudentService) DeleteStudent(ctx context.Context, enrollment string) error {
	err := s.studentRepo.Delete(ctx, enrollment)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}

// GetSummary retrieves a student with all their drive results
func (s *StudentService) GetSummary(ctx context.Context, enrollment string) (*dto.StudentSummaryResponse, error) {
	student, err := s.GetStudent(ctx, enrollment)
	if err != nil {
		return nil, err
	}

	results, err := s.resultRepo.RowsByStudent(ctx, enrollment)
	if err != nil {
		return nil, fmt.Errorf("error loading student results: %w", err)
	}

	placed := false
	for _, r := range results {
		if r.Status == models.StatusSelected {
			placed = true
			break
		}
	}

	return &dto.StudentSummaryResponse{
		Student: *student,
		Results: results,
		Placed:  placed,
	}, nil
}
