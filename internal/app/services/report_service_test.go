package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/uniplace/placement-backend/internal/app/models"
	"github.com/uniplace/placement-backend/internal/app/repositories"
	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
)

type mockStudentReport struct {
	mock.Mock
}

func (m *mockStudentReport) GetAll(ctx context.Context) ([]models.Student, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Student), args.Error(1)
}

func (m *mockStudentReport) BranchTotals(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

type mockResultReport struct {
	mock.Mock
}

func (m *mockResultReport) ListRows(ctx context.Context, filter repositories.ResultFilter) ([]models.ResultRow, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.ResultRow), args.Error(1)
}

func (m *mockResultReport) SelectionsByCompany(ctx context.Context) ([]repositories.CompanySelection, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repositories.CompanySelection), args.Error(1)
}

func (m *mockResultReport) PlacedByBranch(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func TestBuildReport(t *testing.T) {
	t.Run("placed report lists selected rows only", func(t *testing.T) {
		students := new(mockStudentReport)
		results := new(mockResultReport)
		service := NewReportService(students, results)

		results.On("ListRows", mock.Anything, repositories.ResultFilter{Status: models.StatusSelected}).
			Return([]models.ResultRow{
				{
					StudentName: "Alice", StudentID: "035208", Branch: "CSE",
					CompanyName: "Acme", JobTitle: "SDE", EmploymentType: models.EmploymentFTE,
					Status: models.StatusSelected,
				},
			}, nil)

		sheet, err := service.Build(context.Background(), ReportPlaced)
		require.NoError(t, err)

		assert.Equal(t, []string{"Student Name", "Enrollment No", "Branch", "Company", "Job Role", "Type"}, sheet.Headers)
		require.Len(t, sheet.Rows, 1)
		assert.Equal(t, []string{"Alice", "035208", "CSE", "Acme", "SDE", "FTE"}, sheet.Rows[0])
	})

	t.Run("branch stats computes placement percentage", func(t *testing.T) {
		students := new(mockStudentReport)
		results := new(mockResultReport)
		service := NewReportService(students, results)

		students.On("BranchTotals", mock.Anything).Return(map[string]int64{"CSE": 50, "IT": 30}, nil)
		results.On("PlacedByBranch", mock.Anything).Return(map[string]int64{"CSE": 25}, nil)

		sheet, err := service.Build(context.Background(), ReportBranchStats)
		require.NoError(t, err)

		require.Len(t, sheet.Rows, 2)
		assert.Equal(t, []string{"CSE", "50", "25", "50.00"}, sheet.Rows[0])
		assert.Equal(t, []string{"IT", "30", "0", "0.00"}, sheet.Rows[1])
	})

	t.Run("intern ppo report filters employment types", func(t *testing.T) {
		students := new(mockStudentReport)
		results := new(mockResultReport)
		service := NewReportService(students, results)

		results.On("ListRows", mock.Anything, repositories.ResultFilter{Status: models.StatusSelected}).
			Return([]models.ResultRow{
				{StudentName: "Alice", StudentID: "1", Branch: "CSE", CompanyName: "Acme", EmploymentType: models.EmploymentIntern},
				{StudentName: "Bob", StudentID: "2", Branch: "IT", CompanyName: "Globex", EmploymentType: models.EmploymentFTE},
				{StudentName: "Cara", StudentID: "3", Branch: "CSE", CompanyName: "Stark", EmploymentType: models.EmploymentPPO},
			}, nil)

		sheet, err := service.Build(context.Background(), ReportInternPPO)
		require.NoError(t, err)

		require.Len(t, sheet.Rows, 2)
		assert.Equal(t, "Alice", sheet.Rows[0][0])
		assert.Equal(t, "Cara", sheet.Rows[1][0])
	})

	t.Run("unknown report id", func(t *testing.T) {
		service := NewReportService(new(mockStudentReport), new(mockResultReport))

		_, err := service.Build(context.Background(), "payroll")
		assert.ErrorIs(t, err, apperrors.ErrUnknownReport)
	})

	t.Run("empty report", func(t *testing.T) {
		students := new(mockStudentReport)
		results := new(mockResultReport)
		service := NewReportService(students, results)

		students.On("GetAll", mock.Anything).Return([]models.Student{}, nil)

		_, err := service.Build(context.Background(), ReportStudents)
		assert.ErrorIs(t, err, apperrors.ErrEmptyReport)
	})
}
