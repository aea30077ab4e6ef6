package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/uniplace/placement-backend/internal/app/models"
	"github.com/uniplace/placement-backend/internal/app/repositories"
	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
	"github.com/uniplace/placement-backend/internal/pkg/spreadsheet"
)

// Report identifiers
const (
	ReportStudents       = "students"
	ReportPlaced         = "placed"
	ReportApplicants     = "applicants"
	ReportCompanyResults = "company_results"
	ReportBranchStats    = "branch_stats"
	ReportInternPPO      = "intern_ppo"
)

// studentReportSource provides the student listings reports draw from.
type studentReportSource interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	BranchTotals(ctx context.Context) (map[string]int64, error)
}

// resultReportSource provides the result listings reports draw from.
type resultReportSource interface {
	ListRows(ctx context.Context, filter repositories.ResultFilter) ([]models.ResultRow, error)
	SelectionsByCompany(ctx context.Context) ([]repositories.CompanySelection, error)
	PlacedByBranch(ctx context.Context) (map[string]int64, error)
}

// ReportService renders downloadable placement reports.
type ReportService struct {
	students studentReportSource
	results  resultReportSource
}

// NewReportService creates a new report service instance
func NewReportService(students studentReportSource, results resultReportSource) *ReportService {
	return &ReportService{
		students: students,
		results:  results,
	}
}

// Build assembles the requested report as a sheet ready for XLSX or CSV
// rendering.
func (s *ReportService) Build(ctx context.Context, reportID string) (spreadsheet.Sheet, error) {
	switch reportID {
	case ReportStudents:
		return s.studentsReport(ctx)
	case ReportPlaced:
		return s.placedReport(ctx)
	case ReportApplicants:
		return s.applicantsReport(ctx)
	case ReportCompanyResults:
		return s.companyResultsReport(ctx)
	case ReportBranchStats:
		return s.branchStatsReport(ctx)
	case ReportInternPPO:
		return s.internPPOReport(ctx)
	default:
		return spreadsheet.Sheet{}, apperrors.ErrUnknownReport
	}
}

func (s *ReportService) studentsReport(ctx context.Context) (spreadsheet.Sheet, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return spreadsheet.Sheet{}, fmt.Errorf("error loading students: %w", err)
	}
	if len(students) == 0 {
		return spreadsheet.Sheet{}, apperrors.ErrEmptyReport
	}

	rows := make([][]string, len(students))
	for i, st := range students {
		rows[i] = []string{
			st.Name,
			st.EnrollmentNumber,
			st.Branch,
			st.PrimaryEmail,
			strconv.FormatFloat(st.CGPA, 'f', 2, 64),
			strconv.Itoa(st.PassingYear),
		}
	}

	return spreadsheet.Sheet{
		Name:    "Students",
		Headers: []string{"Student Name", "Enrollment No", "Branch", "Primary Email", "CGPA", "Passing Year"},
		Rows:    rows,
	}, nil
}

func (s *ReportService) placedReport(ctx context.Context) (spreadsheet.Sheet, error) {
	results, err := s.results.ListRows(ctx, repositories.ResultFilter{Status: models.StatusSelected})
	if err != nil {
		return spreadsheet.Sheet{}, fmt.Errorf("error loading placed students: %w", err)
	}
	if len(results) == 0 {
		return spreadsheet.Sheet{}, apperrors.ErrEmptyReport
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			r.StudentName,
			r.StudentID,
			r.Branch,
			r.CompanyName,
			r.JobTitle,
			string(r.EmploymentType),
		}
	}

	return spreadsheet.Sheet{
		Name:    "Placed Students",
		Headers: []string{"Student Name", "Enrollment No", "Branch", "Company", "Job Role", "Type"},
		Rows:    rows,
	}, nil
}

func (s *ReportService) applicantsReport(ctx context.Context) (spreadsheet.Sheet, error) {
	results, err := s.results.ListRows(ctx, repositories.ResultFilter{})
	if err != nil {
		return spreadsheet.Sheet{}, fmt.Errorf("error loading results: %w", err)
	}
	if len(results) == 0 {
		return spreadsheet.Sheet{}, apperrors.ErrEmptyReport
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			r.StudentName,
			r.StudentID,
			r.Branch,
			r.CompanyName,
			r.JobTitle,
			string(r.Status),
		}
	}

	return spreadsheet.Sheet{
		Name:    "Applicants",
		Headers: []string{"Student Name", "Enrollment No", "Branch", "Company", "Job Role", "Status"},
		Rows:    rows,
	}, nil
}

func (s *ReportService) companyResultsReport(ctx context.Context) (spreadsheet.Sheet, error) {
	selections, err := s.results.SelectionsByCompany(ctx)
	if err != nil {
		return spreadsheet.Sheet{}, fmt.Errorf("error loading company selections: %w", err)
	}
	if len(selections) == 0 {
		return spreadsheet.Sheet{}, apperrors.ErrEmptyReport
	}

	rows := make([][]string, len(selections))
	for i, cs := range selections {
		rows[i] = []string{cs.Company, strconv.FormatInt(cs.Selections, 10)}
	}

	return spreadsheet.Sheet{
		Name:    "Company Results",
		Headers: []string{"Company", "Selections"},
		Rows:    rows,
	}, nil
}

func (s *ReportService) branchStatsReport(ctx context.Context) (spreadsheet.Sheet, error) {
	totals, err := s.students.BranchTotals(ctx)
	if err != nil {
		return spreadsheet.Sheet{}, fmt.Errorf("error loading branch totals: %w", err)
	}
	if len(totals) == 0 {
		return spreadsheet.Sheet{}, apperrors.ErrEmptyReport
	}

	placed, err := s.results.PlacedByBranch(ctx)
	if err != nil {
		return spreadsheet.Sheet{}, fmt.Errorf("error loading placed counts: %w", err)
	}

	branches := make([]string, 0, len(totals))
	for branch := range totals {
		branches = append(branches, branch)
	}
	sort.Strings(branches)

	rows := make([][]string, len(branches))
	for i, branch := range branches {
		total := totals[branch]
		placedCount := placed[branch]
		percent := 0.0
		if total > 0 {
			percent = float64(placedCount) / float64(total) * 100
		}
		rows[i] = []string{
			branch,
			strconv.FormatInt(total, 10),
			strconv.FormatInt(placedCount, 10),
			strconv.FormatFloat(percent, 'f', 2, 64),
		}
	}

	return spreadsheet.Sheet{
		Name:    "Branch Statistics",
		Headers: []string{"Branch", "Total Students", "Placed", "Placement %"},
		Rows:    rows,
	}, nil
}

func (s *ReportService) internPPOReport(ctx context.Context) (spreadsheet.Sheet, error) {
	results, err := s.results.ListRows(ctx, repositories.ResultFilter{Status: models.StatusSelected})
	if err != nil {
		return spreadsheet.Sheet{}, fmt.Errorf("error loading selections: %w", err)
	}

	var rows [][]string
	for _, r := range results {
		if r.EmploymentType != models.EmploymentIntern && r.EmploymentType != models.EmploymentPPO {
			continue
		}
		rows = append(rows, []string{
			r.StudentName,
			r.StudentID,
			r.Branch,
			r.CompanyName,
			string(r.EmploymentType),
		})
	}
	if len(rows) == 0 {
		return spreadsheet.Sheet{}, apperrors.ErrEmptyReport
	}

	return spreadsheet.Sheet{
		Name:    "Intern and PPO",
		Headers: []string{"Student Name", "Enrollment No", "Branch", "Company", "Type"},
		Rows:    rows,
	}, nil
}
