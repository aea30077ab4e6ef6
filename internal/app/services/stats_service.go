package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/app/repositories"
)

// topCompanySlices is how many companies appear by name in the selections
// chart before the rest fold into "Others".
const topCompanySlices = 5

// studentStatsSource provides student-level aggregates.
type studentStatsSource interface {
	CountAll(ctx context.Context) (int64, error)
	BranchTotals(ctx context.Context) (map[string]int64, error)
}

// driveStatsSource provides drive-level aggregates.
type driveStatsSource interface {
	CountAll(ctx context.Context) (int64, error)
	SumUnmatched(ctx context.Context) (int64, error)
}

// companyStatsSource provides company-level aggregates.
type companyStatsSource interface {
	CountAll(ctx context.Context) (int64, error)
}

// resultStatsSource provides result-level aggregates.
type resultStatsSource interface {
	CountPlaced(ctx context.Context) (int64, error)
	CountPlacedByEmployment(ctx context.Context) (intern, fte int64, err error)
	SelectionsByCompany(ctx context.Context) ([]repositories.CompanySelection, error)
	PlacedByBranch(ctx context.Context) (map[string]int64, error)
}

// StatsService assembles the dashboard aggregates.
type StatsService struct {
	students  studentStatsSource
	drives    driveStatsSource
	companies companyStatsSource
	results   resultStatsSource
}

// NewStatsService creates a new stats service instance
func NewStatsService(students studentStatsSource, drives driveStatsSource, companies companyStatsSource, results resultStatsSource) *StatsService {
	return &StatsService{
		students:  students,
		drives:    drives,
		companies: companies,
		results:   results,
	}
}

// Dashboard computes the placement snapshot for the admin home page.
func (s *StatsService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	totalStudents, err := s.students.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	placed, err := s.results.CountPlaced(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting placed students: %w", err)
	}

	intern, fte, err := s.results.CountPlacedByEmployment(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting placements by type: %w", err)
	}

	totalDrives, err := s.drives.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting drives: %w", err)
	}

	totalCompanies, err := s.companies.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting companies: %w", err)
	}

	unmatched, err := s.drives.SumUnmatched(ctx)
	if err != nil {
		return nil, fmt.Errorf("error summing unmatched emails: %w", err)
	}

	companySlices, err := s.companySlices(ctx)
	if err != nil {
		return nil, err
	}

	branchStats, err := s.branchStats(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalStudents:   totalStudents,
		PlacedStudents:  placed,
		InternCount:     intern,
		FTECount:        fte,
		TotalDrives:     totalDrives,
		TotalCompanies:  totalCompanies,
		CompanySlices:   companySlices,
		BranchStats:     branchStats,
		UnmatchedEmails: unmatched,
	}, nil
}

// companySlices returns the top companies by selection count, folding the
// remainder into a single "Others" slice.
func (s *StatsService) companySlices(ctx context.Context) ([]dto.CompanySlice, error) {
	selections, err := s.results.SelectionsByCompany(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading company selections: %w", err)
	}

	slices := make([]dto.CompanySlice, 0, topCompanySlices+1)
	var others int64
	for i, cs := range selections {
		if i < topCompanySlices {
			slices = append(slices, dto.CompanySlice{Company: cs.Company, Selections: cs.Selections})
			continue
		}
		others += cs.Selections
	}
	if others > 0 {
		slices = append(slices, dto.CompanySlice{Company: "Others", Selections: others})
	}

	return slices, nil
}

// branchStats pairs every branch's student total with its placed count.
func (s *StatsService) branchStats(ctx context.Context) ([]dto.BranchStat, error) {
	totals, err := s.students.BranchTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading branch totals: %w", err)
	}

	placed, err := s.results.PlacedByBranch(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading placed counts by branch: %w", err)
	}

	stats := make([]dto.BranchStat, 0, len(totals))
	for branch, total := range totals {
		stats = append(stats, dto.BranchStat{
			Branch: branch,
			Total:  total,
			Placed: placed[branch],
		})
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Branch < stats[j].Branch })

	return stats, nil
}
