package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/app/repositories"
)

type mockStudentStats struct {
	mock.Mock
}

func (m *mockStudentStats) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStudentStats) BranchTotals(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

type mockDriveStats struct {
	mock.Mock
}

func (m *mockDriveStats) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDriveStats) SumUnmatched(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockCompanyStats struct {
	mock.Mock
}

func (m *mockCompanyStats) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockResultStats struct {
	mock.Mock
}

func (m *mockResultStats) CountPlaced(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockResultStats) CountPlacedByEmployment(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *mockResultStats) SelectionsByCompany(ctx context.Context) ([]repositories.CompanySelection, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repositories.CompanySelection), args.Error(1)
}

func (m *mockResultStats) PlacedByBranch(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

func TestDashboard(t *testing.T) {
	students := new(mockStudentStats)
	drives := new(mockDriveStats)
	companies := new(mockCompanyStats)
	results := new(mockResultStats)
	service := NewStatsService(students, drives, companies, results)

	students.On("CountAll", mock.Anything).Return(int64(120), nil)
	companies.On("CountAll", mock.Anything).Return(int64(7), nil)
	students.On("BranchTotals", mock.Anything).Return(map[string]int64{
		"CSE": 60, "IT": 40, "ECE": 20,
	}, nil)
	drives.On("CountAll", mock.Anything).Return(int64(9), nil)
	drives.On("SumUnmatched", mock.Anything).Return(int64(4), nil)
	results.On("CountPlaced", mock.Anything).Return(int64(55), nil)
	results.On("CountPlacedByEmployment", mock.Anything).Return(int64(20), int64(35), nil)
	results.On("SelectionsByCompany", mock.Anything).Return([]repositories.CompanySelection{
		{Company: "Acme", Selections: 20},
		{Company: "Globex", Selections: 12},
		{Company: "Initech", Selections: 9},
		{Company: "Umbrella", Selections: 7},
		{Company: "Stark", Selections: 5},
		{Company: "Wayne", Selections: 3},
		{Company: "Hooli", Selections: 2},
	}, nil)
	results.On("PlacedByBranch", mock.Anything).Return(map[string]int64{
		"CSE": 35, "IT": 15,
	}, nil)

	resp, err := service.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(120), resp.TotalStudents)
	assert.Equal(t, int64(55), resp.PlacedStudents)
	assert.Equal(t, int64(20), resp.InternCount)
	assert.Equal(t, int64(35), resp.FTECount)
	assert.Equal(t, int64(9), resp.TotalDrives)
	assert.Equal(t, int64(7), resp.TotalCompanies)
	assert.Equal(t, int64(4), resp.UnmatchedEmails)

	// Top five companies by name, remainder folded into Others
	require.Len(t, resp.CompanySlices, 6)
	assert.Equal(t, dto.CompanySlice{Company: "Acme", Selections: 20}, resp.CompanySlices[0])
	assert.Equal(t, dto.CompanySlice{Company: "Others", Selections: 5}, resp.CompanySlices[5])

	// Branches sorted by name, missing placed counts default to zero
	require.Len(t, resp.BranchStats, 3)
	assert.Equal(t, dto.BranchStat{Branch: "CSE", Total: 60, Placed: 35}, resp.BranchStats[0])
	assert.Equal(t, dto.BranchStat{Branch: "ECE", Total: 20, Placed: 0}, resp.BranchStats[1])
	assert.Equal(t, dto.BranchStat{Branch: "IT", Total: 40, Placed: 15}, resp.BranchStats[2])
}

func TestDashboardNoOthersSlice(t *testing.T) {
	students := new(mockStudentStats)
	drives := new(mockDriveStats)
	companies := new(mockCompanyStats)
	results := new(mockResultStats)
	service := NewStatsService(students, drives, companies, results)

	students.On("CountAll", mock.Anything).Return(int64(10), nil)
	companies.On("CountAll", mock.Anything).Return(int64(1), nil)
	students.On("BranchTotals", mock.Anything).Return(map[string]int64{"CSE": 10}, nil)
	drives.On("CountAll", mock.Anything).Return(int64(1), nil)
	drives.On("SumUnmatched", mock.Anything).Return(int64(0), nil)
	results.On("CountPlaced", mock.Anything).Return(int64(2), nil)
	results.On("CountPlacedByEmployment", mock.Anything).Return(int64(0), int64(2), nil)
	results.On("SelectionsByCompany", mock.Anything).Return([]repositories.CompanySelection{
		{Company: "Acme", Selections: 2},
	}, nil)
	results.On("PlacedByBranch", mock.Anything).Return(map[string]int64{"CSE": 2}, nil)

	resp, err := service.Dashboard(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.CompanySlices, 1)
	assert.Equal(t, "Acme", resp.CompanySlices[0].Company)
}
