package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/uniplace/placement-backend/internal/app/models"
	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
)

type mockStudentEmails struct {
	mock.Mock
}

func (m *mockStudentEmails) AllEmails(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockStudentEmails) EmailsByBranch(ctx context.Context, branch string) ([]string, error) {
	args := m.Called(ctx, branch)
	return args.Get(0).([]string), args.Error(1)
}

type mockResultEmails struct {
	mock.Mock
}

func (m *mockResultEmails) EmailsByDrive(ctx context.Context, driveID int64) ([]string, error) {
	args := m.Called(ctx, driveID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockResultEmails) PlacedEmails(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockResultEmails) UnplacedEmails(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockResultEmails) QualifiedEmails(ctx context.Context, resultType models.ResultType, driveID int64) ([]string, error) {
	args := m.Called(ctx, resultType, driveID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockResultEmails) SelectedEmails(ctx context.Context, driveID int64) ([]string, error) {
	args := m.Called(ctx, driveID)
	return args.Get(0).([]string), args.Error(1)
}

func TestResolveAudience(t *testing.T) {
	t.Run("branch group", func(t *testing.T) {
		students := new(mockStudentEmails)
		results := new(mockResultEmails)
		service := NewAudienceService(students, results)

		students.On("EmailsByBranch", mock.Anything, "CSE").
			Return([]string{"a@x.edu", "b@x.edu"}, nil)

		resp, err := service.Resolve(context.Background(), dto.AudienceQuery{Group: "branch", Branch: "CSE"})
		require.NoError(t, err)

		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, []string{"a@x.edu", "b@x.edu"}, resp.Recipients)
	})

	t.Run("branch group requires branch", func(t *testing.T) {
		service := NewAudienceService(new(mockStudentEmails), new(mockResultEmails))

		_, err := service.Resolve(context.Background(), dto.AudienceQuery{Group: "branch"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("job group requires drive", func(t *testing.T) {
		service := NewAudienceService(new(mockStudentEmails), new(mockResultEmails))

		_, err := service.Resolve(context.Background(), dto.AudienceQuery{Group: "job"})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("unplaced group", func(t *testing.T) {
		students := new(mockStudentEmails)
		results := new(mockResultEmails)
		service := NewAudienceService(students, results)

		results.On("UnplacedEmails", mock.Anything).Return([]string{"c@x.edu"}, nil)

		resp, err := service.Resolve(context.Background(), dto.AudienceQuery{Group: "unplaced"})
		require.NoError(t, err)
		assert.Equal(t, []string{"c@x.edu"}, resp.Recipients)
	})

	t.Run("oa group scoped to drive", func(t *testing.T) {
		students := new(mockStudentEmails)
		results := new(mockResultEmails)
		service := NewAudienceService(students, results)

		results.On("QualifiedEmails", mock.Anything, models.ResultTypeOA, int64(7)).
			Return([]string{"d@x.edu"}, nil)

		resp, err := service.Resolve(context.Background(), dto.AudienceQuery{Group: "oa", DriveID: 7})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("unknown group", func(t *testing.T) {
		service := NewAudienceService(new(mockStudentEmails), new(mockResultEmails))

		_, err := service.Resolve(context.Background(), dto.AudienceQuery{Group: "everyone"})
		assert.ErrorIs(t, err, apperrors.ErrUnknownAudience)
	})
}
