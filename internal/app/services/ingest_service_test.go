package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/uniplace/placement-backend/internal/app/models"
	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/app/repositories"
	"github.com/uniplace/placement-backend/internal/db"
	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
)

type mockStudentMatcher struct {
	mock.Mock
}

func (m *mockStudentMatcher) FindByEmails(ctx context.Context, emails []string) ([]repositories.MatchedStudent, error) {
	args := m.Called(ctx, emails)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.MatchedStudent), args.Error(1)
}

type mockDriveWriter struct {
	mock.Mock
}

func (m *mockDriveWriter) CreateTx(ctx context.Context, tx pgx.Tx, drive *models.Drive) error {
	args := m.Called(ctx, tx, drive)
	if args.Error(0) == nil {
		drive.ID = 42
	}
	return args.Error(0)
}

type mockResultWriter struct {
	mock.Mock
}

func (m *mockResultWriter) BulkInsertTx(ctx context.Context, tx pgx.Tx, driveID int64, status models.ResultStatus, studentIDs []string) (int, error) {
	args := m.Called(ctx, tx, driveID, status, studentIDs)
	return args.Int(0), args.Error(1)
}

type fakeTxRunner struct {
	called bool
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	f.called = true
	return fn(ctx, nil)
}

func uploadRequest(resultType string) dto.UploadResultsRequest {
	return dto.UploadResultsRequest{
		CompanyName:    "Acme Corp",
		JobTitle:       "SDE Intern",
		EmploymentType: "Intern",
		ResultType:     resultType,
		Batch:          "2026",
	}
}

func TestUploadResults(t *testing.T) {
	t.Run("matches, dedupes and counts unmatched", func(t *testing.T) {
		students := new(mockStudentMatcher)
		drives := new(mockDriveWriter)
		results := new(mockResultWriter)
		txRunner := &fakeTxRunner{}
		service := NewIngestService(students, drives, results, txRunner)

		csv := "Name,Email\nAlice,a@x.edu\nAlice dup,A@X.EDU\nGhost,nomatch@x.edu\n"

		students.On("FindByEmails", mock.Anything, []string{"a@x.edu", "nomatch@x.edu"}).
			Return([]repositories.MatchedStudent{
				{EnrollmentNumber: "035208", PrimaryEmail: "a@x.edu"},
			}, nil)
		drives.On("CreateTx", mock.Anything, mock.Anything, mock.MatchedBy(func(d *models.Drive) bool {
			return d.CompanyName == "Acme Corp" && d.UnmatchedCount == 1
		})).Return(nil)
		results.On("BulkInsertTx", mock.Anything, mock.Anything, int64(42),
			models.StatusSelected, []string{"035208"}).Return(1, nil)

		resp, err := service.UploadResults(context.Background(), uploadRequest("Final Offer"), strings.NewReader(csv))
		require.NoError(t, err)

		assert.Equal(t, int64(42), resp.DriveID)
		assert.Equal(t, 1, resp.Inserted)
		assert.Equal(t, 1, resp.Unmatched)
		assert.Equal(t, 1, resp.Skipped)
		assert.True(t, txRunner.called)
		students.AssertExpectations(t)
		drives.AssertExpectations(t)
		results.AssertExpectations(t)
	})

	t.Run("secondary email matches and same student counted once", func(t *testing.T) {
		students := new(mockStudentMatcher)
		drives := new(mockDriveWriter)
		results := new(mockResultWriter)
		service := NewIngestService(students, drives, results, &fakeTxRunner{})

		csv := "email\nprimary@x.edu\nbackup@gmail.com\n"

		students.On("FindByEmails", mock.Anything, []string{"primary@x.edu", "backup@gmail.com"}).
			Return([]repositories.MatchedStudent{
				{EnrollmentNumber: "035208", PrimaryEmail: "primary@x.edu", SecondaryEmail: "backup@gmail.com"},
			}, nil)
		drives.On("CreateTx", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		results.On("BulkInsertTx", mock.Anything, mock.Anything, int64(42),
			models.StatusShortlisted, []string{"035208"}).Return(1, nil)

		resp, err := service.UploadResults(context.Background(), uploadRequest("OA"), strings.NewReader(csv))
		require.NoError(t, err)

		assert.Equal(t, 1, resp.Inserted)
		assert.Zero(t, resp.Unmatched)
		assert.Equal(t, 1, resp.Skipped)
	})

	t.Run("oa upload stores shortlisted rows", func(t *testing.T) {
		students := new(mockStudentMatcher)
		drives := new(mockDriveWriter)
		results := new(mockResultWriter)
		service := NewIngestService(students, drives, results, &fakeTxRunner{})

		students.On("FindByEmails", mock.Anything, mock.Anything).
			Return([]repositories.MatchedStudent{
				{EnrollmentNumber: "035210", PrimaryEmail: "c@x.edu"},
			}, nil)
		drives.On("CreateTx", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		results.On("BulkInsertTx", mock.Anything, mock.Anything, int64(42),
			models.StatusShortlisted, []string{"035210"}).Return(1, nil)

		_, err := service.UploadResults(context.Background(), uploadRequest("OA"), strings.NewReader("email\nc@x.edu\n"))
		require.NoError(t, err)
		results.AssertExpectations(t)
	})

	t.Run("empty file aborts before any write", func(t *testing.T) {
		students := new(mockStudentMatcher)
		drives := new(mockDriveWriter)
		results := new(mockResultWriter)
		txRunner := &fakeTxRunner{}
		service := NewIngestService(students, drives, results, txRunner)

		_, err := service.UploadResults(context.Background(), uploadRequest("OA"), strings.NewReader(""))

		assert.ErrorIs(t, err, apperrors.ErrEmptyUpload)
		assert.False(t, txRunner.called)
		students.AssertNotCalled(t, "FindByEmails")
	})

	t.Run("missing email column aborts", func(t *testing.T) {
		service := NewIngestService(new(mockStudentMatcher), new(mockDriveWriter), new(mockResultWriter), &fakeTxRunner{})

		_, err := service.UploadResults(context.Background(), uploadRequest("OA"),
			strings.NewReader("name,branch\nAlice,CSE\n"))

		assert.ErrorIs(t, err, apperrors.ErrNoEmailColumn)
	})

	t.Run("result insert failure fails the whole upload", func(t *testing.T) {
		students := new(mockStudentMatcher)
		drives := new(mockDriveWriter)
		results := new(mockResultWriter)
		txRunner := &fakeTxRunner{}
		service := NewIngestService(students, drives, results, txRunner)

		students.On("FindByEmails", mock.Anything, mock.Anything).
			Return([]repositories.MatchedStudent{
				{EnrollmentNumber: "035208", PrimaryEmail: "a@x.edu"},
			}, nil)
		drives.On("CreateTx", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		results.On("BulkInsertTx", mock.Anything, mock.Anything, int64(42),
			models.StatusShortlisted, []string{"035208"}).Return(0, errors.New("copy failed"))

		resp, err := service.UploadResults(context.Background(), uploadRequest("OA"),
			strings.NewReader("email\na@x.edu\n"))

		require.Error(t, err)
		assert.ErrorContains(t, err, "copy failed")
		assert.Nil(t, resp)
		assert.True(t, txRunner.called)
	})

	t.Run("nothing matches aborts without creating a drive", func(t *testing.T) {
		students := new(mockStudentMatcher)
		drives := new(mockDriveWriter)
		results := new(mockResultWriter)
		txRunner := &fakeTxRunner{}
		service := NewIngestService(students, drives, results, txRunner)

		students.On("FindByEmails", mock.Anything, mock.Anything).
			Return([]repositories.MatchedStudent{}, nil)

		_, err := service.UploadResults(context.Background(), uploadRequest("OA"),
			strings.NewReader("email\nghost@x.edu\n"))

		assert.ErrorIs(t, err, apperrors.ErrNoMatchingStudents)
		assert.False(t, txRunner.called)
		drives.AssertNotCalled(t, "CreateTx")
		results.AssertNotCalled(t, "BulkInsertTx")
	})
}
