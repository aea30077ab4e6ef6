package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(to []string, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

func TestSendEmail(t *testing.T) {
	t.Run("normalizes and dedupes recipients", func(t *testing.T) {
		m := new(mockMailer)
		service := NewEmailService(m)

		m.On("Send", []string{"a@x.edu", "b@x.edu"}, "Update", "body").Return(nil)

		resp, err := service.Send(context.Background(), dto.SendEmailRequest{
			To:      []string{" A@X.EDU ", "a@x.edu", "b@x.edu", "not-an-email"},
			Subject: "Update",
			Body:    "body",
		})
		require.NoError(t, err)

		assert.Equal(t, 2, resp.Accepted)
		m.AssertExpectations(t)
	})

	t.Run("no usable recipients", func(t *testing.T) {
		m := new(mockMailer)
		service := NewEmailService(m)

		_, err := service.Send(context.Background(), dto.SendEmailRequest{
			To:      []string{"garbage", ""},
			Subject: "Update",
			Body:    "body",
		})

		assert.ErrorIs(t, err, apperrors.ErrNoRecipients)
		m.AssertNotCalled(t, "Send")
	})

	t.Run("relay failure surfaces as dispatch error", func(t *testing.T) {
		m := new(mockMailer)
		service := NewEmailService(m)

		m.On("Send", mock.Anything, mock.Anything, mock.Anything).
			Return(assert.AnError)

		_, err := service.Send(context.Background(), dto.SendEmailRequest{
			To:      []string{"a@x.edu"},
			Subject: "Update",
			Body:    "body",
		})

		assert.ErrorIs(t, err, apperrors.ErrMailDispatch)
	})
}
