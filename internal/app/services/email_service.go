package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
	"github.com/uniplace/placement-backend/internal/pkg/logger"
	"github.com/uniplace/placement-backend/internal/pkg/mailer"
)

// EmailService relays announcements to explicit recipient lists.
type EmailService struct {
	mailer mailer.Mailer
}

// NewEmailService creates a new email service instance
func NewEmailService(m mailer.Mailer) *EmailService {
	return &EmailService{
		mailer: m,
	}
}

// Send normalizes and dedupes the recipient list, then relays the message.
func (s *EmailService) Send(ctx context.Context, req dto.SendEmailRequest) (*dto.SendEmailResponse, error) {
	seen := make(map[string]struct{}, len(req.To))
	recipients := make([]string, 0, len(req.To))
	for _, to := range req.To {
		email := strings.ToLower(strings.TrimSpace(to))
		if email == "" || !strings.Contains(email, "@") {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		recipients = append(recipients, email)
	}

	if len(recipients) == 0 {
		return nil, apperrors.ErrNoRecipients
	}

	if err := s.mailer.Send(recipients, req.Subject, req.Body); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMailDispatch, err)
	}

	logger.Info().Int("recipients", len(recipients)).Str("subject", req.Subject).Msg("Announcement relayed")

	return &dto.SendEmailResponse{Accepted: len(recipients)}, nil
}
