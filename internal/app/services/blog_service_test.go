package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
)

func TestModerateRequiresRejectionReason(t *testing.T) {
	service := NewBlogService(nil, nil)

	_, err := service.Moderate(context.Background(), 7, dto.ModerateBlogRequest{Status: "rejected"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = service.Moderate(context.Background(), 7, dto.ModerateBlogRequest{Status: "rejected", RejectionReason: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
