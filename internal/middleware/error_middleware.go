package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
	"github.com/uniplace/placement-backend/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the standard error envelope.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) {
		message = custom.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidEnrollment),
		errors.Is(err, apperrors.ErrUnknownAudience),
		errors.Is(err, apperrors.ErrUnknownReport):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, defaultMessage(message, err))

	case errors.Is(err, apperrors.ErrNoEmailColumn),
		errors.Is(err, apperrors.ErrEmptyUpload),
		errors.Is(err, apperrors.ErrMalformedUpload),
		errors.Is(err, apperrors.ErrNoMatchingStudents):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeInvalidUpload, defaultMessage(message, err))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeTokenExpired, "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound),
		errors.Is(err, apperrors.ErrTokenRevoked),
		errors.Is(err, apperrors.ErrInvalidFormat):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrNotBlogAuthor):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrDriveNotFound),
		errors.Is(err, apperrors.ErrCompanyNotFound),
		errors.Is(err, apperrors.ErrBlogNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrEmptyReport):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, defaultMessage(message, err))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrEnrollmentExists),
		errors.Is(err, apperrors.ErrCompanyAlreadyExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceExists, defaultMessage(message, err))

	case errors.Is(err, apperrors.ErrBlogNotPending),
		errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceConflict, defaultMessage(message, err))

	case errors.Is(err, apperrors.ErrNoRecipients):
		respondError(c, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed, "Selected criteria matches no recipients")

	case errors.Is(err, apperrors.ErrMailDispatch):
		respondError(c, http.StatusBadGateway, dto.ErrorCodeMailerError, "Mail dispatch failed")

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func defaultMessage(message string, err error) string {
	if message != "" {
		return message
	}
	return err.Error()
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
