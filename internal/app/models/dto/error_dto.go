package dto

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeTokenExpired       ErrorCode = "AUTH_002"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_003"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_004"
	ErrorCodeForbidden          ErrorCode = "AUTH_005"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeResourceExists   ErrorCode = "RES_002"
	ErrorCodeResourceConflict ErrorCode = "RES_003"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidUpload    ErrorCode = "VAL_002"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
	ErrorCodeMailerError    ErrorCode = "SRV_003"
)

// ErrorDetail carries a single error with its code and optional field detail.
type ErrorDetail struct {
	Code    ErrorCode `json:"code" example:"VAL_001"`
	Message string    `json:"message" example:"Validation failed"`
	Details string    `json:"details,omitempty"`
}

// NewErrorDetail creates an ErrorDetail with the given code and message.
func NewErrorDetail(code ErrorCode, message string) ErrorDetail {
	return ErrorDetail{Code: code, Message: message}
}

// WithDetails attaches extra context to the error detail.
func (e ErrorDetail) WithDetails(details string) ErrorDetail {
	e.Details = details
	return e
}

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Error     ErrorDetail `json:"error"`
	Timestamp string      `json:"timestamp" example:"2026-01-15T10:04:05Z"`
}
