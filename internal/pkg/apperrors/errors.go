package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Student errors
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrEnrollmentExists   = errors.New("enrollment number already exists")
	ErrInvalidEnrollment  = errors.New("invalid enrollment number format")
	ErrNoMatchingStudents = errors.New("no matching students found for the uploaded emails")
	ErrNoEmailColumn      = errors.New("no valid email column found in CSV")
	ErrEmptyUpload        = errors.New("uploaded CSV does not contain any data rows")
	ErrMalformedUpload    = errors.New("uploaded CSV is malformed")
)

// Drive and result errors
var (
	ErrDriveNotFound  = errors.New("drive not found")
	ErrResultNotFound = errors.New("result not found")
)

// Company errors
var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company with this name already exists")
)

// Blog errors
var (
	ErrBlogNotFound   = errors.New("blog not found")
	ErrBlogNotPending = errors.New("blog is not pending review")
	ErrNotBlogAuthor  = errors.New("user is not the author of this blog")
)

// Audience and mail errors
var (
	ErrUnknownAudience = errors.New("unknown audience selector")
	ErrNoRecipients    = errors.New("selected criteria matches no recipients")
	ErrMailDispatch    = errors.New("mail dispatch failed")
)

// Report errors
var (
	ErrUnknownReport = errors.New("unknown report type")
	ErrEmptyReport   = errors.New("no data available for this report")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation error with a user-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewResourceNotFoundError creates a not-found error with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}
