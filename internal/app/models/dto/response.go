package dto

import "time"

// APIResponse is the envelope returned for every successful request.
type APIResponse struct {
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp" example:"2026-01-15T10:04:05Z"`
}

// NewAPIResponse wraps data in the standard success envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewErrorResponse wraps an error detail in the standard failure envelope.
func NewErrorResponse(detail ErrorDetail) ErrorResponse {
	return ErrorResponse{
		Error:     detail,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
