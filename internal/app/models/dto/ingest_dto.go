package dto

import "github.com/uniplace/placement-backend/internal/app/models"

// UploadResultsRequest is the multipart form accompanying a results CSV.
// The CSV file itself arrives under the "file" form field.
type UploadResultsRequest struct {
	CompanyName    string `form:"companyName" binding:"required"`
	JobTitle       string `form:"jobTitle" binding:"required"`
	EmploymentType string `form:"employmentType" binding:"required,oneof=Intern FTE PPO"`
	ResultType     string `form:"resultType" binding:"required,oneof=OA 'Final Offer'"`
	Batch          string `form:"batch" binding:"required"`
	Description    string `form:"description"`
}

// UploadResultsResponse summarizes a completed results ingestion.
type UploadResultsResponse struct {
	DriveID   int64 `json:"driveId"`
	Inserted  int   `json:"inserted"`  // matched rows written to results
	Unmatched int   `json:"unmatched"` // emails with no student record
	Skipped   int   `json:"skipped"`   // duplicate emails within the file
}

// DriveListResponse lists drives newest first.
type DriveListResponse struct {
	Drives []models.Drive `json:"drives"`
	Total  int64          `json:"total"`
}
