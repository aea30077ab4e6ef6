package dto

import "github.com/uniplace/placement-backend/internal/app/models"

// CreateStudentRequest adds a student to the master database.
type CreateStudentRequest struct {
	EnrollmentNumber string  `json:"enrollmentNumber" binding:"required"`
	Name             string  `json:"name" binding:"required"`
	Branch           string  `json:"branch" binding:"required"`
	PrimaryEmail     string  `json:"primaryEmail" binding:"required,email"`
	SecondaryEmail   string  `json:"secondaryEmail" binding:"omitempty,email"`
	CGPA             float64 `json:"cgpa" binding:"gte=0,lte=10"`
	PassingYear      int     `json:"passingYear" binding:"required"`
}

// UpdateStudentRequest edits the mutable fields of a student record.
type UpdateStudentRequest struct {
	Name           *string  `json:"name"`
	Branch         *string  `json:"branch"`
	PrimaryEmail   *string  `json:"primaryEmail" binding:"omitempty,email"`
	SecondaryEmail *string  `json:"secondaryEmail" binding:"omitempty,email"`
	CGPA           *float64 `json:"cgpa" binding:"omitempty,gte=0,lte=10"`
	PassingYear    *int     `json:"passingYear"`
}

// StudentListFilter narrows student listings.
type StudentListFilter struct {
	Branch string `form:"branch"`
	Search string `form:"search"`
	Page   int    `form:"page,default=1" binding:"omitempty,gte=1"`
	Size   int    `form:"size,default=50" binding:"omitempty,gte=1,lte=500"`
}

// StudentListResponse is a paginated student listing.
type StudentListResponse struct {
	Students []models.Student `json:"students"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Size     int              `json:"size"`
}

// StudentSummaryResponse is the per-student placement summary view.
type StudentSummaryResponse struct {
	Student models.Student     `json:"student"`
	Results []models.ResultRow `json:"results"`
	Placed  bool               `json:"placed"`
}
