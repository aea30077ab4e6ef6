package models

import "time"

// Drive represents one recruitment event tied to a company and job title.
// A drive is created once per results upload and never mutated afterwards.
type Drive struct {
	ID             int64          `json:"id" db:"id" example:"12"`
	CompanyName    string         `json:"companyName" db:"company_name" example:"Acme Corp"`
	JobTitle       string         `json:"jobTitle" db:"job_title" example:"SDE Intern"`
	EmploymentType EmploymentType `json:"employmentType" db:"employment_type" example:"Intern"`
	ResultType     ResultType     `json:"resultType" db:"result_type" example:"OA"`
	Batch          string         `json:"batch" db:"batch" example:"2026"`
	Description    string         `json:"description,omitempty" db:"description"`
	UnmatchedCount int            `json:"unmatchedCount" db:"unmatched_count"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
}
