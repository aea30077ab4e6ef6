package models

// Result joins a Drive and a Student with an outcome status.
// A student may hold multiple results across drives; there is deliberately
// no uniqueness constraint on (drive_id, student_id), so re-uploading the
// same CSV creates duplicate rows. Aggregations treat the first "Selected"
// per student as authoritative.
type Result struct {
	ID        int64        `json:"id" db:"id"`
	DriveID   int64        `json:"driveId" db:"drive_id"`
	StudentID string       `json:"studentId" db:"student_id"` // enrollment number
	Status    ResultStatus `json:"status" db:"status"`

	// Relations (populated by joined queries when needed)
	Drive   *Drive   `json:"drive,omitempty"`
	Student *Student `json:"student,omitempty"`
}

// ResultRow is a result joined with the drive and student columns the
// dashboard, reports, and student summary views consume.
type ResultRow struct {
	StudentID      string       `json:"studentId"`
	StudentName    string       `json:"studentName"`
	Branch         string       `json:"branch"`
	CGPA           float64      `json:"cgpa"`
	PrimaryEmail   string       `json:"primaryEmail"`
	Status         ResultStatus `json:"status"`
	CompanyName    string       `json:"companyName"`
	JobTitle       string       `json:"jobTitle"`
	EmploymentType EmploymentType `json:"employmentType"`
	ResultType     ResultType   `json:"resultType"`
}
