package models

// Student defines a student record from the 'students' table.
// EnrollmentNumber is the immutable identifier; everything else is
// editable through the admin console.
type Student struct {
	EnrollmentNumber string  `json:"enrollmentNumber" db:"enrollment_number" example:"03520802722"`
	Name             string  `json:"name" db:"name" example:"Arisha Rizwan"`
	Branch           string  `json:"branch" db:"branch" example:"CSE"`
	PrimaryEmail     string  `json:"primaryEmail" db:"primary_email" example:"arisha@university.edu"`
	SecondaryEmail   string  `json:"secondaryEmail,omitempty" db:"secondary_email"`
	CGPA             float64 `json:"cgpa" db:"cgpa" example:"8.4"`
	PassingYear      int     `json:"passingYear" db:"passing_year" example:"2026"`
}
