package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleStudent RoleType = "STUDENT"
)

// EmploymentType classifies the kind of offer a drive carries.
type EmploymentType string

const (
	EmploymentIntern EmploymentType = "Intern"
	EmploymentFTE    EmploymentType = "FTE"
	EmploymentPPO    EmploymentType = "PPO"
)

// ResultType is the stage a drive's uploaded results correspond to.
type ResultType string

const (
	ResultTypeOA         ResultType = "OA"
	ResultTypeFinalOffer ResultType = "Final Offer"
)

// ResultStatus is the outcome recorded for a student in a drive.
// Values are case-sensitive tokens stored verbatim in the results table.
type ResultStatus string

const (
	StatusShortlisted ResultStatus = "Shortlisted"
	StatusSelected    ResultStatus = "Selected"
)

// BlogStatus tracks the moderation state of a blog post.
type BlogStatus string

const (
	BlogPending  BlogStatus = "pending"
	BlogApproved BlogStatus = "approved"
	BlogRejected BlogStatus = "rejected"
)
