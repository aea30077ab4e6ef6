package models

// Company is a recruiting company managed from the admin console.
type Company struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name" example:"Acme Corp"`
	Industry    string `json:"industry,omitempty" db:"industry"`
	Location    string `json:"location,omitempty" db:"location"`
	Website     string `json:"website,omitempty" db:"website"`
	Description string `json:"description,omitempty" db:"description"`
	POCName     string `json:"pocName,omitempty" db:"poc_name"`
	POCEmail    string `json:"pocEmail,omitempty" db:"poc_email"`
	POCPhone    string `json:"pocPhone,omitempty" db:"poc_phone"`
}
