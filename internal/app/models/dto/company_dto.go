package dto

// CreateCompanyRequest registers a recruiting company.
type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Website     string `json:"website" binding:"omitempty,url"`
	Description string `json:"description"`
	POCName     string `json:"pocName"`
	POCEmail    string `json:"pocEmail" binding:"omitempty,email"`
	POCPhone    string `json:"pocPhone"`
}

// UpdateCompanyRequest edits an existing company.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Industry    *string `json:"industry"`
	Location    *string `json:"location"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Description *string `json:"description"`
	POCName     *string `json:"pocName"`
	POCEmail    *string `json:"pocEmail" binding:"omitempty,email"`
	POCPhone    *string `json:"pocPhone"`
}
