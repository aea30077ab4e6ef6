package dto

// DashboardResponse is the aggregate placement snapshot for the admin home.
type DashboardResponse struct {
	TotalStudents   int64          `json:"totalStudents"`
	PlacedStudents  int64          `json:"placedStudents"`
	InternCount     int64          `json:"internCount"`
	FTECount        int64          `json:"fteCount"`
	TotalDrives     int64          `json:"totalDrives"`
	TotalCompanies  int64          `json:"totalCompanies"`
	CompanySlices   []CompanySlice `json:"companySlices"`
	BranchStats     []BranchStat   `json:"branchStats"`
	UnmatchedEmails int64          `json:"unmatchedEmails"`
}

// CompanySlice is one segment of the selections-by-company chart.
// The top five companies appear by name; the remainder fold into "Others".
type CompanySlice struct {
	Company    string `json:"company"`
	Selections int64  `json:"selections"`
}

// BranchStat pairs a branch with its total and placed student counts.
type BranchStat struct {
	Branch string `json:"branch"`
	Total  int64  `json:"total"`
	Placed int64  `json:"placed"`
}
