package dto

// AudienceQuery selects a recipient group for the mail composer.
type AudienceQuery struct {
	Group   string `form:"group" binding:"required,oneof=all branch job placed unplaced oa selected"`
	Branch  string `form:"branch"`
	DriveID int64  `form:"driveId"`
}

// AudienceResponse is the resolved recipient list for a group selector.
type AudienceResponse struct {
	Group      string   `json:"group"`
	Recipients []string `json:"recipients"`
	Count      int      `json:"count"`
}

// SendEmailRequest dispatches one email to an explicit recipient list.
type SendEmailRequest struct {
	To      []string `json:"to" binding:"required,min=1,dive,email"`
	Subject string   `json:"subject" binding:"required"`
	Body    string   `json:"body" binding:"required"`
}

// SendEmailResponse reports how many recipients the relay accepted.
type SendEmailResponse struct {
	Accepted int `json:"accepted"`
}
