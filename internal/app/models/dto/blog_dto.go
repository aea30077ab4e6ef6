package dto

import "github.com/uniplace/placement-backend/internal/app/models"

// CreateBlogRequest submits a new post for moderation.
type CreateBlogRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	ContentHTML string `form:"contentHtml" binding:"required"`
}

// ModerateBlogRequest approves or rejects a pending post. A rejection
// must carry a reason for the author.
type ModerateBlogRequest struct {
	Status          string `json:"status" binding:"required,oneof=approved rejected"`
	RejectionReason string `json:"rejectionReason" binding:"required_if=Status rejected"`
}

// BlogListResponse lists blogs with the caller-appropriate visibility.
type BlogListResponse struct {
	Blogs []models.Blog `json:"blogs"`
	Total int64         `json:"total"`
}
