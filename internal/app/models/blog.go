package models

import "time"

// Blog is a student-authored post that goes through admin moderation.
type Blog struct {
	ID                   int64      `json:"id" db:"id"`
	AuthorID             int64      `json:"authorId" db:"author_id"`
	AuthorName           string     `json:"authorName" db:"author_name"`
	AuthorAvatarFallback string     `json:"authorAvatarFallback,omitempty" db:"author_avatar_fallback"`
	Title                string     `json:"title" db:"title"`
	ContentHTML          string     `json:"contentHtml" db:"content_html"`
	CoverImageURL        string     `json:"coverImageUrl,omitempty" db:"cover_image_url"`
	Status               BlogStatus `json:"status" db:"status"`
	RejectionReason      string     `json:"rejectionReason,omitempty" db:"rejection_reason"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`

	// StatusSeen is populated for author-facing listings from blog_reads;
	// false means the current status has changed since the author last
	// fetched their blogs.
	StatusSeen bool `json:"statusSeen,omitempty" db:"-"`
}
