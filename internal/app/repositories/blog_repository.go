package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uniplace/placement-backend/internal/app/models"
)

// Blog error types
var (
	ErrBlogNotFound = errors.New("blog not found")
)

// BlogRepository handles database operations for blogs and their read
// markers.
type BlogRepository struct {
	db *pgxpool.Pool
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{
		db: db,
	}
}

const blogColumns = `id, author_id, author_name, COALESCE(author_avatar_fallback, ''), title, content_html,
	COALESCE(cover_image_url, ''), status, COALESCE(rejection_reason, ''), created_at`

func scanBlog(row pgx.Row) (*models.Blog, error) {
	var blog models.Blog
	err := row.Scan(
		&blog.ID,
		&blog.AuthorID,
		&blog.AuthorName,
		&blog.AuthorAvatarFallback,
		&blog.Title,
		&blog.ContentHTML,
		&blog.CoverImageURL,
		&blog.Status,
		&blog.RejectionReason,
		&blog.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Create creates a new blog in pending state
func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	query := `
		INSERT INTO blogs (author_id, author_name, author_avatar_fallback, title, content_html, cover_image_url, status)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		blog.AuthorID,
		blog.AuthorName,
		blog.AuthorAvatarFallback,
		blog.Title,
		blog.ContentHTML,
		blog.CoverImageURL,
		string(blog.Status),
	).Scan(&blog.ID, &blog.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating blog: %w", err)
	}

	return nil
}

// GetByID retrieves a blog by ID
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = $1`

	blog, err := scanBlog(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("error retrieving blog: %w", err)
	}

	return blog, nil
}

// ListByStatus retrieves blogs in a given status, newest first. An empty
// status lists everything.
func (r *BlogRepository) ListByStatus(ctx context.Context, status models.BlogStatus) ([]models.Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	return r.queryBlogs(ctx, query, args...)
}

// ListByAuthor retrieves an author's blogs with their read markers. A blog
// whose status changed since the author last acknowledged it has
// StatusSeen false.
func (r *BlogRepository) ListByAuthor(ctx context.Context, authorID int64) ([]models.Blog, error) {
	query := `
		SELECT ` + blogColumns + `,
			EXISTS(
				SELECT 1 FROM blog_reads br
				WHERE br.blog_id = blogs.id AND br.user_id = blogs.author_id AND br.seen_status = blogs.status
			)
		FROM blogs
		WHERE author_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		var blog models.Blog
		if err := rows.Scan(
			&blog.ID,
			&blog.AuthorID,
			&blog.AuthorName,
			&blog.AuthorAvatarFallback,
			&blog.Title,
			&blog.ContentHTML,
			&blog.CoverImageURL,
			&blog.Status,
			&blog.RejectionReason,
			&blog.CreatedAt,
			&blog.StatusSeen,
		); err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (r *BlogRepository) queryBlogs(ctx context.Context, query string, args ...interface{}) ([]models.Blog, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []models.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

// UpdateStatus moves a blog to a new moderation status
func (r *BlogRepository) UpdateStatus(ctx context.Context, id int64, status models.BlogStatus, rejectionReason string) error {
	query := `
		UPDATE blogs
		SET status = $1, rejection_reason = NULLIF($2, '')
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, string(status), rejectionReason, id)
	if err != nil {
		return fmt.Errorf("error updating blog status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrBlogNotFound
	}

	return nil
}

// MarkStatusSeen records that a user has acknowledged a blog's current status
func (r *BlogRepository) MarkStatusSeen(ctx context.Context, blogID, userID int64) error {
	query := `
		INSERT INTO blog_reads (blog_id, user_id, seen_status)
		SELECT id, $2, status FROM blogs WHERE id = $1
		ON CONFLICT (blog_id, user_id) DO UPDATE SET seen_status = EXCLUDED.seen_status
	`

	cmdTag, err := r.db.Exec(ctx, query, blogID, userID)
	if err != nil {
		return fmt.Errorf("error marking blog status seen: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrBlogNotFound
	}

	return nil
}

// Delete deletes a blog by ID
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting blog: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrBlogNotFound
	}

	return nil
}
