package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/uniplace/placement-backend/internal/app/models"
	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/app/repositories"
	"github.com/uniplace/placement-backend/internal/pkg/apperrors"
	"github.com/uniplace/placement-backend/internal/pkg/filestorage"
	"github.com/uniplace/placement-backend/internal/pkg/logger"
)

// BlogService handles blog submission and moderation
type BlogService struct {
	blogRepo *repositories.BlogRepository
	storage  *filestorage.LocalStorage
}

// NewBlogService creates a new blog service instance
func NewBlogService(blogRepo *repositories.BlogRepository, storage *filestorage.LocalStorage) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		storage:  storage,
	}
}

// CreateBlog submits a post for moderation. The optional cover image is
// stored under the blogs/ subdirectory.
func (s *BlogService) CreateBlog(ctx context.Context, author *models.User, req dto.CreateBlogRequest, cover *multipart.FileHeader) (*models.Blog, error) {
	coverURL := ""
	if cover != nil {
		url, err := s.storage.SaveFileWithPath(cover, "blogs")
		if err != nil {
			return nil, fmt.Errorf("error storing cover image: %w", err)
		}
		coverURL = url
	}

	blog := &models.Blog{
		AuthorID:             author.ID,
		AuthorName:           author.FullName,
		AuthorAvatarFallback: avatarFallback(author.FullName),
		Title:                req.Title,
		ContentHTML:          req.ContentHTML,
		CoverImageURL:        coverURL,
		Status:               models.BlogPending,
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("error creating blog: %w", err)
	}

	return blog, nil
}

// avatarFallback returns the first rune of the author's name, uppercased by
// the UI when rendered.
func avatarFallback(name string) string {
	for _, r := range name {
		return string(r)
	}
	return "?"
}

// ListApproved lists the published feed
func (s *BlogService) ListApproved(ctx context.Context) ([]models.Blog, error) {
	blogs, err := s.blogRepo.ListByStatus(ctx, models.BlogApproved)
	if err != nil {
		return nil, fmt.Errorf("error listing approved blogs: %w", err)
	}
	return blogs, nil
}

// ListForModeration lists blogs by moderation status; empty status lists all
func (s *BlogService) ListForModeration(ctx context.Context, status models.BlogStatus) ([]models.Blog, error) {
	blogs, err := s.blogRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("error listing blogs: %w", err)
	}
	return blogs, nil
}

// ListMine lists an author's blogs with status-seen markers
func (s *BlogService) ListMine(ctx context.Context, authorID int64) ([]models.Blog, error) {
	blogs, err := s.blogRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("error listing author blogs: %w", err)
	}
	return blogs, nil
}

// GetBlog retrieves a blog by ID
func (s *BlogService) GetBlog(ctx context.Context, id int64) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrBlogNotFound) {
			return nil, apperrors.ErrBlogNotFound
		}
		return nil, fmt.Errorf("error retrieving blog: %w", err)
	}
	return blog, nil
}

// Moderate approves or rejects a pending blog
func (s *BlogService) Moderate(ctx context.Context, id int64, req dto.ModerateBlogRequest) (*models.Blog, error) {
	status := models.BlogStatus(req.Status)
	reason := ""
	if status == models.BlogRejected {
		reason = strings.TrimSpace(req.RejectionReason)
		if reason == "" {
			return nil, apperrors.NewValidationError("a rejection reason is required")
		}
	}

	blog, err := s.GetBlog(ctx, id)
	if err != nil {
		return nil, err
	}

	if blog.Status != models.BlogPending {
		return nil, apperrors.ErrBlogNotPending
	}

	if err := s.blogRepo.UpdateStatus(ctx, id, status, reason); err != nil {
		return nil, fmt.Errorf("error updating blog status: %w", err)
	}

	blog.Status = status
	blog.RejectionReason = reason

	logger.Info().Int64("blogId", id).Str("status", req.Status).Msg("Blog moderated")

	return blog, nil
}

// AcknowledgeStatus records that the author has seen a blog's current status
func (s *BlogService) AcknowledgeStatus(ctx context.Context, blogID int64, user *models.User) error {
	blog, err := s.GetBlog(ctx, blogID)
	if err != nil {
		return err
	}

	if blog.AuthorID != user.ID {
		return apperrors.ErrNotBlogAuthor
	}

	if err := s.blogRepo.MarkStatusSeen(ctx, blogID, user.ID); err != nil {
		return fmt.Errorf("error acknowledging blog status: %w", err)
	}

	return nil
}

// DeleteBlog removes a blog and its stored cover image
func (s *BlogService) DeleteBlog(ctx context.Context, id int64) error {
	blog, err := s.GetBlog(ctx, id)
	if err != nil {
		return err
	}

	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting blog: %w", err)
	}

	if blog.CoverImageURL != "" {
		if err := s.storage.DeleteFile(blog.CoverImageURL); err != nil {
			logger.Warn().Err(err).Int64("blogId", id).Msg("Failed to delete cover image")
		}
	}

	return nil
}
