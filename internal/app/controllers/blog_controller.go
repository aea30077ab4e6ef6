package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniplace/placement-backend/internal/app/models"
	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/app/services"
	"github.com/uniplace/placement-backend/internal/middleware"
)

// BlogController handles the student blog endpoints
type BlogController struct {
	blogService *services.BlogService
	authService *services.AuthService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService, authService *services.AuthService) *BlogController {
	return &BlogController{
		blogService: blogService,
		authService: authService,
	}
}

func (c *BlogController) currentUser(ctx *gin.Context) (*models.User, bool) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return nil, false
	}

	user, err := c.authService.GetUser(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	return user, true
}

// CreateBlog submits a post for moderation
// @Summary Submit a blog post
// @Description Submits a post with an optional cover image. Posts stay pending until a moderator approves them.
// @Tags blogs
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Post title"
// @Param contentHtml formData string true "Post body as sanitized HTML"
// @Param cover formData file false "Cover image"
// @Success 201 {object} dto.APIResponse{data=models.Blog} "Post submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid form data"
// @Router /blogs [post]
func (c *BlogController) CreateBlog(ctx *gin.Context) {
	var req dto.CreateBlogRequest
	if err := ctx.ShouldBind(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid blog data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	// Cover image is optional.
	cover, err := ctx.FormFile("cover")
	if err != nil {
		cover = nil
	}

	blog, err := c.blogService.CreateBlog(ctx, user, req, cover)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(blog))
}

// ListApproved lists the published feed
// @Summary List approved blog posts
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.BlogListResponse} "Posts retrieved"
// @Router /blogs [get]
func (c *BlogController) ListApproved(ctx *gin.Context) {
	blogs, err := c.blogService.ListApproved(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.BlogListResponse{Blogs: blogs, Total: int64(len(blogs))}))
}

// ListMine lists the caller's own posts with status-seen markers
// @Summary List my blog posts
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.BlogListResponse} "Posts retrieved"
// @Router /blogs/mine [get]
func (c *BlogController) ListMine(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return
	}

	blogs, err := c.blogService.ListMine(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.BlogListResponse{Blogs: blogs, Total: int64(len(blogs))}))
}

// GetBlog retrieves a single post
// @Summary Get a blog post
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse{data=models.Blog} "Post retrieved"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /blogs/{id} [get]
func (c *BlogController) GetBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	blog, err := c.blogService.GetBlog(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(blog))
}

// ListForModeration lists posts by moderation status
// @Summary List posts for moderation
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status; lists all when omitted" Enums(pending, approved, rejected)
// @Success 200 {object} dto.APIResponse{data=dto.BlogListResponse} "Posts retrieved"
// @Router /blogs/moderation [get]
func (c *BlogController) ListForModeration(ctx *gin.Context) {
	status := models.BlogStatus(ctx.Query("status"))

	blogs, err := c.blogService.ListForModeration(ctx, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.BlogListResponse{Blogs: blogs, Total: int64(len(blogs))}))
}

// Moderate approves or rejects a pending post
// @Summary Moderate a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param request body dto.ModerateBlogRequest true "Moderation decision"
// @Success 200 {object} dto.APIResponse{data=models.Blog} "Post moderated"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Failure 409 {object} dto.ErrorResponse "Post is not pending"
// @Router /blogs/{id}/moderate [post]
func (c *BlogController) Moderate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ModerateBlogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid moderation data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	blog, err := c.blogService.Moderate(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(blog))
}

// Acknowledge records that the author has seen the post's current status
// @Summary Acknowledge a post's status
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse "Status acknowledged"
// @Failure 403 {object} dto.ErrorResponse "Not the post's author"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /blogs/{id}/ack [post]
func (c *BlogController) Acknowledge(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	user, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	if err := c.blogService.AcknowledgeStatus(ctx, id, user); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "status acknowledged"}))
}

// DeleteBlog removes a post and its cover image
// @Summary Delete a blog post
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse "Post deleted"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /blogs/{id} [delete]
func (c *BlogController) DeleteBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.blogService.DeleteBlog(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "blog deleted"}))
}
