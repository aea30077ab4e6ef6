package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/app/services"
	"github.com/uniplace/placement-backend/internal/middleware"
)

// EmailController handles audience resolution and announcement dispatch
type EmailController struct {
	audienceService *services.AudienceService
	emailService    *services.EmailService
}

// NewEmailController creates a new EmailController
func NewEmailController(audienceService *services.AudienceService, emailService *services.EmailService) *EmailController {
	return &EmailController{
		audienceService: audienceService,
		emailService:    emailService,
	}
}

// GetAudience resolves a recipient group for the mail composer
// @Summary Resolve an audience group
// @Description Expands a group selector (all, branch, job, placed, unplaced, oa, selected) into the matching recipient emails
// @Tags emails
// @Produce json
// @Security BearerAuth
// @Param group query string true "Audience group" Enums(all, branch, job, placed, unplaced, oa, selected)
// @Param branch query string false "Branch name, required for the branch group"
// @Param driveId query int false "Drive ID, required for the job group"
// @Success 200 {object} dto.APIResponse{data=dto.AudienceResponse} "Audience resolved"
// @Failure 400 {object} dto.ErrorResponse "Unknown group or missing selector"
// @Router /emails/audience [get]
func (c *EmailController) GetAudience(ctx *gin.Context) {
	var query dto.AudienceQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid audience parameters").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	audience, err := c.audienceService.Resolve(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(audience))
}

// SendEmail relays an announcement to an explicit recipient list
// @Summary Send an announcement
// @Tags emails
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendEmailRequest true "Recipients and message"
// @Success 200 {object} dto.APIResponse{data=dto.SendEmailResponse} "Announcement accepted"
// @Failure 422 {object} dto.ErrorResponse "No usable recipients"
// @Failure 502 {object} dto.ErrorResponse "Mail relay failed"
// @Router /emails/send [post]
func (c *EmailController) SendEmail(ctx *gin.Context) {
	var req dto.SendEmailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid email data").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	resp, err := c.emailService.Send(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
