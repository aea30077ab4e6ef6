package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/app/services"
	"github.com/uniplace/placement-backend/internal/middleware"
)

// maxUploadSize caps result CSV uploads at 10 MiB.
const maxUploadSize = 10 << 20

// DriveController handles drive and result ingestion endpoints
type DriveController struct {
	ingestService *services.IngestService
	driveService  *services.DriveService
}

// NewDriveController creates a new DriveController
func NewDriveController(ingestService *services.IngestService, driveService *services.DriveService) *DriveController {
	return &DriveController{
		ingestService: ingestService,
		driveService:  driveService,
	}
}

// UploadResults ingests a results CSV into a new drive
// @Summary Upload drive results
// @Description Creates a drive from the form metadata and ingests the attached CSV of student emails. The drive and all matched results are written atomically.
// @Tags drives
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param companyName formData string true "Company name"
// @Param jobTitle formData string true "Job title"
// @Param employmentType formData string true "Intern, FTE or PPO"
// @Param resultType formData string true "OA or Final Offer"
// @Param batch formData string true "Graduating batch"
// @Param description formData string false "Drive description"
// @Param file formData file true "Results CSV with an email column"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResultsResponse} "Results ingested"
// @Failure 400 {object} dto.ErrorResponse "Invalid form data or unusable CSV"
// @Router /drives/upload [post]
func (c *DriveController) UploadResults(ctx *gin.Context) {
	var req dto.UploadResultsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid upload form").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidUpload, "CSV file is required").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}
	if fileHeader.Size > maxUploadSize {
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidUpload, "CSV file exceeds the 10 MiB limit")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	summary, err := c.ingestService.UploadResults(ctx, req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(summary))
}

// ListDrives lists all drives, newest first
// @Summary List drives
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DriveListResponse} "Drives retrieved"
// @Router /drives [get]
func (c *DriveController) ListDrives(ctx *gin.Context) {
	drives, err := c.driveService.ListDrives(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(drives))
}

// GetDrive retrieves one drive
// @Summary Get a drive
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=models.Drive} "Drive retrieved"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /drives/{id} [get]
func (c *DriveController) GetDrive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	drive, err := c.driveService.GetDrive(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(drive))
}

// GetDriveResults retrieves the joined result rows for a drive
// @Summary Get a drive's results
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ResultRow} "Results retrieved"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /drives/{id}/results [get]
func (c *DriveController) GetDriveResults(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	rows, err := c.driveService.GetDriveResults(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows))
}

// DeleteDrive removes a drive and its results
// @Summary Delete a drive
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse "Drive deleted"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /drives/{id} [delete]
func (c *DriveController) DeleteDrive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.driveService.DeleteDrive(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "drive deleted"}))
}
