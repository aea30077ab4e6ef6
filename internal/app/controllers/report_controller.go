package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/app/services"
	"github.com/uniplace/placement-backend/internal/middleware"
	"github.com/uniplace/placement-backend/internal/pkg/logger"
	"github.com/uniplace/placement-backend/internal/pkg/spreadsheet"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportController renders downloadable placement reports
type ReportController struct {
	reportService *services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// DownloadReport builds a report and streams it as XLSX or CSV
// @Summary Download a report
// @Description Builds one of the placement reports (students, placed, applicants, company_results, branch_stats, intern_ppo) and streams it in the requested format
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Security BearerAuth
// @Param id path string true "Report identifier" Enums(students, placed, applicants, company_results, branch_stats, intern_ppo)
// @Param format query string false "Output format, xlsx by default" Enums(xlsx, csv)
// @Success 200 {file} file "Report file"
// @Failure 400 {object} dto.ErrorResponse "Unknown report or format"
// @Failure 404 {object} dto.ErrorResponse "Report has no rows"
// @Router /reports/{id} [get]
func (c *ReportController) DownloadReport(ctx *gin.Context) {
	format := ctx.DefaultQuery("format", "xlsx")
	if format != "xlsx" && format != "csv" {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid format").
			WithDetails("format must be xlsx or csv")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	reportID := ctx.Param("id")
	sheet, err := c.reportService.Build(ctx, reportID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filename := fmt.Sprintf("%s_%s.%s", reportID, time.Now().Format("2006-01-02"), format)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	var writeErr error
	if format == "csv" {
		ctx.Header("Content-Type", "text/csv; charset=utf-8")
		ctx.Status(http.StatusOK)
		writeErr = spreadsheet.WriteCSV(ctx.Writer, sheet)
	} else {
		ctx.Header("Content-Type", xlsxContentType)
		ctx.Status(http.StatusOK)
		writeErr = spreadsheet.WriteXLSX(ctx.Writer, sheet)
	}
	if writeErr != nil {
		// Headers are already sent, so all we can do is log and drop the
		// connection.
		logger.Error().Err(writeErr).Str("report", reportID).Str("format", format).Msg("Failed to stream report")
		ctx.Abort()
	}
}
