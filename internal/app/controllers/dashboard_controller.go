package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/app/services"
	"github.com/uniplace/placement-backend/internal/middleware"
)

// DashboardController serves the admin dashboard aggregates
type DashboardController struct {
	statsService *services.StatsService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(statsService *services.StatsService) *DashboardController {
	return &DashboardController{
		statsService: statsService,
	}
}

// GetDashboard returns the placement snapshot
// @Summary Get dashboard statistics
// @Description Returns totals, the Intern vs FTE split, the company selections chart and per-branch placement counts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved"
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	stats, err := c.statsService.Dashboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}
