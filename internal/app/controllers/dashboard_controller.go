package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kmuriuki/campusreg/internal/app/models/dto"
	"github.com/kmuriuki/campusreg/internal/app/services"
	"github.com/kmuriuki/campusreg/internal/middleware"
)

// DashboardController handles admin dashboard endpoints
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetStats returns the dashboard counters
// @Summary Get dashboard statistics
// @Description Retrieves student, exam, registration and holiday report counters for the admin dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats} "Statistics retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/stats [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.dashboardService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats, ""))
}
