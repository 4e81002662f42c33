package controllers

import (
	"github.com/gin-gonic/gin"

	"carebuilds/internal/services"
	"carebuilds/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get admin dashboard stats
// @Description Totals for users, journal entries and solutions plus month-over-month signup growth
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	stats, err := p.dashboardService.DashboardStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Dashboard data fetched successfully")
}

// GetAnalytics godoc
// @Summary Get admin analytics series
// @Description Daily registrations, journal entries and average mood, plus category usage
// @Tags Dashboard
// @Produce json
// @Param days query int false "Trailing window in days (default 30, max 365)"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/analytics [get]
func (p *DashboardController) GetAnalytics(c *gin.Context) {
	days, ok := parseDays(c, services.DefaultAnalyticsDays, services.MaxAnalyticsDays)
	if !ok {
		return
	}

	report, err := p.dashboardService.AdminAnalytics(c.Request.Context(), days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Analytics fetched successfully")
}
