package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/registrar/internal/app/services"
)

// DashboardController renders the landing dashboard.
type DashboardController struct {
	dashboardService services.DashboardService
	logger           zerolog.Logger
}

// NewDashboardController creates a new DashboardController.
func NewDashboardController(dashboardService services.DashboardService, logger zerolog.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Dashboard renders totals, the five most recent admissions and the
// configured notices.
func (ctrl *DashboardController) Dashboard(c *gin.Context) {
	summary, err := ctrl.dashboardService.Summary(c.Request.Context())
	if err != nil {
		ctrl.logger.Error().Err(err).Msg("Failed to build dashboard summary")
		redirectWithError(c, "/", "Could not load the dashboard.")
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title":          "Dashboard",
		"TotalStudents":  summary.TotalStudents,
		"TotalCourses":   summary.TotalCourses,
		"RecentStudents": summary.RecentStudents,
		"Notices":        summary.Notices,
	})
}
