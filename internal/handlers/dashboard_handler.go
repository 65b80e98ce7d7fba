package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spendsmart/internal/services"
)

// DashboardHandler handles dashboard requests.
type DashboardHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(analyticsService services.AnalyticsServicer) *DashboardHandler {
	return &DashboardHandler{analyticsService: analyticsService}
}

// GetDashboard returns the caller's dashboard: current-month totals, the
// ranked category breakdown, the trailing six-month report, and the five most
// recent transactions.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	owner, err := getOwner(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.analyticsService.Dashboard(owner, time.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
