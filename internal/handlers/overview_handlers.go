package handlers

import (
	"net/http"

	"kushi_services_backend/internal/services"
	"kushi_services_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OverviewHandler holds the overview service.
type OverviewHandler struct {
	overviewService services.OverviewService
}

// NewOverviewHandler creates a new OverviewHandler.
func NewOverviewHandler(os services.OverviewService) *OverviewHandler {
	return &OverviewHandler{overviewService: os}
}

// GetOverview returns the dashboard payload: totals, recent bookings, top
// services, top customers and the category report.
func (h *OverviewHandler) GetOverview(c *gin.Context) {
	data, err := h.overviewService.GetDashboard()
	if err != nil {
		utils.LogError(err, "GetOverview: Error from overviewService.GetDashboard")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load overview.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, data)
}
