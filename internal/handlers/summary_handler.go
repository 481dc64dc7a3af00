package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// SummaryHandler serves dashboard aggregates
type SummaryHandler struct {
	service services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(service services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{service: service}
}

// GetSummary handles the dashboard summary
// @Summary     Dashboard summary
// @Description Totals, balance, expense breakdown by category and the most recent entries
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       month    query string false "Month filter (YYYY-MM)"
// @Param       category query string false "Expense category filter (All for none)"
// @Param       recent   query int    false "Number of recent entries (default 5, max 50)"
// @Success     200 {object} services.Summary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var filter services.SummaryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	summary, err := h.service.Summarize(c.Request.Context(), userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
