package handlers

import (
	"net/http"

	"money-monitor/internal/services"

	"github.com/labstack/echo/v4"
)

// InsightHandler serves the coaching message endpoint
type InsightHandler struct {
	store   services.StoreServiceInterface
	insight services.InsightServiceInterface
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(
	store services.StoreServiceInterface,
	insight services.InsightServiceInterface,
) *InsightHandler {
	return &InsightHandler{
		store:   store,
		insight: insight,
	}
}

// GetInsight returns a short coaching message for recent activity
// @Summary Get insight
// @Description Coaching tips generated from recent transactions; degrades to a canned message when the model is unavailable
// @Tags Insight
// @Produce json
// @Success 200 {object} object{insight=string} "Coaching message"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/insight [get]
func (h *InsightHandler) GetInsight(c echo.Context) error {
	snapshot, err := h.store.Snapshot()
	if err != nil {
		return SendSystemError(c, err)
	}

	insight := h.insight.GenerateInsight(c.Request().Context(), snapshot)

	return c.JSON(http.StatusOK, map[string]string{"insight": insight})
}
