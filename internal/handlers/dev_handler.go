package handlers

import (
	"errors"
	"net/http"

	apperrors "money-monitor/internal/errors"
	"money-monitor/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultSeedCount = 25

// DevHandler exposes development-only helpers
type DevHandler struct {
	store     services.StoreServiceInterface
	generator services.SeedGeneratorInterface
}

// NewDevHandler creates a new dev handler
func NewDevHandler(
	store services.StoreServiceInterface,
	generator services.SeedGeneratorInterface,
) *DevHandler {
	return &DevHandler{
		store:     store,
		generator: generator,
	}
}

// SeedDemoData fills the store with generated demo transactions
// @Summary Seed demo data
// @Description Generate realistic demo transactions (development only)
// @Tags Dev
// @Produce json
// @Param count query int false "Number of transactions" default(25)
// @Success 200 {object} handlers.SuccessResponse "Seed applied"
// @Failure 403 {object} errors.ErrorResponse "SHARE_003 - Shared view is read only"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/dev/seed [post]
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	count := getIntParam(c, "count", defaultSeedCount)
	if count <= 0 {
		count = defaultSeedCount
	}

	transactions := h.generator.GenerateTransactions(count)
	for i := range transactions {
		if err := h.store.Add(&transactions[i]); err != nil {
			if errors.Is(err, services.ErrReadOnlyView) {
				return SendError(c, apperrors.ShareReadOnlyView)
			}
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "demo data seeded",
		Meta:    map[string]int{"transactions": count},
	})
}
