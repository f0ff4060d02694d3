package handlers

import (
	"errors"
	"net/http"

	"money-monitor/internal/dto"
	apperrors "money-monitor/internal/errors"
	"money-monitor/internal/models"
	"money-monitor/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// SettingsHandler manages the starting balance offsets
type SettingsHandler struct {
	store services.StoreServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(store services.StoreServiceInterface) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// GetStartingBalances returns the configured offsets per account
// @Summary Get starting balances
// @Tags Settings
// @Produce json
// @Success 200 {object} dto.StartingBalancesResponse "Starting balances"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/settings/starting-balance [get]
func (h *SettingsHandler) GetStartingBalances(c echo.Context) error {
	starting, err := h.store.StartingBalances()
	if err != nil {
		return SendSystemError(c, err)
	}

	balances := make(map[string]string, len(models.AllAccounts()))
	for _, account := range models.AllAccounts() {
		balances[account] = starting.Get(account).StringFixed(2)
	}

	return c.JSON(http.StatusOK, dto.StartingBalancesResponse{Balances: balances})
}

// SetStartingBalance sets one account's starting offset
// @Summary Set starting balance
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.SetStartingBalanceRequest true "Starting balance payload"
// @Success 200 {object} dto.SetStartingBalanceRequest "Applied offset"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid payload"
// @Failure 403 {object} errors.ErrorResponse "SHARE_003 - Shared view is read only"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/settings/starting-balance [put]
func (h *SettingsHandler) SetStartingBalance(c echo.Context) error {
	var req dto.SetStartingBalanceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.store.SetStartingBalance(req.Account, decimal.NewFromFloat(req.Amount))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReadOnlyView):
			return SendError(c, apperrors.ShareReadOnlyView)
		case errors.Is(err, models.ErrInvalidAccount):
			return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, req)
}
