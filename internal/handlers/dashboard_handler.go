package handlers

import (
	"net/http"

	"money-monitor/internal/dto"
	"money-monitor/internal/models"
	"money-monitor/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves balances and the savings chart
type DashboardHandler struct {
	store   services.StoreServiceInterface
	balance services.BalanceServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	store services.StoreServiceInterface,
	balance services.BalanceServiceInterface,
) *DashboardHandler {
	return &DashboardHandler{
		store:   store,
		balance: balance,
	}
}

// GetBalances returns the per-account and total balances
// @Summary Get balances
// @Description Current balance per account plus the combined total
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.BalancesPayload "Balances"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/balances [get]
func (h *DashboardHandler) GetBalances(c echo.Context) error {
	balances, err := h.currentBalances()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, renderBalances(balances))
}

// GetDashboard returns balances plus the savings growth series
// @Summary Get dashboard
// @Description Balances, transaction count and the cumulative savings chart
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse "Dashboard payload"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	snapshot, err := h.store.Snapshot()
	if err != nil {
		return SendSystemError(c, err)
	}

	starting, err := h.store.StartingBalances()
	if err != nil {
		return SendSystemError(c, err)
	}

	balances := h.balance.ComputeBalances(snapshot, starting)
	series := h.balance.RunningBalanceSeries(snapshot, models.AccountSavings, starting.Get(models.AccountSavings))

	return c.JSON(http.StatusOK, dto.DashboardResponse{
		Balances:         renderBalances(balances),
		SavingsChart:     series,
		TransactionCount: len(snapshot),
		ReadOnly:         h.store.IsSharedView(),
	})
}

func (h *DashboardHandler) currentBalances() (models.Balances, error) {
	snapshot, err := h.store.Snapshot()
	if err != nil {
		return models.Balances{}, err
	}

	starting, err := h.store.StartingBalances()
	if err != nil {
		return models.Balances{}, err
	}

	return h.balance.ComputeBalances(snapshot, starting), nil
}

func renderBalances(balances models.Balances) dto.BalancesPayload {
	return dto.BalancesPayload{
		Checking: balances.Checking.StringFixed(2),
		Savings:  balances.Savings.StringFixed(2),
		Total:    balances.Total().StringFixed(2),
	}
}
