package handlers

import (
	"errors"
	"net/http"

	"money-monitor/internal/dto"
	apperrors "money-monitor/internal/errors"
	"money-monitor/internal/models"
	"money-monitor/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler generates statement reports
type ReportHandler struct {
	store   services.StoreServiceInterface
	balance services.BalanceServiceInterface
	report  services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	store services.StoreServiceInterface,
	balance services.BalanceServiceInterface,
	report services.ReportServiceInterface,
) *ReportHandler {
	return &ReportHandler{
		store:   store,
		balance: balance,
		report:  report,
	}
}

// GetReport returns the JSON report for a timeframe
// @Summary Generate report
// @Description Statement rows, summary totals and the current balance snapshot
// @Tags Reports
// @Produce json
// @Param timeframe query string false "Report window" Enums(all, 7d, 30d, month, custom) default(all)
// @Param start query string false "Custom window start (YYYY-MM-DD)"
// @Param end query string false "Custom window end (YYYY-MM-DD)"
// @Success 200 {object} models.Report "Generated report"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid timeframe or bounds"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/report [get]
func (h *ReportHandler) GetReport(c echo.Context) error {
	report, err := h.buildReport(c)
	if err != nil {
		return err
	}
	if report == nil {
		return nil
	}

	return c.JSON(http.StatusOK, report)
}

// GetStatement returns the printable plain-text statement
// @Summary Printable statement
// @Description Plain-text statement with balance header and aligned rows
// @Tags Reports
// @Produce plain
// @Param timeframe query string false "Report window" Enums(all, 7d, 30d, month, custom) default(all)
// @Param start query string false "Custom window start (YYYY-MM-DD)"
// @Param end query string false "Custom window end (YYYY-MM-DD)"
// @Success 200 {string} string "Rendered statement"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid timeframe or bounds"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/report/statement [get]
func (h *ReportHandler) GetStatement(c echo.Context) error {
	report, err := h.buildReport(c)
	if err != nil {
		return err
	}
	if report == nil {
		return nil
	}

	return c.String(http.StatusOK, h.report.RenderStatement(report))
}

// buildReport binds the query, assembles the snapshot and generates the
// report. On a handled error the response is already written and a nil
// report is returned.
func (h *ReportHandler) buildReport(c echo.Context) (*models.Report, error) {
	var query dto.ReportQuery
	if err := c.Bind(&query); err != nil {
		return nil, SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return nil, err
	}

	if query.Timeframe == "" {
		query.Timeframe = models.TimeframeAll
	}

	snapshot, err := h.store.Snapshot()
	if err != nil {
		return nil, SendSystemError(c, err)
	}

	starting, err := h.store.StartingBalances()
	if err != nil {
		return nil, SendSystemError(c, err)
	}

	balances := h.balance.ComputeBalances(snapshot, starting)

	report, err := h.report.BuildReport(snapshot, models.Timeframe{
		Preset: query.Timeframe,
		Start:  query.Start,
		End:    query.End,
	}, balances)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTimeframe) || errors.Is(err, services.ErrInvalidCustomDate) {
			return nil, SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails(err.Error()))
		}
		return nil, SendSystemError(c, err)
	}

	return report, nil
}
