package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"money-monitor/internal/models"
)

var (
	ErrInvalidTimeframe  = errors.New("invalid report timeframe")
	ErrInvalidCustomDate = errors.New("custom report bounds must be valid YYYY-MM-DD dates")
)

type reportService struct {
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewReportService(metrics MetricsRecorderInterface) ReportServiceInterface {
	return &reportService{
		metrics: metrics,
		logger:  slog.Default(),
	}
}

// BuildReport filters the snapshot to the timeframe's window, sorts the
// rows newest first and aggregates the summary. Relative presets are
// resolved against the clock now, so the same preset produces a moving
// window. The attached balances are the caller's current snapshot, not a
// reconstruction as of the window's end.
func (s *reportService) BuildReport(transactions []models.Transaction, timeframe models.Timeframe, balances models.Balances) (*models.Report, error) {
	startTime := time.Now()

	startDate, endDate, err := s.resolveWindow(timeframe)
	if err != nil {
		return nil, err
	}

	rows := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		if startDate != "" && transactions[i].Date < startDate {
			continue
		}
		if endDate != "" && transactions[i].Date > endDate {
			continue
		}
		rows = append(rows, transactions[i])
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date > rows[j].Date
	})

	summary := models.ReportSummary{}
	for i := range rows {
		if rows[i].IsDeposit() {
			summary.TotalDeposits = summary.TotalDeposits.Add(rows[i].Amount)
			summary.DepositCount++
		} else {
			summary.TotalWithdrawals = summary.TotalWithdrawals.Add(rows[i].Amount)
			summary.WithdrawalCount++
		}
	}
	summary.NetChange = summary.TotalDeposits.Sub(summary.TotalWithdrawals)
	summary.TransactionCount = len(rows)

	report := &models.Report{
		Timeframe:    timeframe,
		StartDate:    startDate,
		EndDate:      endDate,
		Transactions: rows,
		Summary:      summary,
		Balances:     balances,
		GeneratedAt:  time.Now(),
	}

	s.metrics.IncrementCounter("report.generated", map[string]string{
		"timeframe": timeframe.Preset,
	})
	s.metrics.RecordProcessingTime("report.generation", time.Since(startTime))
	s.logger.Info("report generated",
		slog.String("timeframe", timeframe.Preset),
		slog.Int("transaction_count", len(rows)),
	)

	return report, nil
}

// resolveWindow converts a timeframe into inclusive calendar-date bounds.
// An empty bound means unbounded on that side.
func (s *reportService) resolveWindow(timeframe models.Timeframe) (string, string, error) {
	today := time.Now()

	switch timeframe.Preset {
	case models.TimeframeAll:
		return "", "", nil
	case models.TimeframeLast7Days:
		return today.AddDate(0, 0, -7).Format(models.DateLayout), "", nil
	case models.TimeframeLast30Days:
		return today.AddDate(0, 0, -30).Format(models.DateLayout), "", nil
	case models.TimeframeThisMonth:
		firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return firstOfMonth.Format(models.DateLayout), "", nil
	case models.TimeframeCustom:
		if timeframe.Start != "" && !models.IsValidDate(timeframe.Start) {
			return "", "", ErrInvalidCustomDate
		}
		if timeframe.End != "" && !models.IsValidDate(timeframe.End) {
			return "", "", ErrInvalidCustomDate
		}
		return timeframe.Start, timeframe.End, nil
	default:
		return "", "", ErrInvalidTimeframe
	}
}

// RenderStatement formats the report as a printable plain-text statement:
// a balance header, one aligned row per transaction with signed amounts,
// and the summary totals.
func (s *reportService) RenderStatement(report *models.Report) string {
	var b strings.Builder

	b.WriteString("MONEY MONITOR STATEMENT\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Period: %s\n\n", formatPeriod(report)))

	b.WriteString(fmt.Sprintf("Checking balance: $%s\n", report.Balances.Checking.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Savings balance:  $%s\n", report.Balances.Savings.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Total:            $%s\n\n", report.Balances.Total().StringFixed(2)))

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tACCOUNT\tCATEGORY\tCOMMENT\tAMOUNT")
	for i := range report.Transactions {
		t := &report.Transactions[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			t.Date, t.Account, t.Category, t.Comment, formatSigned(t))
	}
	w.Flush()

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Deposits:    %d totalling $%s\n",
		report.Summary.DepositCount, report.Summary.TotalDeposits.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Withdrawals: %d totalling $%s\n",
		report.Summary.WithdrawalCount, report.Summary.TotalWithdrawals.StringFixed(2)))
	b.WriteString(fmt.Sprintf("Net change:  $%s\n", report.Summary.NetChange.StringFixed(2)))

	return b.String()
}

func formatPeriod(report *models.Report) string {
	switch {
	case report.StartDate == "" && report.EndDate == "":
		return "all time"
	case report.EndDate == "":
		return fmt.Sprintf("%s onwards", report.StartDate)
	case report.StartDate == "":
		return fmt.Sprintf("up to %s", report.EndDate)
	default:
		return fmt.Sprintf("%s to %s", report.StartDate, report.EndDate)
	}
}

func formatSigned(t *models.Transaction) string {
	if t.IsDeposit() {
		return "+$" + t.Amount.StringFixed(2)
	}
	return "-$" + t.Amount.StringFixed(2)
}
