package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TimeframeAll        = "all"
	TimeframeLast7Days  = "7d"
	TimeframeLast30Days = "30d"
	TimeframeThisMonth  = "month"
	TimeframeCustom     = "custom"
)

// Timeframe selects the date window of a report. Start and End are only
// consulted for TimeframeCustom and either bound may be empty. The
// relative presets are resolved against the clock at generation time, so
// re-running the same report later yields a different window.
type Timeframe struct {
	Preset string `json:"preset"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

// IsValidTimeframePreset checks if the preset is one of the known values
func IsValidTimeframePreset(preset string) bool {
	switch preset {
	case TimeframeAll, TimeframeLast7Days, TimeframeLast30Days, TimeframeThisMonth, TimeframeCustom:
		return true
	default:
		return false
	}
}

// Report is a statement view over one timeframe: the filtered rows sorted
// newest first, aggregate totals for the window, and the balance snapshot
// valid at generation time. The balance is deliberately the CURRENT
// balance, not a reconstruction as of the window's end.
type Report struct {
	Timeframe    Timeframe     `json:"timeframe"`
	StartDate    string        `json:"start_date,omitempty"`
	EndDate      string        `json:"end_date,omitempty"`
	Transactions []Transaction `json:"transactions"`
	Summary      ReportSummary `json:"summary"`
	Balances     Balances      `json:"balances"`
	GeneratedAt  time.Time     `json:"generated_at"`
}

// ReportSummary provides aggregate information for the report window
type ReportSummary struct {
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	NetChange        decimal.Decimal `json:"net_change"`
	TransactionCount int             `json:"transaction_count"`
	DepositCount     int             `json:"deposit_count"`
	WithdrawalCount  int             `json:"withdrawal_count"`
}
