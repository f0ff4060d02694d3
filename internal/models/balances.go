package models

import (
	"github.com/shopspring/decimal"
)

// Balances is the per-account balance snapshot derived from the current
// transaction collection plus the configured starting offsets.
type Balances struct {
	Checking decimal.Decimal `json:"checking"`
	Savings  decimal.Decimal `json:"savings"`
}

// Total returns the combined balance across all accounts
func (b Balances) Total() decimal.Decimal {
	return b.Checking.Add(b.Savings)
}

// ForAccount returns the balance of a single account, zero for unknown labels
func (b Balances) ForAccount(account string) decimal.Decimal {
	switch account {
	case AccountChecking:
		return b.Checking
	case AccountSavings:
		return b.Savings
	default:
		return decimal.Zero
	}
}

// ChartPoint is one day on the running-balance chart: the cumulative
// balance after all of that day's transactions.
type ChartPoint struct {
	Date    string          `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}
