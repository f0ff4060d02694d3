package services

import (
	"sort"

	"money-monitor/internal/models"

	"github.com/shopspring/decimal"
)

type balanceService struct{}

func NewBalanceService() BalanceServiceInterface {
	return &balanceService{}
}

// ComputeBalances folds every transaction's signed amount into its
// account, on top of the configured starting offsets. Addition commutes,
// so any permutation of the input yields the same result, and an empty
// input returns the starting offsets unchanged.
func (s *balanceService) ComputeBalances(transactions []models.Transaction, starting models.StartingBalances) models.Balances {
	balances := models.Balances{
		Checking: starting.Get(models.AccountChecking),
		Savings:  starting.Get(models.AccountSavings),
	}

	for i := range transactions {
		signed := transactions[i].SignedAmount()
		switch transactions[i].Account {
		case models.AccountChecking:
			balances.Checking = balances.Checking.Add(signed)
		case models.AccountSavings:
			balances.Savings = balances.Savings.Add(signed)
		}
	}

	return balances
}

// RunningBalanceSeries groups one account's signed amounts by calendar
// date, sorts the dates ascending and accumulates a running balance.
// Each point is the balance at the end of that day.
func (s *balanceService) RunningBalanceSeries(transactions []models.Transaction, account string, startingBalance decimal.Decimal) []models.ChartPoint {
	dailyNet := make(map[string]decimal.Decimal)
	for i := range transactions {
		if transactions[i].Account != account {
			continue
		}
		dailyNet[transactions[i].Date] = dailyNet[transactions[i].Date].Add(transactions[i].SignedAmount())
	}

	dates := make([]string, 0, len(dailyNet))
	for date := range dailyNet {
		dates = append(dates, date)
	}
	// Dates are canonical YYYY-MM-DD, so string order is date order.
	sort.Strings(dates)

	series := make([]models.ChartPoint, 0, len(dates))
	running := startingBalance
	for _, date := range dates {
		running = running.Add(dailyNet[date])
		series = append(series, models.ChartPoint{
			Date:    date,
			Balance: running,
		})
	}

	return series
}
