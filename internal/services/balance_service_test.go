package services

import (
	"math/rand"
	"testing"

	"money-monitor/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BalanceServiceTestSuite defines the test suite for BalanceServiceInterface
type BalanceServiceTestSuite struct {
	suite.Suite
	service BalanceServiceInterface
}

// SetupTest runs before each test
func (s *BalanceServiceTestSuite) SetupTest() {
	s.service = NewBalanceService()
}

// TestBalanceServiceSuite runs the test suite
func TestBalanceServiceSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}

func (s *BalanceServiceTestSuite) TestComputeBalances_EmptyList_ReturnsStartingUnchanged() {
	starting := models.StartingBalances{
		models.AccountChecking: decimal.NewFromFloat(42.50),
		models.AccountSavings:  decimal.NewFromFloat(7.25),
	}

	balances := s.service.ComputeBalances(nil, starting)

	s.True(balances.Checking.Equal(decimal.NewFromFloat(42.50)))
	s.True(balances.Savings.Equal(decimal.NewFromFloat(7.25)))
}

func (s *BalanceServiceTestSuite) TestComputeBalances_DepositThenWithdrawal() {
	transactions := []models.Transaction{
		{Type: models.TransactionTypeDeposit, Account: models.AccountChecking, Amount: decimal.NewFromFloat(25.00)},
		{Type: models.TransactionTypeWithdrawal, Account: models.AccountChecking, Amount: decimal.NewFromFloat(10.00)},
	}

	balances := s.service.ComputeBalances(transactions, models.StartingBalances{})

	s.Equal("15.00", balances.Checking.StringFixed(2))
	s.Equal("0.00", balances.Savings.StringFixed(2))
	s.Equal("15.00", balances.Total().StringFixed(2))
}

func (s *BalanceServiceTestSuite) TestComputeBalances_PermutationInvariant() {
	transactions := []models.Transaction{
		{Type: models.TransactionTypeDeposit, Account: models.AccountChecking, Amount: decimal.NewFromFloat(100.00)},
		{Type: models.TransactionTypeWithdrawal, Account: models.AccountChecking, Amount: decimal.NewFromFloat(33.33)},
		{Type: models.TransactionTypeDeposit, Account: models.AccountSavings, Amount: decimal.NewFromFloat(50.00)},
		{Type: models.TransactionTypeWithdrawal, Account: models.AccountSavings, Amount: decimal.NewFromFloat(12.01)},
		{Type: models.TransactionTypeDeposit, Account: models.AccountChecking, Amount: decimal.NewFromFloat(0.99)},
	}

	expected := s.service.ComputeBalances(transactions, models.StartingBalances{})

	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 10; round++ {
		shuffled := make([]models.Transaction, len(transactions))
		copy(shuffled, transactions)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		balances := s.service.ComputeBalances(shuffled, models.StartingBalances{})
		s.True(balances.Checking.Equal(expected.Checking))
		s.True(balances.Savings.Equal(expected.Savings))
	}
}

func (s *BalanceServiceTestSuite) TestComputeBalances_StartingOffsetIsAdditive() {
	starting := models.StartingBalances{
		models.AccountSavings: decimal.NewFromFloat(20.00),
	}
	transactions := []models.Transaction{
		{Type: models.TransactionTypeDeposit, Account: models.AccountSavings, Amount: decimal.NewFromFloat(5.00)},
	}

	balances := s.service.ComputeBalances(transactions, starting)

	s.Equal("25.00", balances.Savings.StringFixed(2))
}

func (s *BalanceServiceTestSuite) TestRunningBalanceSeries_CumulativePerDay() {
	transactions := []models.Transaction{
		{Date: "2026-08-03", Type: models.TransactionTypeWithdrawal, Account: models.AccountSavings, Amount: decimal.NewFromFloat(5.00)},
		{Date: "2026-08-01", Type: models.TransactionTypeDeposit, Account: models.AccountSavings, Amount: decimal.NewFromFloat(10.00)},
		{Date: "2026-08-01", Type: models.TransactionTypeDeposit, Account: models.AccountSavings, Amount: decimal.NewFromFloat(2.00)},
		{Date: "2026-08-02", Type: models.TransactionTypeDeposit, Account: models.AccountChecking, Amount: decimal.NewFromFloat(99.00)},
	}

	series := s.service.RunningBalanceSeries(transactions, models.AccountSavings, decimal.Zero)

	s.Require().Len(series, 2)
	s.Equal("2026-08-01", series[0].Date)
	s.Equal("12.00", series[0].Balance.StringFixed(2))
	s.Equal("2026-08-03", series[1].Date)
	s.Equal("7.00", series[1].Balance.StringFixed(2))
}

func (s *BalanceServiceTestSuite) TestRunningBalanceSeries_StartsFromOffset() {
	transactions := []models.Transaction{
		{Date: "2026-08-01", Type: models.TransactionTypeDeposit, Account: models.AccountSavings, Amount: decimal.NewFromFloat(1.00)},
	}

	series := s.service.RunningBalanceSeries(transactions, models.AccountSavings, decimal.NewFromFloat(9.00))

	s.Require().Len(series, 1)
	s.Equal("10.00", series[0].Balance.StringFixed(2))
}

func (s *BalanceServiceTestSuite) TestRunningBalanceSeries_EmptyInput() {
	series := s.service.RunningBalanceSeries(nil, models.AccountSavings, decimal.Zero)

	s.Empty(series)
}
