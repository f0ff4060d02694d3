package repositories

import (
	"testing"

	"money-monitor/internal/database"
	"money-monitor/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// StartingBalanceRepositorySuite defines the test suite for StartingBalanceRepository
type StartingBalanceRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo StartingBalanceRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *StartingBalanceRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewStartingBalanceRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *StartingBalanceRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestStartingBalanceRepositorySuite runs the test suite
func TestStartingBalanceRepositorySuite(t *testing.T) {
	suite.Run(t, new(StartingBalanceRepositorySuite))
}

func (s *StartingBalanceRepositorySuite) TestGetAll_DefaultsToZero() {
	balances, err := s.repo.GetAll()

	s.NoError(err)
	s.True(balances.Get(models.AccountChecking).IsZero())
	s.True(balances.Get(models.AccountSavings).IsZero())
}

func (s *StartingBalanceRepositorySuite) TestSet_ThenGet() {
	err := s.repo.Set(models.AccountChecking, decimal.NewFromFloat(42.50))
	s.Require().NoError(err)

	balances, err := s.repo.GetAll()
	s.NoError(err)
	s.Equal("42.50", balances.Get(models.AccountChecking).StringFixed(2))
	s.True(balances.Get(models.AccountSavings).IsZero())
}

func (s *StartingBalanceRepositorySuite) TestSet_Upserts() {
	s.Require().NoError(s.repo.Set(models.AccountSavings, decimal.NewFromFloat(10)))
	s.Require().NoError(s.repo.Set(models.AccountSavings, decimal.NewFromFloat(25)))

	balances, err := s.repo.GetAll()
	s.NoError(err)
	s.Equal("25.00", balances.Get(models.AccountSavings).StringFixed(2))
}
