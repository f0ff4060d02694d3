package services

import (
	"testing"

	"money-monitor/internal/models"

	"github.com/stretchr/testify/suite"
)

// SeedGeneratorTestSuite defines the test suite for SeedGeneratorInterface
type SeedGeneratorTestSuite struct {
	suite.Suite
	generator SeedGeneratorInterface
}

// SetupTest runs before each test
func (s *SeedGeneratorTestSuite) SetupTest() {
	s.generator = NewSeedGenerator()
}

// TestSeedGeneratorSuite runs the test suite
func TestSeedGeneratorSuite(t *testing.T) {
	suite.Run(t, new(SeedGeneratorTestSuite))
}

func (s *SeedGeneratorTestSuite) TestGenerateTransactions_CountAndValidity() {
	transactions := s.generator.GenerateTransactions(50)

	s.Require().Len(transactions, 50)
	for i := range transactions {
		s.NoError(transactions[i].Validate())
	}
}

func (s *SeedGeneratorTestSuite) TestGenerateTransactions_ProducesBothDirections() {
	transactions := s.generator.GenerateTransactions(200)

	deposits, withdrawals := 0, 0
	for i := range transactions {
		if transactions[i].IsDeposit() {
			deposits++
		} else {
			withdrawals++
		}
	}

	s.Positive(deposits)
	s.Positive(withdrawals)
}

func (s *SeedGeneratorTestSuite) TestGenerateTransactions_KnownCategoriesOnly() {
	known := make(map[string]struct{}, len(models.DefaultCategories))
	for _, name := range models.DefaultCategories {
		known[name] = struct{}{}
	}

	transactions := s.generator.GenerateTransactions(100)

	for i := range transactions {
		s.Contains(known, transactions[i].Category)
	}
}

func (s *SeedGeneratorTestSuite) TestGenerateTransactions_Zero() {
	s.Empty(s.generator.GenerateTransactions(0))
}
