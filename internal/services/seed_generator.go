package services

import (
	"math/rand"
	"time"

	"money-monitor/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

type seedGenerator struct {
	rng *rand.Rand
}

const (
	seedHistoryDays  = 60
	seedMinAmount    = 1.0
	seedMaxWithdraw  = 60.0
	seedMaxDeposit   = 150.0
	seedDepositRatio = 0.4
)

// depositPool pairs a category with comment templates for money coming in
var depositPool = map[string][]string{
	"Allowance":    {"weekly allowance", "monthly allowance"},
	"Chores":       {"mowed the lawn", "washed the car", "walked the dog", "cleaned the garage"},
	"Gifts":        {"birthday money", "holiday gift", "gift from grandma"},
	"Savings Goal": {"moved money to savings", "savings top-up"},
}

// withdrawalPool pairs a category with comment templates for money going out
var withdrawalPool = map[string][]string{
	"Food":          {"pizza with friends", "school lunch", "ice cream", "snacks"},
	"Games":         {"new game", "in-game purchase", "game pass renewal"},
	"Entertainment": {"movie tickets", "arcade", "streaming subscription"},
	"Gifts":         {"present for a friend", "mother's day gift"},
	"Other":         {"bus fare", "school supplies", "misc"},
}

// NewSeedGenerator creates a demo data generator
func NewSeedGenerator() SeedGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &seedGenerator{
		rng: rand.New(source),
	}
}

// GenerateTransactions produces count realistic transactions spread over
// the recent past, skewed toward withdrawals the way a student's ledger
// tends to look.
func (g *seedGenerator) GenerateTransactions(count int) []models.Transaction {
	transactions := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		date := time.Now().AddDate(0, 0, -g.rng.Intn(seedHistoryDays))

		var transaction models.Transaction
		if g.rng.Float64() < seedDepositRatio {
			category, comment := pickFromPool(g.rng, depositPool)
			transaction = models.Transaction{
				Date:     date.Format(models.DateLayout),
				Type:     models.TransactionTypeDeposit,
				Amount:   randomAmount(seedMinAmount, seedMaxDeposit),
				Category: category,
				Comment:  comment,
			}
		} else {
			category, comment := pickFromPool(g.rng, withdrawalPool)
			transaction = models.Transaction{
				Date:     date.Format(models.DateLayout),
				Type:     models.TransactionTypeWithdrawal,
				Amount:   randomAmount(seedMinAmount, seedMaxWithdraw),
				Category: category,
				Comment:  comment,
			}
		}

		transaction.Account = models.AccountChecking
		// Savings-goal money lands in the savings account.
		if transaction.Category == "Savings Goal" || g.rng.Float64() < 0.2 {
			transaction.Account = models.AccountSavings
		}

		transactions = append(transactions, transaction)
	}

	return transactions
}

func pickFromPool(rng *rand.Rand, pool map[string][]string) (string, string) {
	categories := make([]string, 0, len(pool))
	for category := range pool {
		categories = append(categories, category)
	}
	category := categories[rng.Intn(len(categories))]
	comments := pool[category]
	return category, comments[rng.Intn(len(comments))]
}

func randomAmount(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(gofakeit.Price(min, max)).Round(2)
}
