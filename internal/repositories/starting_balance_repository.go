package repositories

import (
	"fmt"

	"money-monitor/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// startingBalanceRepository implements StartingBalanceRepositoryInterface
type startingBalanceRepository struct {
	db *gorm.DB
}

// NewStartingBalanceRepository creates a new starting balance repository
func NewStartingBalanceRepository(db *gorm.DB) StartingBalanceRepositoryInterface {
	return &startingBalanceRepository{
		db: db,
	}
}

// GetAll retrieves the configured offsets keyed by account
func (r *startingBalanceRepository) GetAll() (models.StartingBalances, error) {
	var rows []models.StartingBalance
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get starting balances: %w", err)
	}

	balances := make(models.StartingBalances, len(rows))
	for _, row := range rows {
		balances[row.Account] = row.Amount
	}
	return balances, nil
}

// Set upserts the offset for one account
func (r *startingBalanceRepository) Set(account string, amount decimal.Decimal) error {
	row := models.StartingBalance{Account: account, Amount: amount}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account"}},
		UpdateAll: true,
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to set starting balance: %w", err)
	}
	return nil
}
