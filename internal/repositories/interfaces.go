package repositories

import (
	"money-monitor/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRepositoryInterface defines persistence operations for the
// transaction collection. The collection is small (a few hundred records);
// reads return the full ordered set and views derive everything in memory.
type TransactionRepositoryInterface interface {
	GetAll() ([]models.Transaction, error)
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetRecent(limit int) ([]models.Transaction, error)
	Create(transaction *models.Transaction) error
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	ReplaceAll(transactions []models.Transaction) error
	Count() (int64, error)
}

// CategoryRepositoryInterface defines persistence operations for the
// quick-pick category list.
type CategoryRepositoryInterface interface {
	GetAll() ([]models.Category, error)
	Ensure(name string) error
	Delete(name string) error
}

// StartingBalanceRepositoryInterface defines persistence operations for
// the per-account starting offsets.
type StartingBalanceRepositoryInterface interface {
	GetAll() (models.StartingBalances, error)
	Set(account string, amount decimal.Decimal) error
}
