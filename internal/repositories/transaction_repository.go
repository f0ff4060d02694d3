package repositories

import (
	"errors"
	"fmt"

	"money-monitor/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// GetAll retrieves the full collection in insertion order
func (r *transactionRepository) GetAll() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("position ASC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetRecent retrieves the last limit transactions by insertion order,
// returned oldest-first so the slice mirrors the collection tail.
func (r *transactionRepository) GetRecent(limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("position DESC").Limit(limit).Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}

	// Reverse back to insertion order.
	for i, j := 0, len(transactions)-1; i < j; i, j = i+1, j-1 {
		transactions[i], transactions[j] = transactions[j], transactions[i]
	}

	return transactions, nil
}

// Create appends a transaction at the end of the collection
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		position, err := nextPosition(tx)
		if err != nil {
			return err
		}
		transaction.Position = position

		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return nil
	})
}

// Update replaces the record whose ID matches
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.db.Model(&models.Transaction{ID: transaction.ID}).
		Select("date", "amount", "type", "account", "category", "comment", "updated_at").
		Updates(transaction)

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes the matching record. Deleting an absent id is not an
// error; the operation is idempotent.
func (r *transactionRepository) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.Transaction{ID: id}).Error; err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// ReplaceAll overwrites the whole collection in a single database
// transaction. Positions are reassigned from the slice order.
func (r *transactionRepository) ReplaceAll(transactions []models.Transaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}

		for i := range transactions {
			transactions[i].Position = int64(i + 1)
			if err := tx.Create(&transactions[i]).Error; err != nil {
				return fmt.Errorf("failed to insert transaction %d: %w", i, err)
			}
		}
		return nil
	})
}

// Count returns the collection size
func (r *transactionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func nextPosition(tx *gorm.DB) (int64, error) {
	var maxPosition int64
	if err := tx.Model(&models.Transaction{}).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPosition).Error; err != nil {
		return 0, fmt.Errorf("failed to read max position: %w", err)
	}
	return maxPosition + 1, nil
}
