package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"money-monitor/internal/models"
	"money-monitor/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrReadOnlyView = errors.New("the shared view is read only")
)

type storeService struct {
	transactionRepo     repositories.TransactionRepositoryInterface
	categoryRepo        repositories.CategoryRepositoryInterface
	startingBalanceRepo repositories.StartingBalanceRepositoryInterface
	codec               ShareCodecInterface
	metrics             MetricsRecorderInterface
	logger              *slog.Logger

	mu     sync.RWMutex
	shared []models.Transaction
	viewed bool
}

func NewStoreService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	startingBalanceRepo repositories.StartingBalanceRepositoryInterface,
	codec ShareCodecInterface,
	metrics MetricsRecorderInterface,
) StoreServiceInterface {
	return &storeService{
		transactionRepo:     transactionRepo,
		categoryRepo:        categoryRepo,
		startingBalanceRepo: startingBalanceRepo,
		codec:               codec,
		metrics:             metrics,
		logger:              slog.Default(),
	}
}

// Snapshot returns the active collection in insertion order. In shared
// view this is the decoded set, not the persisted one.
func (s *storeService) Snapshot() ([]models.Transaction, error) {
	s.mu.RLock()
	if s.viewed {
		snapshot := make([]models.Transaction, len(s.shared))
		copy(snapshot, s.shared)
		s.mu.RUnlock()
		return snapshot, nil
	}
	s.mu.RUnlock()

	return s.transactionRepo.GetAll()
}

// Recent returns the last limit records by insertion order, oldest first
func (s *storeService) Recent(limit int) ([]models.Transaction, error) {
	s.mu.RLock()
	if s.viewed {
		shared := s.shared
		if len(shared) > limit {
			shared = shared[len(shared)-limit:]
		}
		snapshot := make([]models.Transaction, len(shared))
		copy(snapshot, shared)
		s.mu.RUnlock()
		return snapshot, nil
	}
	s.mu.RUnlock()

	return s.transactionRepo.GetRecent(limit)
}

func (s *storeService) Add(transaction *models.Transaction) error {
	if err := s.guardWritable(); err != nil {
		return err
	}

	if err := s.normalizeAndValidate(transaction); err != nil {
		s.metrics.IncrementCounter("transaction.mutation", map[string]string{
			"operation": "add", "status": "rejected",
		})
		return err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	if err := s.categoryRepo.Ensure(transaction.Category); err != nil {
		s.logger.Warn("failed to register category for new transaction",
			slog.String("category", transaction.Category),
			slog.String("error", err.Error()),
		)
	}

	s.metrics.IncrementCounter("transaction.mutation", map[string]string{
		"operation": "add", "status": "success",
	})
	s.logger.Info("transaction added",
		slog.String("transaction_id", transaction.ID.String()),
		slog.String("type", transaction.Type),
		slog.String("account", transaction.Account),
		slog.String("amount", transaction.Amount.StringFixed(2)),
	)

	return nil
}

// Update replaces the record with a matching id. An unknown id is not an
// error; the record is appended instead, so retried updates converge.
func (s *storeService) Update(transaction *models.Transaction) error {
	if err := s.guardWritable(); err != nil {
		return err
	}

	if err := s.normalizeAndValidate(transaction); err != nil {
		s.metrics.IncrementCounter("transaction.mutation", map[string]string{
			"operation": "update", "status": "rejected",
		})
		return err
	}

	err := s.transactionRepo.Update(transaction)
	if errors.Is(err, repositories.ErrTransactionNotFound) {
		s.logger.Info("update target absent, inserting instead",
			slog.String("transaction_id", transaction.ID.String()),
		)
		err = s.transactionRepo.Create(transaction)
	}
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	if err := s.categoryRepo.Ensure(transaction.Category); err != nil {
		s.logger.Warn("failed to register category for updated transaction",
			slog.String("category", transaction.Category),
			slog.String("error", err.Error()),
		)
	}

	s.metrics.IncrementCounter("transaction.mutation", map[string]string{
		"operation": "update", "status": "success",
	})

	return nil
}

// Remove deletes by id. Removing an absent id succeeds; repeated removal
// of the same id converges on the same state.
func (s *storeService) Remove(id uuid.UUID) error {
	if err := s.guardWritable(); err != nil {
		return err
	}

	if err := s.transactionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to remove transaction: %w", err)
	}

	s.metrics.IncrementCounter("transaction.mutation", map[string]string{
		"operation": "remove", "status": "success",
	})
	s.logger.Info("transaction removed", slog.String("transaction_id", id.String()))

	return nil
}

// ReplaceAll swaps the whole collection for the given one and merges the
// extra category labels. All records are validated up front; on any
// malformed record nothing is mutated.
func (s *storeService) ReplaceAll(transactions []models.Transaction, categories []string) error {
	if err := s.guardWritable(); err != nil {
		return err
	}

	for i := range transactions {
		if err := s.normalizeAndValidate(&transactions[i]); err != nil {
			s.metrics.IncrementCounter("backup.import", map[string]string{"status": "rejected"})
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	if err := s.transactionRepo.ReplaceAll(transactions); err != nil {
		s.metrics.IncrementCounter("backup.import", map[string]string{"status": "failed"})
		return fmt.Errorf("failed to replace transactions: %w", err)
	}

	seen := make(map[string]struct{}, len(categories))
	for _, name := range categories {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		if err := s.categoryRepo.Ensure(name); err != nil {
			s.logger.Warn("failed to merge imported category",
				slog.String("category", name),
				slog.String("error", err.Error()),
			)
		}
	}
	for i := range transactions {
		if _, ok := seen[transactions[i].Category]; ok {
			continue
		}
		seen[transactions[i].Category] = struct{}{}
		if err := s.categoryRepo.Ensure(transactions[i].Category); err != nil {
			s.logger.Warn("failed to merge category from imported transaction",
				slog.String("category", transactions[i].Category),
				slog.String("error", err.Error()),
			)
		}
	}

	s.metrics.IncrementCounter("backup.import", map[string]string{"status": "success"})
	s.logger.Info("transaction collection replaced",
		slog.Int("transaction_count", len(transactions)),
		slog.Int("category_count", len(categories)),
	)

	return nil
}

func (s *storeService) Categories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *storeService) AddCategory(name string) error {
	if err := s.guardWritable(); err != nil {
		return err
	}
	return s.categoryRepo.Ensure(name)
}

func (s *storeService) RemoveCategory(name string) error {
	if err := s.guardWritable(); err != nil {
		return err
	}
	return s.categoryRepo.Delete(name)
}

func (s *storeService) StartingBalances() (models.StartingBalances, error) {
	return s.startingBalanceRepo.GetAll()
}

func (s *storeService) SetStartingBalance(account string, amount decimal.Decimal) error {
	if err := s.guardWritable(); err != nil {
		return err
	}
	if !models.IsValidAccount(account) {
		return models.ErrInvalidAccount
	}
	return s.startingBalanceRepo.Set(account, amount)
}

// EnterSharedView decodes the token and swaps the active snapshot for the
// decoded set. Persisted data stays untouched; every mutation fails with
// ErrReadOnlyView until ExitSharedView.
func (s *storeService) EnterSharedView(token string) error {
	decoded, err := s.codec.Decode(token)
	if err != nil {
		s.metrics.IncrementCounter("share.decode.failed", nil)
		return err
	}

	s.mu.Lock()
	s.shared = decoded
	s.viewed = true
	s.mu.Unlock()

	s.metrics.IncrementCounter("share.view.entered", nil)
	s.logger.Info("entered shared read-only view",
		slog.Int("transaction_count", len(decoded)),
	)

	return nil
}

// ExitSharedView restores the persisted collection as the active snapshot
func (s *storeService) ExitSharedView() {
	s.mu.Lock()
	s.shared = nil
	s.viewed = false
	s.mu.Unlock()

	s.logger.Info("exited shared read-only view")
}

func (s *storeService) IsSharedView() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewed
}

func (s *storeService) guardWritable() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.viewed {
		return ErrReadOnlyView
	}
	return nil
}

func (s *storeService) normalizeAndValidate(transaction *models.Transaction) error {
	transaction.Comment = strings.TrimSpace(transaction.Comment)
	transaction.Category = strings.TrimSpace(transaction.Category)
	if transaction.Category == "" {
		transaction.Category = "Other"
	}
	if transaction.Date == "" {
		transaction.Date = time.Now().Format(models.DateLayout)
	}
	return transaction.Validate()
}
