package services

import (
	"context"
	"time"

	"money-monitor/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StoreServiceInterface is the single mutation surface over the
// transaction collection. Reads return defensive copies; callers never
// observe shared backing slices.
type StoreServiceInterface interface {
	// Snapshot returns the active collection in insertion order
	Snapshot() ([]models.Transaction, error)
	// Recent returns the last limit records by insertion order, oldest first
	Recent(limit int) ([]models.Transaction, error)
	Add(transaction *models.Transaction) error
	// Update replaces the record with a matching id, inserting when absent
	Update(transaction *models.Transaction) error
	// Remove deletes by id and succeeds on absent ids
	Remove(id uuid.UUID) error
	// ReplaceAll swaps the whole collection and merges extra category labels
	ReplaceAll(transactions []models.Transaction, categories []string) error

	Categories() ([]models.Category, error)
	AddCategory(name string) error
	RemoveCategory(name string) error

	StartingBalances() (models.StartingBalances, error)
	SetStartingBalance(account string, amount decimal.Decimal) error

	// EnterSharedView swaps the active snapshot for the records decoded
	// from token. While active the store is read only and persisted data
	// is untouched.
	EnterSharedView(token string) error
	ExitSharedView()
	IsSharedView() bool
}

// BalanceServiceInterface aggregates balances from a transaction snapshot
type BalanceServiceInterface interface {
	// ComputeBalances folds signed amounts per account on top of the
	// starting offsets. Pure; the result does not depend on input order.
	ComputeBalances(transactions []models.Transaction, starting models.StartingBalances) models.Balances
	// RunningBalanceSeries returns the cumulative per-day balance for one
	// account, dates ascending, for charting.
	RunningBalanceSeries(transactions []models.Transaction, account string, startingBalance decimal.Decimal) []models.ChartPoint
}

// LedgerServiceInterface produces the filtered, sorted ledger view
type LedgerServiceInterface interface {
	// FilterAndSort applies search and enum filters, then sorts by date
	// descending with a stable sort. The input slice is never mutated.
	FilterAndSort(transactions []models.Transaction, filters models.LedgerFilters) []models.Transaction
}

// ReportServiceInterface generates statement reports over a timeframe
type ReportServiceInterface interface {
	BuildReport(transactions []models.Transaction, timeframe models.Timeframe, balances models.Balances) (*models.Report, error)
	// RenderStatement formats a report as a printable plain-text table
	RenderStatement(report *models.Report) string
}

// ShareCodecInterface converts transaction slices to and from opaque
// share tokens
type ShareCodecInterface interface {
	// Encode serializes the last limit records by insertion order
	Encode(transactions []models.Transaction, limit int) (string, error)
	// Decode is the inverse of Encode. Malformed tokens return
	// ErrMalformedShareToken; decoded records are validated.
	Decode(token string) ([]models.Transaction, error)
}

// InsightServiceInterface produces a short coaching message from recent
// activity. It never fails: any upstream problem degrades to a canned
// message.
type InsightServiceInterface interface {
	GenerateInsight(ctx context.Context, transactions []models.Transaction) string
}

// SeedGeneratorInterface creates realistic demo transactions
type SeedGeneratorInterface interface {
	GenerateTransactions(count int) []models.Transaction
}

// MetricsRecorderInterface abstracts metric collection
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
