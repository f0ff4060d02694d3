package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeDeposit    = "Deposit"
	TransactionTypeWithdrawal = "Withdrawal"

	AccountChecking = "Checking"
	AccountSavings  = "Savings"

	// DateLayout is the calendar-date format used everywhere. Dates carry
	// no time component; lexicographic order equals chronological order.
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAccount         = errors.New("invalid account")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrInvalidDate            = errors.New("date must be a valid YYYY-MM-DD calendar date")
	ErrCommentRequired        = errors.New("transaction comment is required")
)

// Transaction is the sole persisted entity: a single deposit or withdrawal
// against one of the named accounts. The amount is always positive; the
// direction comes from Type.
type Transaction struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date     string          `gorm:"type:varchar(10);not null;index" json:"date"`
	Amount   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type     string          `gorm:"type:varchar(20);not null" json:"type"`
	Account  string          `gorm:"type:varchar(20);not null;index" json:"account"`
	Category string          `gorm:"type:varchar(50);not null" json:"category"`
	Comment  string          `gorm:"type:text;not null" json:"comment"`

	// Position preserves insertion order across reloads. Views always
	// re-sort by date, but the share codec slices by original order.
	Position  int64     `gorm:"not null;index" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.Date == "" {
		t.Date = now.Format(DateLayout)
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidAccount(t.Account) {
		return ErrInvalidAccount
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !IsValidDate(t.Date) {
		return ErrInvalidDate
	}

	if strings.TrimSpace(t.Comment) == "" {
		return ErrCommentRequired
	}

	return nil
}

// SignedAmount returns the amount with the sign implied by the type:
// positive for deposits, negative for withdrawals.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeDeposit {
		return t.Amount
	}
	return t.Amount.Neg()
}

// IsDeposit returns true if the transaction adds money to its account
func (t *Transaction) IsDeposit() bool {
	return t.Type == TransactionTypeDeposit
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeDeposit, TransactionTypeWithdrawal:
		return true
	default:
		return false
	}
}

// IsValidAccount checks if the account label is one of the known accounts
func IsValidAccount(account string) bool {
	switch account {
	case AccountChecking, AccountSavings:
		return true
	default:
		return false
	}
}

// IsValidDate checks that a date string is a real calendar date in the
// canonical YYYY-MM-DD layout.
func IsValidDate(date string) bool {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return false
	}
	return parsed.Format(DateLayout) == date
}

// AllAccounts returns the known account labels
func AllAccounts() []string {
	return []string{AccountChecking, AccountSavings}
}
