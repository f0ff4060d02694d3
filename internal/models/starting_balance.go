package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StartingBalance is a manually configured offset predating the earliest
// recorded transaction. One row per account; independent of transactions.
type StartingBalance struct {
	Account   string          `gorm:"type:varchar(20);primary_key" json:"account"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeSave hook for StartingBalance
func (b *StartingBalance) BeforeSave(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	if !IsValidAccount(b.Account) {
		return ErrInvalidAccount
	}
	return nil
}

// TableName returns the table name for StartingBalance
func (b *StartingBalance) TableName() string {
	return "starting_balances"
}

// StartingBalances maps account label to its configured offset. Missing
// accounts default to zero.
type StartingBalances map[string]decimal.Decimal

// Get returns the offset for an account, zero when unset
func (s StartingBalances) Get(account string) decimal.Decimal {
	if amount, ok := s[account]; ok {
		return amount
	}
	return decimal.Zero
}
