package dto

import (
	"money-monitor/internal/models"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for adding a transaction
type CreateTransactionRequest struct {
	Date     string  `json:"date" validate:"omitempty,iso_date"`
	Amount   float64 `json:"amount" validate:"required,positive_amount"`
	Type     string  `json:"type" validate:"required,transaction_type"`
	Account  string  `json:"account" validate:"required,account_type"`
	Category string  `json:"category"`
	Comment  string  `json:"comment" validate:"required"`
}

// ToModel converts the request into a transaction model
func (r *CreateTransactionRequest) ToModel() *models.Transaction {
	return &models.Transaction{
		Date:     r.Date,
		Amount:   decimal.NewFromFloat(r.Amount),
		Type:     r.Type,
		Account:  r.Account,
		Category: r.Category,
		Comment:  r.Comment,
	}
}

// UpdateTransactionRequest is the payload for replacing a transaction.
// The id comes from the path, not the body.
type UpdateTransactionRequest struct {
	Date     string  `json:"date" validate:"required,iso_date"`
	Amount   float64 `json:"amount" validate:"required,positive_amount"`
	Type     string  `json:"type" validate:"required,transaction_type"`
	Account  string  `json:"account" validate:"required,account_type"`
	Category string  `json:"category"`
	Comment  string  `json:"comment" validate:"required"`
}

// ToModel converts the request into a transaction model
func (r *UpdateTransactionRequest) ToModel() *models.Transaction {
	return &models.Transaction{
		Date:     r.Date,
		Amount:   decimal.NewFromFloat(r.Amount),
		Type:     r.Type,
		Account:  r.Account,
		Category: r.Category,
		Comment:  r.Comment,
	}
}

// LedgerQuery contains filtering options for the ledger view
type LedgerQuery struct {
	Search  string `query:"search"`
	Type    string `query:"type"`
	Account string `query:"account"`
}

// LedgerResponse is the ledger view payload
type LedgerResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
	ReadOnly     bool                 `json:"read_only"`
}
