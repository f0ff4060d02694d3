package dto

import "money-monitor/internal/models"

// SetStartingBalanceRequest sets one account's starting offset
type SetStartingBalanceRequest struct {
	Account string  `json:"account" validate:"required,account_type"`
	Amount  float64 `json:"amount"`
}

// StartingBalancesResponse lists the configured offsets per account
type StartingBalancesResponse struct {
	Balances map[string]string `json:"balances"`
}

// CreateCategoryRequest adds a quick-pick label
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// CategoriesResponse lists the quick-pick labels in creation order
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// DashboardResponse bundles balances with the savings chart series
type DashboardResponse struct {
	Balances         BalancesPayload     `json:"balances"`
	SavingsChart     []models.ChartPoint `json:"savings_chart"`
	TransactionCount int                 `json:"transaction_count"`
	ReadOnly         bool                `json:"read_only"`
}

// BalancesPayload renders balances with fixed two-decimal strings
type BalancesPayload struct {
	Checking string `json:"checking"`
	Savings  string `json:"savings"`
	Total    string `json:"total"`
}
