package services

import (
	"sort"
	"strings"

	"money-monitor/internal/models"
)

type ledgerService struct{}

func NewLedgerService() LedgerServiceInterface {
	return &ledgerService{}
}

// FilterAndSort applies the ledger filters and sorts the survivors by
// date descending. The sort is stable, so records sharing a date keep
// their insertion order. The input slice is never mutated.
func (s *ledgerService) FilterAndSort(transactions []models.Transaction, filters models.LedgerFilters) []models.Transaction {
	search := strings.ToLower(strings.TrimSpace(filters.Search))

	filtered := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		if !filters.MatchesType(transactions[i].Type) {
			continue
		}
		if !filters.MatchesAccount(transactions[i].Account) {
			continue
		}
		if search != "" && !matchesSearch(&transactions[i], search) {
			continue
		}
		filtered = append(filtered, transactions[i])
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})

	return filtered
}

// matchesSearch reports whether the lowercased needle occurs in the
// comment or the category.
func matchesSearch(transaction *models.Transaction, needle string) bool {
	return strings.Contains(strings.ToLower(transaction.Comment), needle) ||
		strings.Contains(strings.ToLower(transaction.Category), needle)
}
