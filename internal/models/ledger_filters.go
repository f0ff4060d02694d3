package models

// FilterAll is the pass-through value for the type and account filters.
const FilterAll = "all"

// LedgerFilters narrows the ledger view. Zero values mean no filtering.
type LedgerFilters struct {
	Search  string
	Type    string
	Account string
}

// MatchesType reports whether a transaction type passes the type filter
func (f LedgerFilters) MatchesType(transactionType string) bool {
	return f.Type == "" || f.Type == FilterAll || f.Type == transactionType
}

// MatchesAccount reports whether an account passes the account filter
func (f LedgerFilters) MatchesAccount(account string) bool {
	return f.Account == "" || f.Account == FilterAll || f.Account == account
}
