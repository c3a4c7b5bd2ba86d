package dto

type TransactionFilters struct {
	CustomerID string
	Type       string // sale or service
}
