package dto

type TicketFilters struct {
	CustomerID string
	Status     string // pending or completed
}
