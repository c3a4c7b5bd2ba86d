package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeSale    = "sale"
	TransactionTypeService = "service"
)

// LineItem is a priced quantity of a product, shared by carts, transactions
// and service tickets. ID references the product collection.
type LineItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Transaction is an append-only log entry; it is never mutated after
// settlement. CreditUsed and NewCredit record the two sides of the credit
// adjustment so the customer's balance change is auditable from the record
// alone.
type Transaction struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	Items           []LineItem      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	Cash            decimal.Decimal `json:"cash"`
	CreditUsed      decimal.Decimal `json:"creditUsed"`
	NewCredit       decimal.Decimal `json:"newCredit"`
	Type            string          `json:"type"`
	ServiceTicketID string          `json:"serviceTicketId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}
