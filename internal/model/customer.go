package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer carries a signed store-credit balance. Credit has no floor; a
// negative balance means the customer owes the store.
type Customer struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Credit         decimal.Decimal `json:"credit"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
	CreatedAt      time.Time       `json:"createdAt"`
}
