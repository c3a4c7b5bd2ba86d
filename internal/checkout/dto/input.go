package dto

import (
	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/shopspring/decimal"
)

type CreateTransactionInput struct {
	CustomerID      string
	Items           []model.LineItem
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
	Cash            decimal.Decimal
	CreditUsed      decimal.Decimal
	NewCredit       decimal.Decimal
	Type            string // defaults to sale
	ServiceTicketID string
}
