package dto

import (
	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/shopspring/decimal"
)

type CreateTicketInput struct {
	CustomerID   string
	CustomerName string
	Description  string
	Parts        []model.LineItem
	// PartsTotal, TotalPrice and RemainingAmount are derived when left zero.
	PartsTotal      decimal.Decimal
	ServiceFee      decimal.Decimal
	ProfitMargin    decimal.Decimal
	TotalPrice      decimal.Decimal
	DepositAmount   decimal.Decimal
	RemainingAmount decimal.Decimal
}
