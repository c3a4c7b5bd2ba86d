package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TicketStatusPending   = "pending"
	TicketStatusCompleted = "completed"
)

// ServiceTicket tracks a repair/service job: parts used, fees and the
// resulting price. Completion is a one-way transition that settles exactly
// one service transaction.
type ServiceTicket struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	Description     string          `json:"description"`
	Parts           []LineItem      `json:"parts"`
	PartsTotal      decimal.Decimal `json:"partsTotal"`
	ServiceFee      decimal.Decimal `json:"serviceFee"`
	ProfitMargin    decimal.Decimal `json:"profitMargin"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	DepositAmount   decimal.Decimal `json:"depositAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	CompletedAt     *time.Time      `json:"completedAt,omitempty"`
}

func (t *ServiceTicket) Completed() bool {
	return t.Status == TicketStatusCompleted
}
