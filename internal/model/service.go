package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Duration    int             `json:"duration"` // minutes
	CreatedAt   time.Time       `json:"createdAt"`
}
