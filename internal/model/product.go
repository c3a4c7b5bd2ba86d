package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Stock is signed on purpose: settlement never
// enforces a floor, so an oversold product goes negative (backorder) instead
// of failing the sale.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	LastRestocked time.Time       `json:"lastRestocked"`
}
