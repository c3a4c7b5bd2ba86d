package dto

import "github.com/shopspring/decimal"

type CreateServiceInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Duration    int // minutes
}
