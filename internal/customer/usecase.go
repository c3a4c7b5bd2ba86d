package customer

import (
	"context"

	"github.com/fekuna/omnipos-register-service/internal/customer/dto"
	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/shopspring/decimal"
)

type UseCase interface {
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	// AdjustCredit applies a signed delta to the store-credit balance. No
	// floor: balances may go negative.
	AdjustCredit(ctx context.Context, id string, delta decimal.Decimal) (*model.Customer, error)
}
