package customer

import (
	"context"

	"github.com/fekuna/omnipos-register-service/internal/customer/dto"
	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, customer *model.Customer) error
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindAll(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) error

	// Delete removes exactly one customer. Transactions referencing the id
	// are kept (orphaned); the log is append-only.
	Delete(ctx context.Context, id string) error

	AdjustCredit(ctx context.Context, id string, delta decimal.Decimal) (*model.Customer, error)
}
