package product

import (
	"context"

	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error

	// AdjustStock applies a signed delta and stamps LastRestocked. An unknown
	// id is a no-op returning (nil, nil); restock flows and settlement both
	// rely on that.
	AdjustStock(ctx context.Context, id string, delta int) (*model.Product, error)
}
