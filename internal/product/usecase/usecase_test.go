package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-register-service/internal/product"
	"github.com/fekuna/omnipos-register-service/internal/product/dto"
	"github.com/fekuna/omnipos-register-service/internal/product/repository"
	"github.com/fekuna/omnipos-register-service/internal/store"
	"github.com/fekuna/omnipos-register-service/internal/store/snapshot"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUseCase(t *testing.T) product.UseCase {
	t.Helper()
	st := snapshot.NewEmpty(&snapshot.Config{
		SnapshotPath: filepath.Join(t.TempDir(), "pos_db.json"),
	}, zap.NewNop())
	return NewProductUseCase(repository.NewSnapshotRepository(st), zap.NewNop())
}

func TestCreateProductAssignsUniqueIDsAndSKU(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
			Name:     "Thermal Paper",
			Price:    decimal.RequireFromString("3.5"),
			Stock:    10,
			Category: "supplies",
		})
		require.NoError(t, err)
		require.NotEmpty(t, p.ID)
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true

		require.NotEmpty(t, p.SKU)
		require.Equal(t, byte('S'), p.SKU[0])
		require.False(t, p.LastRestocked.IsZero())
	}
}

func TestCreateProductWithoutCategoryStillGetsSKU(t *testing.T) {
	uc := newTestUseCase(t)

	p, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:  "Mystery Box",
		Price: decimal.RequireFromString("5"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.SKU)
}

func TestUpdateStockAdjustsAndStamps(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:     "Cable",
		Price:    decimal.RequireFromString("12"),
		Stock:    10,
		Category: "accessories",
	})
	require.NoError(t, err)

	updated, err := uc.UpdateStock(ctx, p.ID, -3)
	require.NoError(t, err)
	require.Equal(t, 7, updated.Stock)

	// Deltas are signed; restocks go up.
	updated, err = uc.UpdateStock(ctx, p.ID, 5)
	require.NoError(t, err)
	require.Equal(t, 12, updated.Stock)
}

func TestUpdateStockUnknownProductIsNoop(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name:     "Cable",
		Price:    decimal.RequireFromString("12"),
		Stock:    10,
		Category: "accessories",
	})
	require.NoError(t, err)

	got, err := uc.UpdateStock(ctx, "404", -1)
	require.NoError(t, err)
	require.Nil(t, got)

	// Nothing else moved.
	kept, err := uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 10, kept.Stock)
}

func TestUpdateProductNotFound(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
		ID:   "missing",
		Name: "Ghost",
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = uc.GetProduct(context.Background(), "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListProductsFilters(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Thermal Paper", Price: decimal.RequireFromString("3.5"), Category: "supplies"})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "USB-C Cable", Price: decimal.RequireFromString("12"), Category: "accessories"})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Lightning Cable", Price: decimal.RequireFromString("14"), Category: "accessories"})
	require.NoError(t, err)

	all, err := uc.ListProducts(ctx, &dto.ProductFilters{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	accessories, err := uc.ListProducts(ctx, &dto.ProductFilters{Category: "accessories"})
	require.NoError(t, err)
	require.Len(t, accessories, 2)

	cables, err := uc.ListProducts(ctx, &dto.ProductFilters{SearchQuery: "cable"})
	require.NoError(t, err)
	require.Len(t, cables, 2)

	both, err := uc.ListProducts(ctx, &dto.ProductFilters{Category: "accessories", SearchQuery: "usb"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	require.Equal(t, "USB-C Cable", both[0].Name)
}
