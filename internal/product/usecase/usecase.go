package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/product"
	"github.com/fekuna/omnipos-register-service/internal/product/dto"
	"github.com/fekuna/omnipos-register-service/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger *zap.Logger
}

func NewProductUseCase(repo product.Repository, log *zap.Logger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	now := time.Now()

	p := &model.Product{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Price:         input.Price,
		Stock:         input.Stock,
		SKU:           generateSKU(input.Category),
		Category:      input.Category,
		LastRestocked: now,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product created",
		zap.String("id", p.ID),
		zap.String("sku", p.SKU),
		zap.String("name", p.Name),
	)
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, store.ErrNotFound
	}

	p.Name = input.Name
	p.Price = input.Price
	p.Stock = input.Stock
	p.Category = input.Category

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *productUseCase) UpdateStock(ctx context.Context, id string, delta int) (*model.Product, error) {
	p, err := uc.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if p == nil {
		uc.logger.Debug("stock update for unknown product ignored", zap.String("id", id))
		return nil, nil
	}
	return p, nil
}

// generateSKU derives a display SKU from the category initial plus the last
// four digits of the clock and three random digits. Not guaranteed unique;
// the UUID id is the identity, the SKU is a label.
func generateSKU(category string) string {
	prefix := "G"
	for _, r := range category {
		prefix = strings.ToUpper(string(r))
		break
	}
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return fmt.Sprintf("%s%s%03d", prefix, ts[len(ts)-4:], rand.Intn(1000))
}
