package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-register-service/internal/customer"
	"github.com/fekuna/omnipos-register-service/internal/customer/dto"
	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type customerUseCase struct {
	repo   customer.Repository
	logger *zap.Logger
}

func NewCustomerUseCase(repo customer.Repository, log *zap.Logger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	c := &model.Customer{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Credit:         decimal.Zero,
		TotalPurchases: decimal.Zero,
		CreatedAt:      time.Now(),
	}

	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Info("customer created", zap.String("id", c.ID), zap.String("name", c.Name))
	return c, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (uc *customerUseCase) ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, store.ErrNotFound
	}

	// Credit, purchase totals and creation time are not caller-writable;
	// settlement owns them.
	c.Name = input.Name
	c.Email = input.Email
	c.Phone = input.Phone

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("customer deleted", zap.String("id", id))
	return nil
}

func (uc *customerUseCase) AdjustCredit(ctx context.Context, id string, delta decimal.Decimal) (*model.Customer, error) {
	c, err := uc.repo.AdjustCredit(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("customer credit adjusted",
		zap.String("id", id),
		zap.String("delta", delta.String()),
		zap.String("credit", c.Credit.String()),
	)
	return c, nil
}
