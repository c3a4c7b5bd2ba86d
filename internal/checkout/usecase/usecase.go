package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-register-service/internal/checkout"
	"github.com/fekuna/omnipos-register-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type checkoutUseCase struct {
	repo   checkout.Repository
	logger *zap.Logger
}

func NewCheckoutUseCase(repo checkout.Repository, log *zap.Logger) checkout.UseCase {
	return &checkoutUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *checkoutUseCase) CreateTransaction(ctx context.Context, input *dto.CreateTransactionInput) (*model.Transaction, error) {
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %s has quantity %d", store.ErrInvalidQuantity, item.ID, item.Quantity)
		}
	}

	txnType := input.Type
	if txnType == "" {
		txnType = model.TransactionTypeSale
	}

	txn := &model.Transaction{
		ID:              uuid.New().String(),
		CustomerID:      input.CustomerID,
		Items:           input.Items,
		Subtotal:        input.Subtotal,
		Tax:             input.Tax,
		Total:           input.Total,
		Cash:            input.Cash,
		CreditUsed:      input.CreditUsed,
		NewCredit:       input.NewCredit,
		Type:            txnType,
		ServiceTicketID: input.ServiceTicketID,
		CreatedAt:       time.Now(),
	}

	if err := uc.repo.Settle(ctx, txn); err != nil {
		return nil, err
	}

	uc.logger.Info("transaction settled",
		zap.String("id", txn.ID),
		zap.String("type", txn.Type),
		zap.String("customer_id", txn.CustomerID),
		zap.String("total", txn.Total.String()),
		zap.Int("items", len(txn.Items)),
	)
	return txn, nil
}

func (uc *checkoutUseCase) ProcessCart(ctx context.Context, cart *checkout.Cart) (*model.Transaction, error) {
	total := cart.Total()

	txn, err := uc.CreateTransaction(ctx, &dto.CreateTransactionInput{
		CustomerID: cart.CustomerID(),
		Items:      cart.Items(),
		Subtotal:   cart.Subtotal(),
		Tax:        cart.Tax(),
		Total:      total,
		Cash:       total,
		Type:       model.TransactionTypeSale,
	})
	if err != nil {
		return nil, err
	}

	cart.Clear()
	return txn, nil
}

func (uc *checkoutUseCase) ListTransactions(ctx context.Context, filters *dto.TransactionFilters) ([]model.Transaction, error) {
	return uc.repo.FindAll(ctx, filters)
}
