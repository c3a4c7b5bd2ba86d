package checkout

import (
	"context"

	"github.com/fekuna/omnipos-register-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-register-service/internal/model"
)

type UseCase interface {
	// CreateTransaction validates and settles a sale or service charge.
	// Line quantities must be positive; everything else is taken as given,
	// including stock going negative.
	CreateTransaction(ctx context.Context, input *dto.CreateTransactionInput) (*model.Transaction, error)

	// ProcessCart settles the cart as a cash sale and clears it on success.
	ProcessCart(ctx context.Context, cart *Cart) (*model.Transaction, error)

	ListTransactions(ctx context.Context, filters *dto.TransactionFilters) ([]model.Transaction, error)
}
