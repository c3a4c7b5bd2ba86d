package checkout

import (
	"context"

	"github.com/fekuna/omnipos-register-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-register-service/internal/model"
)

type Repository interface {
	// Settle applies a transaction's downstream effects and appends it to
	// the log in one document update: customer purchase total and credit
	// first, then per-item stock decrements, the record itself last.
	Settle(ctx context.Context, txn *model.Transaction) error

	FindAll(ctx context.Context, filters *dto.TransactionFilters) ([]model.Transaction, error)
}
