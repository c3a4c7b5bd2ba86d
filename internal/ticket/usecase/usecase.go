package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-register-service/internal/checkout"
	checkoutdto "github.com/fekuna/omnipos-register-service/internal/checkout/dto"
	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/store"
	"github.com/fekuna/omnipos-register-service/internal/ticket"
	"github.com/fekuna/omnipos-register-service/internal/ticket/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ticketUseCase struct {
	repo     ticket.Repository
	checkout checkout.UseCase
	logger   *zap.Logger
}

func NewTicketUseCase(repo ticket.Repository, checkoutUC checkout.UseCase, log *zap.Logger) ticket.UseCase {
	return &ticketUseCase{
		repo:     repo,
		checkout: checkoutUC,
		logger:   log,
	}
}

// validateParts enforces the same line rule settlement does, so a ticket can
// never carry parts its own completion would reject.
func validateParts(parts []model.LineItem) error {
	for _, part := range parts {
		if part.Quantity <= 0 {
			return fmt.Errorf("%w: part %s has quantity %d", store.ErrInvalidQuantity, part.ID, part.Quantity)
		}
	}
	return nil
}

func (uc *ticketUseCase) CreateTicket(ctx context.Context, input *dto.CreateTicketInput) (*model.ServiceTicket, error) {
	if err := validateParts(input.Parts); err != nil {
		return nil, err
	}

	t := &model.ServiceTicket{
		ID:              uuid.New().String(),
		CustomerID:      input.CustomerID,
		CustomerName:    input.CustomerName,
		Description:     input.Description,
		Parts:           input.Parts,
		PartsTotal:      input.PartsTotal,
		ServiceFee:      input.ServiceFee,
		ProfitMargin:    input.ProfitMargin,
		TotalPrice:      input.TotalPrice,
		DepositAmount:   input.DepositAmount,
		RemainingAmount: input.RemainingAmount,
		Status:          model.TicketStatusPending,
		CreatedAt:       time.Now(),
	}

	if t.PartsTotal.IsZero() {
		for _, part := range t.Parts {
			t.PartsTotal = t.PartsTotal.Add(part.Price.Mul(decimal.NewFromInt(int64(part.Quantity))))
		}
	}
	if t.TotalPrice.IsZero() {
		t.TotalPrice = t.PartsTotal.Add(t.ServiceFee)
	}
	if t.RemainingAmount.IsZero() {
		t.RemainingAmount = t.TotalPrice.Sub(t.DepositAmount)
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Info("service ticket opened",
		zap.String("id", t.ID),
		zap.String("customer_id", t.CustomerID),
		zap.String("total", t.TotalPrice.String()),
	)
	return t, nil
}

func (uc *ticketUseCase) GetTicket(ctx context.Context, id string) (*model.ServiceTicket, error) {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (uc *ticketUseCase) ListTickets(ctx context.Context, filters *dto.TicketFilters) ([]model.ServiceTicket, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *ticketUseCase) CompleteTicket(ctx context.Context, id string) (*model.ServiceTicket, *model.Transaction, error) {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if t == nil {
		return nil, nil, store.ErrNotFound
	}
	if t.Completed() {
		uc.logger.Debug("ticket already completed", zap.String("id", t.ID))
		return t, nil, nil
	}

	// A completed ticket must always have its transaction, so anything that
	// would fail settlement has to fail here, before the transition is
	// stamped and persisted. Covers tickets that predate part validation.
	if err := validateParts(t.Parts); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	t.Status = model.TicketStatusCompleted
	t.CompletedAt = &now
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, nil, err
	}

	// The charge for the job: parts plus fee, tax-exempt, paid in full at
	// pickup. Settlement decrements parts stock and updates the customer
	// before the record is appended.
	txn, err := uc.checkout.CreateTransaction(ctx, &checkoutdto.CreateTransactionInput{
		CustomerID:      t.CustomerID,
		Items:           t.Parts,
		Subtotal:        t.PartsTotal.Add(t.ServiceFee),
		Tax:             decimal.Zero,
		Total:           t.TotalPrice,
		Cash:            t.TotalPrice,
		Type:            model.TransactionTypeService,
		ServiceTicketID: t.ID,
	})
	if err != nil {
		return nil, nil, err
	}

	uc.logger.Info("service ticket completed",
		zap.String("id", t.ID),
		zap.String("transaction_id", txn.ID),
	)
	return t, txn, nil
}
