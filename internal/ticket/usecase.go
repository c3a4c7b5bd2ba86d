package ticket

import (
	"context"

	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/ticket/dto"
)

type UseCase interface {
	CreateTicket(ctx context.Context, input *dto.CreateTicketInput) (*model.ServiceTicket, error)
	GetTicket(ctx context.Context, id string) (*model.ServiceTicket, error)
	ListTickets(ctx context.Context, filters *dto.TicketFilters) ([]model.ServiceTicket, error)

	// CompleteTicket transitions pending→completed and settles exactly one
	// service transaction. Completing an already-completed ticket is a no-op
	// that returns the ticket and a nil transaction.
	CompleteTicket(ctx context.Context, id string) (*model.ServiceTicket, *model.Transaction, error)
}
