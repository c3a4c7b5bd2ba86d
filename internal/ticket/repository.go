package ticket

import (
	"context"

	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/ticket/dto"
)

type Repository interface {
	Create(ctx context.Context, ticket *model.ServiceTicket) error
	FindByID(ctx context.Context, id string) (*model.ServiceTicket, error)
	FindAll(ctx context.Context, filters *dto.TicketFilters) ([]model.ServiceTicket, error)
	Update(ctx context.Context, ticket *model.ServiceTicket) error
}
