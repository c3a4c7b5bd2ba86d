package repository

import (
	"context"

	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/store"
	"github.com/fekuna/omnipos-register-service/internal/ticket/dto"
)

type SnapshotRepository struct {
	db store.Store
}

func NewSnapshotRepository(db store.Store) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Create(_ context.Context, t *model.ServiceTicket) error {
	return r.db.Update(func(doc *store.Document) error {
		doc.ServiceTickets = append(doc.ServiceTickets, *t)
		return nil
	})
}

func (r *SnapshotRepository) FindByID(_ context.Context, id string) (*model.ServiceTicket, error) {
	var found *model.ServiceTicket
	r.db.View(func(doc *store.Document) {
		for i := range doc.ServiceTickets {
			if doc.ServiceTickets[i].ID == id {
				t := doc.ServiceTickets[i]
				found = &t
				return
			}
		}
	})
	return found, nil
}

func (r *SnapshotRepository) FindAll(_ context.Context, f *dto.TicketFilters) ([]model.ServiceTicket, error) {
	var tickets []model.ServiceTicket
	r.db.View(func(doc *store.Document) {
		tickets = make([]model.ServiceTicket, 0, len(doc.ServiceTickets))
		for _, t := range doc.ServiceTickets {
			if f != nil && f.CustomerID != "" && t.CustomerID != f.CustomerID {
				continue
			}
			if f != nil && f.Status != "" && t.Status != f.Status {
				continue
			}
			tickets = append(tickets, t)
		}
	})
	return tickets, nil
}

func (r *SnapshotRepository) Update(_ context.Context, t *model.ServiceTicket) error {
	return r.db.Update(func(doc *store.Document) error {
		for i := range doc.ServiceTickets {
			if doc.ServiceTickets[i].ID == t.ID {
				doc.ServiceTickets[i] = *t
				return nil
			}
		}
		return store.ErrNotFound
	})
}
