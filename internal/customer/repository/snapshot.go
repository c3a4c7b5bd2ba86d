package repository

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-register-service/internal/customer/dto"
	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/store"
	"github.com/shopspring/decimal"
)

type SnapshotRepository struct {
	db store.Store
}

func NewSnapshotRepository(db store.Store) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Create(_ context.Context, c *model.Customer) error {
	return r.db.Update(func(doc *store.Document) error {
		doc.Customers = append(doc.Customers, *c)
		return nil
	})
}

func (r *SnapshotRepository) FindByID(_ context.Context, id string) (*model.Customer, error) {
	var found *model.Customer
	r.db.View(func(doc *store.Document) {
		for i := range doc.Customers {
			if doc.Customers[i].ID == id {
				c := doc.Customers[i]
				found = &c
				return
			}
		}
	})
	return found, nil
}

func (r *SnapshotRepository) FindAll(_ context.Context, f *dto.CustomerFilters) ([]model.Customer, error) {
	var customers []model.Customer
	r.db.View(func(doc *store.Document) {
		customers = make([]model.Customer, 0, len(doc.Customers))
		for _, c := range doc.Customers {
			if f != nil && f.SearchQuery != "" {
				q := strings.ToLower(f.SearchQuery)
				if !strings.Contains(strings.ToLower(c.Name), q) &&
					!strings.Contains(strings.ToLower(c.Email), q) &&
					!strings.Contains(strings.ToLower(c.Phone), q) {
					continue
				}
			}
			customers = append(customers, c)
		}
	})
	return customers, nil
}

func (r *SnapshotRepository) Update(_ context.Context, c *model.Customer) error {
	return r.db.Update(func(doc *store.Document) error {
		for i := range doc.Customers {
			if doc.Customers[i].ID == c.ID {
				doc.Customers[i] = *c
				return nil
			}
		}
		return store.ErrNotFound
	})
}

func (r *SnapshotRepository) Delete(_ context.Context, id string) error {
	return r.db.Update(func(doc *store.Document) error {
		for i := range doc.Customers {
			if doc.Customers[i].ID == id {
				doc.Customers = append(doc.Customers[:i], doc.Customers[i+1:]...)
				return nil
			}
		}
		return store.ErrNotFound
	})
}

func (r *SnapshotRepository) AdjustCredit(_ context.Context, id string, delta decimal.Decimal) (*model.Customer, error) {
	var updated *model.Customer
	err := r.db.Update(func(doc *store.Document) error {
		for i := range doc.Customers {
			if doc.Customers[i].ID == id {
				doc.Customers[i].Credit = doc.Customers[i].Credit.Add(delta)
				c := doc.Customers[i]
				updated = &c
				return nil
			}
		}
		return store.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
