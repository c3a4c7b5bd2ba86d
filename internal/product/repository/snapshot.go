package repository

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/product/dto"
	"github.com/fekuna/omnipos-register-service/internal/store"
)

type SnapshotRepository struct {
	db store.Store
}

func NewSnapshotRepository(db store.Store) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Create(_ context.Context, p *model.Product) error {
	return r.db.Update(func(doc *store.Document) error {
		doc.Products = append(doc.Products, *p)
		return nil
	})
}

func (r *SnapshotRepository) FindByID(_ context.Context, id string) (*model.Product, error) {
	var found *model.Product
	r.db.View(func(doc *store.Document) {
		for i := range doc.Products {
			if doc.Products[i].ID == id {
				p := doc.Products[i]
				found = &p
				return
			}
		}
	})
	return found, nil
}

func (r *SnapshotRepository) FindAll(_ context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	var products []model.Product
	r.db.View(func(doc *store.Document) {
		products = make([]model.Product, 0, len(doc.Products))
		for _, p := range doc.Products {
			if f != nil && f.Category != "" && p.Category != f.Category {
				continue
			}
			if f != nil && f.SearchQuery != "" {
				q := strings.ToLower(f.SearchQuery)
				if !strings.Contains(strings.ToLower(p.Name), q) &&
					!strings.Contains(strings.ToLower(p.SKU), q) {
					continue
				}
			}
			products = append(products, p)
		}
	})
	return products, nil
}

func (r *SnapshotRepository) Update(_ context.Context, p *model.Product) error {
	return r.db.Update(func(doc *store.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == p.ID {
				doc.Products[i] = *p
				return nil
			}
		}
		return store.ErrNotFound
	})
}

func (r *SnapshotRepository) AdjustStock(_ context.Context, id string, delta int) (*model.Product, error) {
	var updated *model.Product
	err := r.db.Update(func(doc *store.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == id {
				doc.Products[i].Stock += delta
				doc.Products[i].LastRestocked = time.Now()
				p := doc.Products[i]
				updated = &p
				return nil
			}
		}
		// Unknown product: leave the document alone, signal nothing.
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
