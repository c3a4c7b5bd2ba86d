package repository

import (
	"context"

	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/store"
)

type SnapshotRepository struct {
	db store.Store
}

func NewSnapshotRepository(db store.Store) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Create(_ context.Context, s *model.Service) error {
	return r.db.Update(func(doc *store.Document) error {
		doc.Services = append(doc.Services, *s)
		return nil
	})
}

func (r *SnapshotRepository) FindAll(_ context.Context) ([]model.Service, error) {
	var services []model.Service
	r.db.View(func(doc *store.Document) {
		services = make([]model.Service, len(doc.Services))
		copy(services, doc.Services)
	})
	return services, nil
}
