package service

import (
	"context"

	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/service/dto"
)

// UseCase is intentionally small: catalog services have no lifecycle beyond
// creation. Pricing a performed job happens on service tickets.
type UseCase interface {
	CreateService(ctx context.Context, input *dto.CreateServiceInput) (*model.Service, error)
	ListServices(ctx context.Context) ([]model.Service, error)
}
