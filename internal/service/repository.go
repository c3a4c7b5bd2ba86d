package service

import (
	"context"

	"github.com/fekuna/omnipos-register-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, service *model.Service) error
	FindAll(ctx context.Context) ([]model.Service, error)
}
