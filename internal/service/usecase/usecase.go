package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/fekuna/omnipos-register-service/internal/service"
	"github.com/fekuna/omnipos-register-service/internal/service/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type serviceUseCase struct {
	repo   service.Repository
	logger *zap.Logger
}

func NewServiceUseCase(repo service.Repository, log *zap.Logger) service.UseCase {
	return &serviceUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *serviceUseCase) CreateService(ctx context.Context, input *dto.CreateServiceInput) (*model.Service, error) {
	s := &model.Service{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Duration:    input.Duration,
		CreatedAt:   time.Now(),
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Info("service created", zap.String("id", s.ID), zap.String("name", s.Name))
	return s, nil
}

func (uc *serviceUseCase) ListServices(ctx context.Context) ([]model.Service, error) {
	return uc.repo.FindAll(ctx)
}
