package services

import (
	"context"

	"autogestor/internal/apperrors"
	"autogestor/internal/caching"
	"autogestor/internal/common"
	"autogestor/internal/models"
	"autogestor/internal/repositories"
	"autogestor/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClientService interface {
	Create(ctx context.Context, auth common.Auth, input *validation.ClientInput) (*models.Client, error)
	GetByID(ctx context.Context, auth common.Auth, id uuid.UUID) (*models.Client, error)
	List(ctx context.Context, auth common.Auth) ([]*models.Client, error)
}

type clientService struct {
	clientRepo repositories.ClientRepository
	cache      caching.CacheService
	logger     *zap.Logger
}

func NewClientService(clientRepo repositories.ClientRepository, cache caching.CacheService, logger *zap.Logger) ClientService {
	return &clientService{clientRepo: clientRepo, cache: cache, logger: logger}
}

func (s *clientService) Create(ctx context.Context, auth common.Auth, input *validation.ClientInput) (*models.Client, error) {
	if errs := input.Validate(); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	client := &models.Client{
		ID:       uuid.New(),
		DealerID: auth.DealerID,
		Cedula:   input.Cedula,
		Name:     input.Name,
		Email:    optional(input.Email),
		Phone:    optional(input.Phone),
		Address:  input.Address,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, apperrors.FromStorage(err)
	}

	s.invalidate(ctx, auth.DealerID)
	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, auth common.Auth, id uuid.UUID) (*models.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, auth.DealerID, id)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context, auth common.Auth) ([]*models.Client, error) {
	clients, err := s.clientRepo.List(ctx, auth.DealerID)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	return clients, nil
}

func (s *clientService) invalidate(ctx context.Context, dealerID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDealer(ctx, dealerID); err != nil {
		s.logger.Debug("dashboard cache invalidation failed", zap.Error(err))
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
