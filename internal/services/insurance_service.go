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

type InsuranceService interface {
	Create(ctx context.Context, auth common.Auth, input *validation.InsuranceInput) (*models.Insurance, error)
	List(ctx context.Context, auth common.Auth) ([]*models.Insurance, error)
}

type insuranceService struct {
	insuranceRepo repositories.InsuranceRepository
	cache         caching.CacheService
	logger        *zap.Logger
}

func NewInsuranceService(insuranceRepo repositories.InsuranceRepository, cache caching.CacheService, logger *zap.Logger) InsuranceService {
	return &insuranceService{insuranceRepo: insuranceRepo, cache: cache, logger: logger}
}

func (s *insuranceService) Create(ctx context.Context, auth common.Auth, input *validation.InsuranceInput) (*models.Insurance, error) {
	if errs := input.Validate(); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	start, expiry := input.Dates()
	insurance := &models.Insurance{
		ID:               uuid.New(),
		DealerID:         auth.DealerID,
		VehicleID:        uuid.MustParse(input.VehicleID),
		StartDate:        start,
		ExpiryDate:       expiry,
		CoverageType:     input.CoverageType,
		CoverageDuration: *input.CoverageDuration.Int(),
		Premium:          *input.Premium.Float(),
		Status:           input.Status,
	}
	if input.ClientID != "" {
		id := uuid.MustParse(input.ClientID)
		insurance.ClientID = &id
	}
	if input.ContractID != "" {
		id := uuid.MustParse(input.ContractID)
		insurance.ContractID = &id
	}

	if err := s.insuranceRepo.Create(ctx, insurance); err != nil {
		return nil, apperrors.FromStorage(err)
	}

	s.invalidate(ctx, auth.DealerID)
	return insurance, nil
}

func (s *insuranceService) List(ctx context.Context, auth common.Auth) ([]*models.Insurance, error) {
	policies, err := s.insuranceRepo.List(ctx, auth.DealerID)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	return policies, nil
}

func (s *insuranceService) invalidate(ctx context.Context, dealerID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDealer(ctx, dealerID); err != nil {
		s.logger.Debug("dashboard cache invalidation failed", zap.Error(err))
	}
}
