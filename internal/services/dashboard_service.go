package services

import (
	"context"
	"time"

	"autogestor/internal/apperrors"
	"autogestor/internal/caching"
	"autogestor/internal/common"
	"autogestor/internal/models"
	"autogestor/internal/repositories"

	"go.uber.org/zap"
)

const dashboardCacheTTL = 5 * time.Minute

type DashboardService interface {
	Stats(ctx context.Context, auth common.Auth) (*models.DashboardStats, error)
}

type dashboardService struct {
	vehicleRepo   repositories.VehicleRepository
	clientRepo    repositories.ClientRepository
	contractRepo  repositories.ContractRepository
	insuranceRepo repositories.InsuranceRepository
	cache         caching.CacheService
	logger        *zap.Logger
}

func NewDashboardService(
	vehicleRepo repositories.VehicleRepository,
	clientRepo repositories.ClientRepository,
	contractRepo repositories.ContractRepository,
	insuranceRepo repositories.InsuranceRepository,
	cache caching.CacheService,
	logger *zap.Logger,
) DashboardService {
	return &dashboardService{
		vehicleRepo:   vehicleRepo,
		clientRepo:    clientRepo,
		contractRepo:  contractRepo,
		insuranceRepo: insuranceRepo,
		cache:         cache,
		logger:        logger,
	}
}

func (s *dashboardService) Stats(ctx context.Context, auth common.Auth) (*models.DashboardStats, error) {
	if s.cache != nil {
		if stats, err := s.cache.GetDashboardStats(ctx, auth.DealerID); err == nil {
			return stats, nil
		}
	}

	vehiclesByStatus, err := s.vehicleRepo.CountByStatus(ctx, auth.DealerID)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	totalVehicles := 0
	for _, n := range vehiclesByStatus {
		totalVehicles += n
	}

	totalClients, err := s.clientRepo.Count(ctx, auth.DealerID)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	activeContracts, err := s.contractRepo.CountActive(ctx, auth.DealerID)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	insuranceByStatus, err := s.insuranceRepo.CountByStatus(ctx, auth.DealerID)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}

	stats := &models.DashboardStats{
		TotalVehicles:     totalVehicles,
		VehiclesByStatus:  vehiclesByStatus,
		TotalClients:      totalClients,
		ActiveContracts:   activeContracts,
		InsuranceByStatus: insuranceByStatus,
	}

	if s.cache != nil {
		if err := s.cache.SetDashboardStats(ctx, auth.DealerID, stats, dashboardCacheTTL); err != nil {
			s.logger.Debug("dashboard cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}
