package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"autogestor/internal/apperrors"
	"autogestor/internal/caching"
	"autogestor/internal/common"
	"autogestor/internal/models"
	"autogestor/internal/repositories"
	"autogestor/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContractService interface {
	Create(ctx context.Context, auth common.Auth, input *validation.ContractInput) (*models.Contract, error)
	List(ctx context.Context, auth common.Auth) ([]*models.Contract, error)
}

type contractService struct {
	contractRepo repositories.ContractRepository
	cache        caching.CacheService
	logger       *zap.Logger
}

func NewContractService(contractRepo repositories.ContractRepository, cache caching.CacheService, logger *zap.Logger) ContractService {
	return &contractService{contractRepo: contractRepo, cache: cache, logger: logger}
}

func (s *contractService) Create(ctx context.Context, auth common.Auth, input *validation.ContractInput) (*models.Contract, error) {
	if errs := input.Validate(); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	contract := &models.Contract{
		ID:             uuid.New(),
		DealerID:       auth.DealerID,
		ContractNumber: NewContractNumber(time.Now()),
		Status:         input.Status,
		ClientID:       uuid.MustParse(input.ClientID),
		VehicleID:      uuid.MustParse(input.VehicleID),
		Price:          *input.Price.Float(),
		Date:           input.DateTime(),
		FinancingType:  input.FinancingType,
		Notes:          optional(input.Notes),
	}
	if input.FinancingType == models.FinancingTypeFinancing {
		contract.DownPayment = input.DownPayment.Float()
		contract.Months = input.Months.Int()
		contract.MonthlyPayment = input.MonthlyPayment.Float()
	}

	// Completed contracts do not mark the vehicle as sold here; the
	// purchased-by attribution is derived at read time from the latest
	// completed contract.
	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, apperrors.FromStorage(err)
	}

	s.invalidate(ctx, auth.DealerID)
	return contract, nil
}

func (s *contractService) List(ctx context.Context, auth common.Auth) ([]*models.Contract, error) {
	contracts, err := s.contractRepo.List(ctx, auth.DealerID)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	return contracts, nil
}

// NewContractNumber builds "CTR-<year>-<suffix>". The suffix comes from
// a fresh UUID instead of wall-clock milliseconds so that two creations
// in the same instant cannot collide; the unique constraint on the
// column remains the final arbiter.
func NewContractNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("CTR-%d-%s", now.Year(), suffix)
}

func (s *contractService) invalidate(ctx context.Context, dealerID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDealer(ctx, dealerID); err != nil {
		s.logger.Debug("dashboard cache invalidation failed", zap.Error(err))
	}
}
