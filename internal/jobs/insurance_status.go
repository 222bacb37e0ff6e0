package jobs

import (
	"context"
	"time"

	"autogestor/internal/repositories"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// ExpiryWindow is how far ahead a policy counts as expiring soon.
const ExpiryWindow = 30 * 24 * time.Hour

// InsuranceStatusService keeps policy statuses consistent with their
// expiry dates instead of trusting write-time values to stay correct.
type InsuranceStatusService struct {
	insuranceRepo repositories.InsuranceRepository
	logger        *zap.Logger
}

func NewInsuranceStatusService(insuranceRepo repositories.InsuranceRepository, logger *zap.Logger) *InsuranceStatusService {
	return &InsuranceStatusService{insuranceRepo: insuranceRepo, logger: logger}
}

func (s *InsuranceStatusService) Refresh(ctx context.Context) error {
	now := time.Now()

	expired, err := s.insuranceRepo.MarkExpired(ctx, now)
	if err != nil {
		s.logger.Error("marking expired policies failed", zap.Error(err))
		return err
	}
	expiring, err := s.insuranceRepo.MarkExpiringSoon(ctx, now, ExpiryWindow)
	if err != nil {
		s.logger.Error("marking expiring policies failed", zap.Error(err))
		return err
	}

	if expired > 0 || expiring > 0 {
		s.logger.Info("insurance statuses refreshed",
			zap.Int64("expired", expired),
			zap.Int64("expiring_soon", expiring))
	}
	return nil
}

// NewScheduler registers the hourly status refresh.
func NewScheduler(statusSvc *InsuranceStatusService, logger *zap.Logger) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			if err := statusSvc.Refresh(context.Background()); err != nil {
				logger.Error("insurance status refresh job failed", zap.Error(err))
			}
		}),
		gocron.WithName("insurance-status-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	return scheduler, nil
}
