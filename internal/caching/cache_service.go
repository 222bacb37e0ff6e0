package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"autogestor/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CacheService caches per-dealer dashboard aggregates. Misses and Redis
// failures are both reported as errors; callers fall through to SQL.
type CacheService interface {
	GetDashboardStats(ctx context.Context, dealerID uuid.UUID) (*models.DashboardStats, error)
	SetDashboardStats(ctx context.Context, dealerID uuid.UUID, stats *models.DashboardStats, ttl time.Duration) error
	InvalidateDealer(ctx context.Context, dealerID uuid.UUID) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisCacheService{client: client}
}

func dashboardKey(dealerID uuid.UUID) string {
	return fmt.Sprintf("dealer:%s:dashboard", dealerID)
}

func (s *redisCacheService) GetDashboardStats(ctx context.Context, dealerID uuid.UUID) (*models.DashboardStats, error) {
	data, err := s.client.Get(ctx, dashboardKey(dealerID)).Bytes()
	if err != nil {
		return nil, err
	}
	stats := &models.DashboardStats{}
	if err := json.Unmarshal(data, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *redisCacheService) SetDashboardStats(ctx context.Context, dealerID uuid.UUID, stats *models.DashboardStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, dashboardKey(dealerID), data, ttl).Err()
}

func (s *redisCacheService) InvalidateDealer(ctx context.Context, dealerID uuid.UUID) error {
	return s.client.Del(ctx, dashboardKey(dealerID)).Err()
}
