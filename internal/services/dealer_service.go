package services

import (
	"context"

	"autogestor/internal/apperrors"
	"autogestor/internal/common"
	"autogestor/internal/models"
	"autogestor/internal/repositories"
)

type DealerService interface {
	GetOwn(ctx context.Context, auth common.Auth) (*models.Dealer, error)
	GetProfile(ctx context.Context, auth common.Auth) (*models.ProfileWithDealer, error)
}

type dealerService struct {
	dealerRepo  repositories.DealerRepository
	profileRepo repositories.ProfileRepository
}

func NewDealerService(dealerRepo repositories.DealerRepository, profileRepo repositories.ProfileRepository) DealerService {
	return &dealerService{dealerRepo: dealerRepo, profileRepo: profileRepo}
}

func (s *dealerService) GetOwn(ctx context.Context, auth common.Auth) (*models.Dealer, error) {
	dealer, err := s.dealerRepo.GetByID(ctx, auth.DealerID)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	return dealer, nil
}

func (s *dealerService) GetProfile(ctx context.Context, auth common.Auth) (*models.ProfileWithDealer, error) {
	profile, err := s.profileRepo.GetWithDealer(ctx, auth.UserID)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	return profile, nil
}
