package services

import (
	"context"

	"autogestor/internal/apperrors"
	"autogestor/internal/common"
	"autogestor/internal/models"
	"autogestor/internal/repositories"
	"autogestor/internal/validation"

	"github.com/google/uuid"
)

type ConcesionarioService interface {
	Create(ctx context.Context, auth common.Auth, input *validation.ConcesionarioInput) (*models.Concesionario, error)
	GetByID(ctx context.Context, auth common.Auth, id uuid.UUID) (*models.ConcesionarioWithVehicles, error)
	List(ctx context.Context, auth common.Auth) ([]*models.Concesionario, error)
}

type concesionarioService struct {
	concesionarioRepo repositories.ConcesionarioRepository
	vehicleRepo       repositories.VehicleRepository
}

func NewConcesionarioService(concesionarioRepo repositories.ConcesionarioRepository, vehicleRepo repositories.VehicleRepository) ConcesionarioService {
	return &concesionarioService{concesionarioRepo: concesionarioRepo, vehicleRepo: vehicleRepo}
}

func (s *concesionarioService) Create(ctx context.Context, auth common.Auth, input *validation.ConcesionarioInput) (*models.Concesionario, error) {
	if errs := input.Validate(); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	concesionario := &models.Concesionario{
		ID:          uuid.New(),
		DealerID:    auth.DealerID,
		Name:        input.Name,
		ContactName: input.ContactName,
		Email:       optional(input.Email),
		Phone:       optional(input.Phone),
		Address:     input.Address,
	}

	if err := s.concesionarioRepo.Create(ctx, concesionario); err != nil {
		return nil, apperrors.FromStorage(err)
	}
	return concesionario, nil
}

// GetByID returns the partner with its assigned vehicles eagerly loaded.
func (s *concesionarioService) GetByID(ctx context.Context, auth common.Auth, id uuid.UUID) (*models.ConcesionarioWithVehicles, error) {
	concesionario, err := s.concesionarioRepo.GetByID(ctx, auth.DealerID, id)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	vehicles, err := s.vehicleRepo.ListByConcesionario(ctx, auth.DealerID, id)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	if vehicles == nil {
		vehicles = []*models.Vehicle{}
	}
	return &models.ConcesionarioWithVehicles{Concesionario: *concesionario, Vehicles: vehicles}, nil
}

func (s *concesionarioService) List(ctx context.Context, auth common.Auth) ([]*models.Concesionario, error) {
	concesionarios, err := s.concesionarioRepo.List(ctx, auth.DealerID)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	return concesionarios, nil
}
