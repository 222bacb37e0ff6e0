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
	"golang.org/x/sync/errgroup"
)

type VehicleService interface {
	Create(ctx context.Context, auth common.Auth, input *validation.VehicleInput) (*models.Vehicle, error)
	GetByID(ctx context.Context, auth common.Auth, id uuid.UUID) (*models.VehicleWithRelations, error)
	List(ctx context.Context, auth common.Auth) ([]*models.VehicleWithRelations, error)
	UpdateConsignment(ctx context.Context, auth common.Auth, input *validation.ConsignmentUpdateInput) (*models.Vehicle, error)
}

type vehicleService struct {
	vehicleRepo     repositories.VehicleRepository
	imageService    ImageService
	cache           caching.CacheService
	uploadsDisabled bool
	logger          *zap.Logger
}

func NewVehicleService(
	vehicleRepo repositories.VehicleRepository,
	imageService ImageService,
	cache caching.CacheService,
	uploadsDisabled bool,
	logger *zap.Logger,
) VehicleService {
	return &vehicleService{
		vehicleRepo:     vehicleRepo,
		imageService:    imageService,
		cache:           cache,
		uploadsDisabled: uploadsDisabled,
		logger:          logger,
	}
}

func (s *vehicleService) Create(ctx context.Context, auth common.Auth, input *validation.VehicleInput) (*models.Vehicle, error) {
	if errs := input.Validate(); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	// Image ingestion and plain-field preparation are independent, so
	// they run concurrently and join before the insert.
	var (
		urls    []string
		vehicle *models.Vehicle
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if s.uploadsDisabled {
			s.logger.Info("image uploads disabled by configuration, persisting empty image list",
				zap.Int("skipped", len(input.Images)))
			urls = []string{}
			return nil
		}
		ingested, err := s.imageService.Ingest(gctx, auth.DealerID, input.Images)
		if err != nil {
			return apperrors.Internal(err.Error(), err)
		}
		urls = ingested
		return nil
	})
	g.Go(func() error {
		vehicle = buildVehicle(auth.DealerID, input)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	vehicle.Images = urls

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, apperrors.FromStorage(err)
	}

	s.invalidate(ctx, auth.DealerID)
	return vehicle, nil
}

func (s *vehicleService) GetByID(ctx context.Context, auth common.Auth, id uuid.UUID) (*models.VehicleWithRelations, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, auth.DealerID, id)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	return vehicle, nil
}

func (s *vehicleService) List(ctx context.Context, auth common.Auth) ([]*models.VehicleWithRelations, error) {
	vehicles, err := s.vehicleRepo.List(ctx, auth.DealerID)
	if err != nil {
		return nil, apperrors.FromStorage(err)
	}
	return vehicles, nil
}

// UpdateConsignment is the one write path restricted beyond tenant
// membership: the admin gate runs before validation and before any
// storage access.
func (s *vehicleService) UpdateConsignment(ctx context.Context, auth common.Auth, input *validation.ConsignmentUpdateInput) (*models.Vehicle, error) {
	if !auth.IsAdmin {
		return nil, apperrors.Forbidden("Solo un administrador puede actualizar la asignación de consignación")
	}
	if errs := input.Validate(); errs != nil {
		return nil, apperrors.Validation(errs)
	}

	vehicleID := uuid.MustParse(input.VehicleID)

	// Re-verify ownership before mutating; a cross-tenant id reads the
	// same as a missing one.
	if _, err := s.vehicleRepo.GetByID(ctx, auth.DealerID, vehicleID); err != nil {
		storageErr := apperrors.FromStorage(err)
		if storageErr.Kind == apperrors.KindNotFound {
			return nil, apperrors.NotFound("El vehículo no existe o no pertenece a su dealer")
		}
		return nil, storageErr
	}

	vehicle, err := s.vehicleRepo.UpdateConsignment(ctx, auth.DealerID, vehicleID, input.ConcesionarioUUID())
	if err != nil {
		storageErr := apperrors.FromStorage(err)
		if storageErr.Kind == apperrors.KindNotFound {
			return nil, apperrors.Internal("La actualización no devolvió datos", err)
		}
		return nil, storageErr
	}

	s.invalidate(ctx, auth.DealerID)
	return vehicle, nil
}

func buildVehicle(dealerID uuid.UUID, input *validation.VehicleInput) *models.Vehicle {
	vehicle := &models.Vehicle{
		ID:            uuid.New(),
		DealerID:      dealerID,
		Brand:         input.Brand,
		Model:         input.Model,
		Year:          *input.Year.Int(),
		Trim:          optional(input.Trim),
		VehicleType:   input.VehicleType,
		Color:         input.Color,
		Status:        input.Status,
		Condition:     input.Condition,
		Images:        []string{},
		Description:   optional(input.Description),
		Transmission:  optional(input.Transmission),
		FuelType:      optional(input.FuelType),
		EngineSize:    optional(input.EngineSize),
		Plate:         optional(input.Plate),
		VIN:           input.VIN,
		Mileage:       input.Mileage.Int(),
		Doors:         *input.Doors.Int(),
		Seats:         *input.Seats.Int(),
		Price:         *input.Price.Float(),
		HasOffer:      input.HasOffer,
		OfferPrice:    input.OfferPrice.Float(),
		AdminStatus:   optional(input.AdminStatus),
		InMaintenance: input.InMaintenance,
		EntryDate:     input.EntryDateTime(),
	}
	if input.ConcesionarioID != "" {
		if id, err := uuid.Parse(input.ConcesionarioID); err == nil {
			vehicle.ConcesionarioID = &id
		}
	}
	return vehicle
}

func (s *vehicleService) invalidate(ctx context.Context, dealerID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateDealer(ctx, dealerID); err != nil {
		s.logger.Debug("dashboard cache invalidation failed", zap.Error(err))
	}
}
