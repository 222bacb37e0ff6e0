package services

import (
	"context"
	"testing"
	"time"

	"autogestor/internal/apperrors"
	"autogestor/internal/common"
	"autogestor/internal/models"
	"autogestor/internal/validation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, dealerID, id uuid.UUID) (*models.VehicleWithRelations, error) {
	args := m.Called(ctx, dealerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VehicleWithRelations), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context, dealerID uuid.UUID) ([]*models.VehicleWithRelations, error) {
	args := m.Called(ctx, dealerID)
	return args.Get(0).([]*models.VehicleWithRelations), args.Error(1)
}

func (m *MockVehicleRepository) ListByConcesionario(ctx context.Context, dealerID, concesionarioID uuid.UUID) ([]*models.Vehicle, error) {
	args := m.Called(ctx, dealerID, concesionarioID)
	return args.Get(0).([]*models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) UpdateConsignment(ctx context.Context, dealerID, id uuid.UUID, concesionarioID *uuid.UUID) (*models.Vehicle, error) {
	args := m.Called(ctx, dealerID, id, concesionarioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) CountByStatus(ctx context.Context, dealerID uuid.UUID) (map[string]int, error) {
	args := m.Called(ctx, dealerID)
	return args.Get(0).(map[string]int), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Ingest(ctx context.Context, dealerID uuid.UUID, files []models.ImagePayload) ([]string, error) {
	args := m.Called(ctx, dealerID, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetDashboardStats(ctx context.Context, dealerID uuid.UUID) (*models.DashboardStats, error) {
	args := m.Called(ctx, dealerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}

func (m *MockCacheService) SetDashboardStats(ctx context.Context, dealerID uuid.UUID, stats *models.DashboardStats, ttl time.Duration) error {
	args := m.Called(ctx, dealerID, stats, ttl)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateDealer(ctx context.Context, dealerID uuid.UUID) error {
	args := m.Called(ctx, dealerID)
	return args.Error(0)
}

type VehicleServiceTestSuite struct {
	suite.Suite
	repo      *MockVehicleRepository
	images    *MockImageService
	cache     *MockCacheService
	svc       VehicleService
	auth      common.Auth
	adminAuth common.Auth
	ctx       context.Context
}

func (s *VehicleServiceTestSuite) SetupTest() {
	s.repo = new(MockVehicleRepository)
	s.images = new(MockImageService)
	s.cache = new(MockCacheService)
	s.svc = NewVehicleService(s.repo, s.images, s.cache, false, zap.NewNop())

	dealerID := uuid.New()
	s.auth = common.Auth{UserID: uuid.New(), DealerID: dealerID}
	s.adminAuth = common.Auth{UserID: uuid.New(), DealerID: dealerID, IsAdmin: true}
	s.ctx = context.Background()
}

func TestVehicleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleServiceTestSuite))
}

func validVehicleInput() *validation.VehicleInput {
	return &validation.VehicleInput{
		Brand:     "Toyota",
		Model:     "Corolla",
		Year:      validation.NewIntCount(2022),
		Status:    models.VehicleStatusAvailable,
		Condition: models.VehicleConditionUsed,
		VIN:       "1HGBH41JXMN109186",
		Doors:     validation.NewIntCount(4),
		Seats:     validation.NewIntCount(5),
		Price:     validation.NewMoney(950000),
	}
}

func (s *VehicleServiceTestSuite) TestCreate_InjectsDealerFromAuth() {
	s.images.On("Ingest", mock.Anything, s.auth.DealerID, mock.Anything).Return([]string{}, nil)
	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(v *models.Vehicle) bool {
		return v.DealerID == s.auth.DealerID && v.ID != uuid.Nil
	})).Return(nil)
	s.cache.On("InvalidateDealer", mock.Anything, s.auth.DealerID).Return(nil)

	vehicle, err := s.svc.Create(s.ctx, s.auth, validVehicleInput())
	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.auth.DealerID, vehicle.DealerID)
	s.repo.AssertExpectations(s.T())
}

func (s *VehicleServiceTestSuite) TestCreate_ValidationFailureSkipsStorage() {
	input := validVehicleInput()
	input.VIN = "short"

	_, err := s.svc.Create(s.ctx, s.auth, input)
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperrors.KindValidation, apperrors.KindOf(err))
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	s.images.AssertNotCalled(s.T(), "Ingest", mock.Anything, mock.Anything, mock.Anything)
}

func (s *VehicleServiceTestSuite) TestCreate_ImageURLsPersistInOrder() {
	input := validVehicleInput()
	input.Images = []models.ImagePayload{
		{Data: "aGVsbG8=", Name: "front.jpg", Type: "image/jpeg"},
		{Data: "d29ybGQ=", Name: "back.jpg", Type: "image/jpeg"},
	}
	urls := []string{"http://cdn/front.jpg", "http://cdn/back.jpg"}

	s.images.On("Ingest", mock.Anything, s.auth.DealerID, input.Images).Return(urls, nil)
	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(v *models.Vehicle) bool {
		return len(v.Images) == 2 && v.Images[0] == urls[0] && v.Images[1] == urls[1]
	})).Return(nil)
	s.cache.On("InvalidateDealer", mock.Anything, s.auth.DealerID).Return(nil)

	vehicle, err := s.svc.Create(s.ctx, s.auth, input)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), urls, vehicle.Images)
}

func (s *VehicleServiceTestSuite) TestCreate_UploadsDisabledPersistsEmptyList() {
	svc := NewVehicleService(s.repo, s.images, s.cache, true, zap.NewNop())

	input := validVehicleInput()
	input.Images = []models.ImagePayload{{Data: "aGVsbG8=", Name: "front.jpg"}}

	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(v *models.Vehicle) bool {
		return v.Images != nil && len(v.Images) == 0
	})).Return(nil)
	s.cache.On("InvalidateDealer", mock.Anything, s.auth.DealerID).Return(nil)

	_, err := svc.Create(s.ctx, s.auth, input)
	require.NoError(s.T(), err)
	s.images.AssertNotCalled(s.T(), "Ingest", mock.Anything, mock.Anything, mock.Anything)
}

func (s *VehicleServiceTestSuite) TestUpdateConsignment_NonAdminBlockedBeforeStorage() {
	input := &validation.ConsignmentUpdateInput{VehicleID: uuid.NewString()}

	_, err := s.svc.UpdateConsignment(s.ctx, s.auth, input)
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperrors.KindForbidden, apperrors.KindOf(err))
	s.repo.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything, mock.Anything)
	s.repo.AssertNotCalled(s.T(), "UpdateConsignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *VehicleServiceTestSuite) TestUpdateConsignment_MissingVehicleReadsAsNotFound() {
	vehicleID := uuid.New()
	raw := `{"concesionarioId": null}`
	input := consignmentInput(s.T(), vehicleID, raw)

	s.repo.On("GetByID", mock.Anything, s.adminAuth.DealerID, vehicleID).Return(nil, pgx.ErrNoRows)

	_, err := s.svc.UpdateConsignment(s.ctx, s.adminAuth, input)
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperrors.KindNotFound, apperrors.KindOf(err))
	s.repo.AssertNotCalled(s.T(), "UpdateConsignment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *VehicleServiceTestSuite) TestUpdateConsignment_ClearAssignment() {
	vehicleID := uuid.New()
	input := consignmentInput(s.T(), vehicleID, `{"concesionarioId": null}`)
	updated := &models.Vehicle{ID: vehicleID, DealerID: s.adminAuth.DealerID}

	s.repo.On("GetByID", mock.Anything, s.adminAuth.DealerID, vehicleID).
		Return(&models.VehicleWithRelations{}, nil)
	s.repo.On("UpdateConsignment", mock.Anything, s.adminAuth.DealerID, vehicleID, (*uuid.UUID)(nil)).
		Return(updated, nil)
	s.cache.On("InvalidateDealer", mock.Anything, s.adminAuth.DealerID).Return(nil)

	vehicle, err := s.svc.UpdateConsignment(s.ctx, s.adminAuth, input)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), vehicleID, vehicle.ID)
	s.repo.AssertExpectations(s.T())
}

func (s *VehicleServiceTestSuite) TestUpdateConsignment_EmptyPatchRejected() {
	input := consignmentInput(s.T(), uuid.New(), `{}`)

	_, err := s.svc.UpdateConsignment(s.ctx, s.adminAuth, input)
	require.Error(s.T(), err)
	assert.Equal(s.T(), apperrors.KindValidation, apperrors.KindOf(err))
	s.repo.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func consignmentInput(t *testing.T, vehicleID uuid.UUID, updateData string) *validation.ConsignmentUpdateInput {
	t.Helper()
	var data validation.ConsignmentUpdateData
	require.NoError(t, data.UnmarshalJSON([]byte(updateData)))
	return &validation.ConsignmentUpdateInput{VehicleID: vehicleID.String(), UpdateData: data}
}
