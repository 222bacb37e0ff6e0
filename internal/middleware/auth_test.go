package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autogestor/internal/common"
	"autogestor/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetWithDealer(ctx context.Context, id uuid.UUID) (*models.ProfileWithDealer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfileWithDealer), args.Error(1)
}

func signToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func runRequest(repo *MockProfileRepository, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/vehicles", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(repo, NewHSVerifier(testSecret), zap.NewNop())(next)
	_ = handler(c)
	return rec
}

func TestAuth_MissingHeader(t *testing.T) {
	repo := new(MockProfileRepository)

	rec := runRequest(repo, "", func(c echo.Context) error {
		t.Fatal("handler must not run without credentials")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestAuth_MalformedToken(t *testing.T) {
	repo := new(MockProfileRepository)

	rec := runRequest(repo, "Bearer not-a-jwt", func(c echo.Context) error {
		t.Fatal("handler must not run with a bad token")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_WrongSignature(t *testing.T) {
	repo := new(MockProfileRepository)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: uuid.NewString(),
	})
	signed, err := token.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	rec := runRequest(repo, "Bearer "+signed, func(c echo.Context) error {
		t.Fatal("handler must not run with a forged token")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_UserWithoutProfile(t *testing.T) {
	repo := new(MockProfileRepository)
	userID := uuid.New()
	repo.On("GetByID", mock.Anything, userID).Return(nil, pgx.ErrNoRows)

	rec := runRequest(repo, "Bearer "+signToken(t, userID.String()), func(c echo.Context) error {
		t.Fatal("handler must not run without a dealer")
		return nil
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_DEALER")
}

func TestAuth_ResolvesDealerAndRole(t *testing.T) {
	repo := new(MockProfileRepository)
	userID := uuid.New()
	dealerID := uuid.New()
	repo.On("GetByID", mock.Anything, userID).Return(&models.Profile{
		ID:       userID,
		DealerID: dealerID,
		Role:     models.RoleAdmin,
	}, nil)

	var seen common.Auth
	rec := runRequest(repo, "Bearer "+signToken(t, userID.String()), func(c echo.Context) error {
		auth, ok := common.AuthFromContext(c.Request().Context())
		require.True(t, ok)
		seen = auth
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seen.UserID)
	assert.Equal(t, dealerID, seen.DealerID)
	assert.True(t, seen.IsAdmin)
}

func TestAuth_NonAdminRoleFailsClosed(t *testing.T) {
	repo := new(MockProfileRepository)
	userID := uuid.New()
	repo.On("GetByID", mock.Anything, userID).Return(&models.Profile{
		ID:       userID,
		DealerID: uuid.New(),
		Role:     "seller",
	}, nil)

	rec := runRequest(repo, "Bearer "+signToken(t, userID.String()), func(c echo.Context) error {
		auth, ok := common.AuthFromContext(c.Request().Context())
		require.True(t, ok)
		assert.False(t, auth.IsAdmin)
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}
