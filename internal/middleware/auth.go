package middleware

import (
	"errors"
	"net/http"
	"strings"

	"autogestor/internal/apperrors"
	"autogestor/internal/common"
	"autogestor/internal/repositories"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TokenVerifier is the auth provider boundary: bearer token in, subject
// identity out. Verification failures of any kind mean "no user".
type TokenVerifier interface {
	Verify(tokenString string) (uuid.UUID, error)
}

type hsVerifier struct {
	secret []byte
}

// NewHSVerifier verifies HS256 tokens signed with a shared secret.
func NewHSVerifier(secret string) TokenVerifier {
	return &hsVerifier{secret: []byte(secret)}
}

func (v *hsVerifier) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return subjectUUID(token)
}

type jwksVerifier struct {
	jwks *keyfunc.JWKS
}

// NewJWKSVerifier verifies tokens against an external JWKS endpoint
// (hosted auth providers publish one). The key set refreshes in the
// background; a fetch failure surfaces as a verification error, which
// the middleware downgrades to "no user".
func NewJWKSVerifier(jwksURL string) (TokenVerifier, error) {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{})
	if err != nil {
		return nil, err
	}
	return &jwksVerifier{jwks: jwks}, nil
}

func (v *jwksVerifier) Verify(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, v.jwks.Keyfunc)
	if err != nil {
		return uuid.Nil, err
	}
	return subjectUUID(token)
}

func subjectUUID(token *jwt.Token) (uuid.UUID, error) {
	if !token.Valid {
		return uuid.Nil, errors.New("token not valid")
	}
	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

// Auth resolves the acting user and their dealer once per request and
// threads {userID, dealerID, isAdmin} into the request context. Token
// problems, including transient provider failures, read as "no user";
// a user without a profile row is rejected as having no dealer.
func Auth(profileRepo repositories.ProfileRepository, verifier TokenVerifier, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if authHeader == "" || tokenString == authHeader {
				return common.RespondError(c, apperrors.Unauthorized())
			}

			userID, err := verifier.Verify(tokenString)
			if err != nil {
				logger.Debug("token verification failed", zap.Error(err))
				return common.RespondError(c, apperrors.Unauthorized())
			}

			profile, err := profileRepo.GetByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return common.RespondError(c, apperrors.NoDealer())
				}
				logger.Error("profile lookup failed", zap.Error(err))
				return echo.NewHTTPError(http.StatusInternalServerError, "profile lookup failed")
			}

			auth := common.Auth{
				UserID:   userID,
				DealerID: profile.DealerID,
				// Fail-closed: anything but an explicit admin role is non-admin.
				IsAdmin: profile.IsAdmin(),
			}
			c.SetRequest(c.Request().WithContext(common.WithAuth(c.Request().Context(), auth)))

			return next(c)
		}
	}
}
