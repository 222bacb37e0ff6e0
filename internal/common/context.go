package common

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	DealerIDKey contextKey = "dealer_id"
	IsAdminKey  contextKey = "is_admin"
)

// Auth is the per-request identity context resolved once at the
// transport boundary and threaded explicitly into every service call.
// Repositories never re-derive tenant identity on their own.
type Auth struct {
	UserID   uuid.UUID
	DealerID uuid.UUID
	IsAdmin  bool
}

func WithAuth(ctx context.Context, auth Auth) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, auth.UserID)
	ctx = context.WithValue(ctx, DealerIDKey, auth.DealerID)
	return context.WithValue(ctx, IsAdminKey, auth.IsAdmin)
}

// AuthFromContext extracts the resolved identity; ok is false when the
// request never went through the auth middleware.
func AuthFromContext(ctx context.Context) (Auth, bool) {
	userID, okUser := ctx.Value(UserIDKey).(uuid.UUID)
	dealerID, okDealer := ctx.Value(DealerIDKey).(uuid.UUID)
	if !okUser || !okDealer {
		return Auth{}, false
	}
	isAdmin, _ := ctx.Value(IsAdminKey).(bool)
	return Auth{UserID: userID, DealerID: dealerID, IsAdmin: isAdmin}, true
}
