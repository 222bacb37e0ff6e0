package models

import (
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

// Profile links an authenticated identity to its owning dealer.
// The profile ID matches the auth provider's subject claim.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	DealerID  uuid.UUID `json:"dealer_id" db:"dealer_id"`
	Role      string    `json:"role" db:"role"`
	FullName  *string   `json:"full_name" db:"full_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// ProfileWithDealer is the /me projection: the profile row plus a
// summary of the dealer it belongs to.
type ProfileWithDealer struct {
	Profile
	Dealer DealerSummary `json:"dealer"`
}

type DealerSummary struct {
	ID           uuid.UUID `json:"id" db:"id"`
	BusinessName string    `json:"business_name" db:"business_name"`
}
