package models

import (
	"time"

	"github.com/google/uuid"
)

// Concesionario is a consignment partner dealer that vehicles can be
// assigned to. Not to be confused with the tenant (Dealer).
type Concesionario struct {
	ID          uuid.UUID `json:"id" db:"id"`
	DealerID    uuid.UUID `json:"dealer_id" db:"dealer_id"`
	Name        string    `json:"name" db:"name"`
	ContactName string    `json:"contact_name" db:"contact_name"`
	Email       *string   `json:"email" db:"email"`
	Phone       *string   `json:"phone" db:"phone"`
	Address     string    `json:"address" db:"address"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ConcesionarioWithVehicles is the get-by-id projection with the
// vehicles currently assigned to the partner.
type ConcesionarioWithVehicles struct {
	Concesionario
	Vehicles []*Vehicle `json:"vehicles"`
}
