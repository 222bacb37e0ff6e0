package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle statuses form a closed set; anything else is rejected at validation.
const (
	VehicleStatusAvailable   = "available"
	VehicleStatusSold        = "sold"
	VehicleStatusReserved    = "reserved"
	VehicleStatusInProcess   = "in_process"
	VehicleStatusMaintenance = "maintenance"
)

const (
	VehicleConditionNew  = "new"
	VehicleConditionUsed = "used"
)

type Vehicle struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	DealerID        uuid.UUID  `json:"dealer_id" db:"dealer_id"`
	ConcesionarioID *uuid.UUID `json:"concesionario_id" db:"concesionario_id"`
	Brand           string     `json:"brand" db:"brand"`
	Model           string     `json:"model" db:"model"`
	Year            int        `json:"year" db:"year"`
	Trim            *string    `json:"trim" db:"trim"`
	VehicleType     string     `json:"vehicle_type" db:"vehicle_type"`
	Color           string     `json:"color" db:"color"`
	Status          string     `json:"status" db:"status"`
	Condition       string     `json:"condition" db:"condition"`
	Images          []string   `json:"images" db:"images"`
	Description     *string    `json:"description" db:"description"`
	Transmission    *string    `json:"transmission" db:"transmission"`
	FuelType        *string    `json:"fuel_type" db:"fuel_type"`
	EngineSize      *string    `json:"engine_size" db:"engine_size"`
	Plate           *string    `json:"plate" db:"plate"`
	VIN             string     `json:"vin" db:"vin"`
	Mileage         *int       `json:"mileage" db:"mileage"`
	Doors           int        `json:"doors" db:"doors"`
	Seats           int        `json:"seats" db:"seats"`
	Price           float64    `json:"price" db:"price"`
	HasOffer        bool       `json:"has_offer" db:"has_offer"`
	OfferPrice      *float64   `json:"offer_price" db:"offer_price"`
	AdminStatus     *string    `json:"admin_status" db:"admin_status"`
	InMaintenance   bool       `json:"in_maintenance" db:"in_maintenance"`
	EntryDate       *time.Time `json:"entry_date" db:"entry_date"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// ConcesionarioRef is the joined summary of the consignment partner a
// vehicle is assigned to.
type ConcesionarioRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PurchasedBy attributes a vehicle to the client of its most recent
// completed contract. Derived at read time; never written.
type PurchasedBy struct {
	ContractID     uuid.UUID `json:"contract_id"`
	ContractNumber string    `json:"contract_number"`
	Date           time.Time `json:"date"`
	ClientID       uuid.UUID `json:"client_id"`
	ClientName     string    `json:"client_name"`
	ClientCedula   string    `json:"client_cedula"`
}

// VehicleWithRelations is the read projection for vehicle list/detail.
type VehicleWithRelations struct {
	Vehicle
	Concesionario *ConcesionarioRef `json:"concesionario"`
	PurchasedBy   *PurchasedBy      `json:"purchased_by"`
}

// ImagePayload is a client-supplied base64 image attached to a vehicle
// creation request.
type ImagePayload struct {
	Data string `json:"data"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}
