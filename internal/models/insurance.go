package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	InsuranceStatusActive       = "active"
	InsuranceStatusExpiringSoon = "expiring_soon"
	InsuranceStatusExpired      = "expired"
	InsuranceStatusCancelled    = "cancelled"
)

const (
	CoverageMotorTransmission = "motor_transmission"
	CoverageFull              = "full"
	CoverageBasic             = "basic"
)

type Insurance struct {
	ID               uuid.UUID  `json:"id" db:"id"`
	DealerID         uuid.UUID  `json:"dealer_id" db:"dealer_id"`
	VehicleID        uuid.UUID  `json:"vehicle_id" db:"vehicle_id"`
	ClientID         *uuid.UUID `json:"client_id" db:"client_id"`
	ContractID       *uuid.UUID `json:"contract_id" db:"contract_id"`
	StartDate        time.Time  `json:"start_date" db:"start_date"`
	ExpiryDate       time.Time  `json:"expiry_date" db:"expiry_date"`
	CoverageType     string     `json:"coverage_type" db:"coverage_type"`
	CoverageDuration int        `json:"coverage_duration" db:"coverage_duration"`
	Premium          float64    `json:"premium" db:"premium"`
	Status           string     `json:"status" db:"status"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}
