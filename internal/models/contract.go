package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContractStatusActive    = "active"
	ContractStatusPending   = "pending"
	ContractStatusCompleted = "completed"
)

const (
	FinancingTypeCash      = "cash"
	FinancingTypeFinancing = "financing"
)

type Contract struct {
	ID             uuid.UUID `json:"id" db:"id"`
	DealerID       uuid.UUID `json:"dealer_id" db:"dealer_id"`
	ContractNumber string    `json:"contract_number" db:"contract_number"`
	Status         string    `json:"status" db:"status"`
	ClientID       uuid.UUID `json:"client_id" db:"client_id"`
	VehicleID      uuid.UUID `json:"vehicle_id" db:"vehicle_id"`
	Price          float64   `json:"price" db:"price"`
	Date           time.Time `json:"date" db:"date"`
	FinancingType  string    `json:"financing_type" db:"financing_type"`
	DownPayment    *float64  `json:"down_payment" db:"down_payment"`
	Months         *int      `json:"months" db:"months"`
	MonthlyPayment *float64  `json:"monthly_payment" db:"monthly_payment"`
	Notes          *string   `json:"notes" db:"notes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
