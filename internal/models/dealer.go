package models

import (
	"time"

	"github.com/google/uuid"
)

type Dealer struct {
	ID           uuid.UUID `json:"id" db:"id"`
	BusinessName string    `json:"business_name" db:"business_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
