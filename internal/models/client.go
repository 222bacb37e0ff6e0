package models

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID        uuid.UUID `json:"id" db:"id"`
	DealerID  uuid.UUID `json:"dealer_id" db:"dealer_id"`
	Cedula    string    `json:"cedula" db:"cedula"`
	Name      string    `json:"name" db:"name"`
	Email     *string   `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
