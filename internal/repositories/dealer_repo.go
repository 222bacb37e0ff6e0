package repositories

import (
	"context"

	"autogestor/internal/models"

	"github.com/google/uuid"
)

type DealerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Dealer, error)
}

type dealerRepo struct {
	db DB
}

func NewDealerRepo(db DB) DealerRepository {
	return &dealerRepo{db: db}
}

func (r *dealerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Dealer, error) {
	dealer := &models.Dealer{}
	query := `
		SELECT id, business_name, created_at, updated_at
		FROM dealers
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&dealer.ID, &dealer.BusinessName, &dealer.CreatedAt, &dealer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return dealer, nil
}
