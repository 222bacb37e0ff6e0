package repositories

import (
	"context"

	"autogestor/internal/models"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetWithDealer(ctx context.Context, id uuid.UUID) (*models.ProfileWithDealer, error)
}

type profileRepo struct {
	db DB
}

func NewProfileRepo(db DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT id, dealer_id, role, full_name, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID, &profile.DealerID, &profile.Role, &profile.FullName,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *profileRepo) GetWithDealer(ctx context.Context, id uuid.UUID) (*models.ProfileWithDealer, error) {
	result := &models.ProfileWithDealer{}
	query := `
		SELECT p.id, p.dealer_id, p.role, p.full_name, p.created_at, p.updated_at,
		       d.id, d.business_name
		FROM profiles p
		JOIN dealers d ON d.id = p.dealer_id
		WHERE p.id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&result.ID, &result.DealerID, &result.Role, &result.FullName,
		&result.CreatedAt, &result.UpdatedAt,
		&result.Dealer.ID, &result.Dealer.BusinessName,
	)
	if err != nil {
		return nil, err
	}
	return result, nil
}
