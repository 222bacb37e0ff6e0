package repositories

import (
	"context"

	"autogestor/internal/models"

	"github.com/google/uuid"
)

type ConcesionarioRepository interface {
	Create(ctx context.Context, concesionario *models.Concesionario) error
	GetByID(ctx context.Context, dealerID, id uuid.UUID) (*models.Concesionario, error)
	List(ctx context.Context, dealerID uuid.UUID) ([]*models.Concesionario, error)
}

type concesionarioRepo struct {
	db DB
}

func NewConcesionarioRepo(db DB) ConcesionarioRepository {
	return &concesionarioRepo{db: db}
}

func (r *concesionarioRepo) Create(ctx context.Context, concesionario *models.Concesionario) error {
	query := `
		INSERT INTO concesionarios (id, dealer_id, name, contact_name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		concesionario.ID, concesionario.DealerID, concesionario.Name,
		concesionario.ContactName, concesionario.Email, concesionario.Phone,
		concesionario.Address,
	).Scan(&concesionario.CreatedAt, &concesionario.UpdatedAt)
}

func (r *concesionarioRepo) GetByID(ctx context.Context, dealerID, id uuid.UUID) (*models.Concesionario, error) {
	concesionario := &models.Concesionario{}
	query := `
		SELECT id, dealer_id, name, contact_name, email, phone, address, created_at, updated_at
		FROM concesionarios
		WHERE dealer_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, dealerID, id).Scan(
		&concesionario.ID, &concesionario.DealerID, &concesionario.Name,
		&concesionario.ContactName, &concesionario.Email, &concesionario.Phone,
		&concesionario.Address, &concesionario.CreatedAt, &concesionario.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return concesionario, nil
}

func (r *concesionarioRepo) List(ctx context.Context, dealerID uuid.UUID) ([]*models.Concesionario, error) {
	query := `
		SELECT id, dealer_id, name, contact_name, email, phone, address, created_at, updated_at
		FROM concesionarios
		WHERE dealer_id = $1
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, dealerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var concesionarios []*models.Concesionario
	for rows.Next() {
		concesionario := &models.Concesionario{}
		if err := rows.Scan(
			&concesionario.ID, &concesionario.DealerID, &concesionario.Name,
			&concesionario.ContactName, &concesionario.Email, &concesionario.Phone,
			&concesionario.Address, &concesionario.CreatedAt, &concesionario.UpdatedAt,
		); err != nil {
			return nil, err
		}
		concesionarios = append(concesionarios, concesionario)
	}
	return concesionarios, rows.Err()
}
