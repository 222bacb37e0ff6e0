package repositories

import (
	"context"

	"autogestor/internal/models"

	"github.com/google/uuid"
)

type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, dealerID, id uuid.UUID) (*models.Client, error)
	List(ctx context.Context, dealerID uuid.UUID) ([]*models.Client, error)
	Count(ctx context.Context, dealerID uuid.UUID) (int, error)
}

type clientRepo struct {
	db DB
}

func NewClientRepo(db DB) ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *models.Client) error {
	query := `
		INSERT INTO clients (id, dealer_id, cedula, name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		client.ID, client.DealerID, client.Cedula, client.Name,
		client.Email, client.Phone, client.Address,
	).Scan(&client.CreatedAt, &client.UpdatedAt)
}

func (r *clientRepo) GetByID(ctx context.Context, dealerID, id uuid.UUID) (*models.Client, error) {
	client := &models.Client{}
	query := `
		SELECT id, dealer_id, cedula, name, email, phone, address, created_at, updated_at
		FROM clients
		WHERE dealer_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, dealerID, id).Scan(
		&client.ID, &client.DealerID, &client.Cedula, &client.Name,
		&client.Email, &client.Phone, &client.Address,
		&client.CreatedAt, &client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (r *clientRepo) List(ctx context.Context, dealerID uuid.UUID) ([]*models.Client, error) {
	query := `
		SELECT id, dealer_id, cedula, name, email, phone, address, created_at, updated_at
		FROM clients
		WHERE dealer_id = $1
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, dealerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		client := &models.Client{}
		if err := rows.Scan(
			&client.ID, &client.DealerID, &client.Cedula, &client.Name,
			&client.Email, &client.Phone, &client.Address,
			&client.CreatedAt, &client.UpdatedAt,
		); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (r *clientRepo) Count(ctx context.Context, dealerID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM clients WHERE dealer_id = $1`, dealerID).Scan(&count)
	return count, err
}
