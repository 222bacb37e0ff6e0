package repositories

import (
	"context"

	"autogestor/internal/models"

	"github.com/google/uuid"
)

type ContractRepository interface {
	Create(ctx context.Context, contract *models.Contract) error
	List(ctx context.Context, dealerID uuid.UUID) ([]*models.Contract, error)
	CountActive(ctx context.Context, dealerID uuid.UUID) (int, error)
}

type contractRepo struct {
	db DB
}

func NewContractRepo(db DB) ContractRepository {
	return &contractRepo{db: db}
}

func (r *contractRepo) Create(ctx context.Context, contract *models.Contract) error {
	query := `
		INSERT INTO contracts (
			id, dealer_id, contract_number, status, client_id, vehicle_id,
			price, date, financing_type, down_payment, months, monthly_payment,
			notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		contract.ID, contract.DealerID, contract.ContractNumber, contract.Status,
		contract.ClientID, contract.VehicleID, contract.Price, contract.Date,
		contract.FinancingType, contract.DownPayment, contract.Months,
		contract.MonthlyPayment, contract.Notes,
	).Scan(&contract.CreatedAt, &contract.UpdatedAt)
}

func (r *contractRepo) List(ctx context.Context, dealerID uuid.UUID) ([]*models.Contract, error) {
	query := `
		SELECT id, dealer_id, contract_number, status, client_id, vehicle_id,
		       price, date, financing_type, down_payment, months, monthly_payment,
		       notes, created_at, updated_at
		FROM contracts
		WHERE dealer_id = $1
		ORDER BY contract_number DESC
	`
	rows, err := r.db.Query(ctx, query, dealerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []*models.Contract
	for rows.Next() {
		contract := &models.Contract{}
		if err := rows.Scan(
			&contract.ID, &contract.DealerID, &contract.ContractNumber,
			&contract.Status, &contract.ClientID, &contract.VehicleID,
			&contract.Price, &contract.Date, &contract.FinancingType,
			&contract.DownPayment, &contract.Months, &contract.MonthlyPayment,
			&contract.Notes, &contract.CreatedAt, &contract.UpdatedAt,
		); err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, rows.Err()
}

func (r *contractRepo) CountActive(ctx context.Context, dealerID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM contracts WHERE dealer_id = $1 AND status = 'active'`
	err := r.db.QueryRow(ctx, query, dealerID).Scan(&count)
	return count, err
}
