package repositories

import (
	"context"
	"time"

	"autogestor/internal/models"

	"github.com/google/uuid"
)

type InsuranceRepository interface {
	Create(ctx context.Context, insurance *models.Insurance) error
	List(ctx context.Context, dealerID uuid.UUID) ([]*models.Insurance, error)
	CountByStatus(ctx context.Context, dealerID uuid.UUID) (map[string]int, error)
	// MarkExpired flips active/expiring policies whose expiry date has
	// passed; MarkExpiringSoon flips active policies expiring within the
	// window. Both run across all dealers (maintenance, not a request path).
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
	MarkExpiringSoon(ctx context.Context, now time.Time, window time.Duration) (int64, error)
}

type insuranceRepo struct {
	db DB
}

func NewInsuranceRepo(db DB) InsuranceRepository {
	return &insuranceRepo{db: db}
}

func (r *insuranceRepo) Create(ctx context.Context, insurance *models.Insurance) error {
	query := `
		INSERT INTO insurance (
			id, dealer_id, vehicle_id, client_id, contract_id, start_date,
			expiry_date, coverage_type, coverage_duration, premium, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		insurance.ID, insurance.DealerID, insurance.VehicleID, insurance.ClientID,
		insurance.ContractID, insurance.StartDate, insurance.ExpiryDate,
		insurance.CoverageType, insurance.CoverageDuration, insurance.Premium,
		insurance.Status,
	).Scan(&insurance.CreatedAt, &insurance.UpdatedAt)
}

func (r *insuranceRepo) List(ctx context.Context, dealerID uuid.UUID) ([]*models.Insurance, error) {
	query := `
		SELECT id, dealer_id, vehicle_id, client_id, contract_id, start_date,
		       expiry_date, coverage_type, coverage_duration, premium, status,
		       created_at, updated_at
		FROM insurance
		WHERE dealer_id = $1
		ORDER BY expiry_date
	`
	rows, err := r.db.Query(ctx, query, dealerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []*models.Insurance
	for rows.Next() {
		policy := &models.Insurance{}
		if err := rows.Scan(
			&policy.ID, &policy.DealerID, &policy.VehicleID, &policy.ClientID,
			&policy.ContractID, &policy.StartDate, &policy.ExpiryDate,
			&policy.CoverageType, &policy.CoverageDuration, &policy.Premium,
			&policy.Status, &policy.CreatedAt, &policy.UpdatedAt,
		); err != nil {
			return nil, err
		}
		policies = append(policies, policy)
	}
	return policies, rows.Err()
}

func (r *insuranceRepo) CountByStatus(ctx context.Context, dealerID uuid.UUID) (map[string]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM insurance
		WHERE dealer_id = $1
		GROUP BY status
	`
	rows, err := r.db.Query(ctx, query, dealerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

func (r *insuranceRepo) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE insurance
		SET status = 'expired', updated_at = NOW()
		WHERE status IN ('active', 'expiring_soon') AND expiry_date < $1
	`
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *insuranceRepo) MarkExpiringSoon(ctx context.Context, now time.Time, window time.Duration) (int64, error) {
	query := `
		UPDATE insurance
		SET status = 'expiring_soon', updated_at = NOW()
		WHERE status = 'active' AND expiry_date >= $1 AND expiry_date <= $2
	`
	tag, err := r.db.Exec(ctx, query, now, now.Add(window))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
