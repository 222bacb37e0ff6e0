package repositories

import (
	"context"
	"time"

	"autogestor/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, dealerID, id uuid.UUID) (*models.VehicleWithRelations, error)
	List(ctx context.Context, dealerID uuid.UUID) ([]*models.VehicleWithRelations, error)
	ListByConcesionario(ctx context.Context, dealerID, concesionarioID uuid.UUID) ([]*models.Vehicle, error)
	UpdateConsignment(ctx context.Context, dealerID, id uuid.UUID, concesionarioID *uuid.UUID) (*models.Vehicle, error)
	CountByStatus(ctx context.Context, dealerID uuid.UUID) (map[string]int, error)
}

type vehicleRepo struct {
	db DB
}

func NewVehicleRepo(db DB) VehicleRepository {
	return &vehicleRepo{db: db}
}

const vehicleColumns = `
	v.id, v.dealer_id, v.concesionario_id, v.brand, v.model, v.year, v.trim,
	v.vehicle_type, v.color, v.status, v.condition, v.images, v.description,
	v.transmission, v.fuel_type, v.engine_size, v.plate, v.vin, v.mileage,
	v.doors, v.seats, v.price, v.has_offer, v.offer_price, v.admin_status,
	v.in_maintenance, v.entry_date, v.created_at, v.updated_at`

// vehicleRelationQuery joins the assigned concesionario and, through a
// lateral subquery, the most recent completed contract with its client.
// That contract is the source of the derived purchased-by attribution.
const vehicleRelationQuery = `
	SELECT` + vehicleColumns + `,
	       co.id, co.name,
	       ct.id, ct.contract_number, ct.date, cl.id, cl.name, cl.cedula
	FROM vehicles v
	LEFT JOIN concesionarios co
	       ON co.id = v.concesionario_id AND co.dealer_id = v.dealer_id
	LEFT JOIN LATERAL (
	       SELECT c.id, c.contract_number, c.date, c.client_id
	       FROM contracts c
	       WHERE c.vehicle_id = v.id AND c.dealer_id = v.dealer_id AND c.status = 'completed'
	       ORDER BY c.date DESC
	       LIMIT 1
	) ct ON true
	LEFT JOIN clients cl ON cl.id = ct.client_id AND cl.dealer_id = v.dealer_id
	WHERE v.dealer_id = $1`

func (r *vehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (
			id, dealer_id, concesionario_id, brand, model, year, trim,
			vehicle_type, color, status, condition, images, description,
			transmission, fuel_type, engine_size, plate, vin, mileage,
			doors, seats, price, has_offer, offer_price, admin_status,
			in_maintenance, entry_date, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		vehicle.ID, vehicle.DealerID, vehicle.ConcesionarioID, vehicle.Brand,
		vehicle.Model, vehicle.Year, vehicle.Trim, vehicle.VehicleType,
		vehicle.Color, vehicle.Status, vehicle.Condition, vehicle.Images,
		vehicle.Description, vehicle.Transmission, vehicle.FuelType,
		vehicle.EngineSize, vehicle.Plate, vehicle.VIN, vehicle.Mileage,
		vehicle.Doors, vehicle.Seats, vehicle.Price, vehicle.HasOffer,
		vehicle.OfferPrice, vehicle.AdminStatus, vehicle.InMaintenance,
		vehicle.EntryDate,
	).Scan(&vehicle.CreatedAt, &vehicle.UpdatedAt)
}

func (r *vehicleRepo) GetByID(ctx context.Context, dealerID, id uuid.UUID) (*models.VehicleWithRelations, error) {
	row := r.db.QueryRow(ctx, vehicleRelationQuery+` AND v.id = $2`, dealerID, id)
	return scanVehicleWithRelations(row)
}

func (r *vehicleRepo) List(ctx context.Context, dealerID uuid.UUID) ([]*models.VehicleWithRelations, error) {
	rows, err := r.db.Query(ctx, vehicleRelationQuery+` ORDER BY v.brand, v.model`, dealerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*models.VehicleWithRelations
	for rows.Next() {
		vehicle, err := scanVehicleWithRelations(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepo) ListByConcesionario(ctx context.Context, dealerID, concesionarioID uuid.UUID) ([]*models.Vehicle, error) {
	query := `
		SELECT` + vehicleColumns + `
		FROM vehicles v
		WHERE v.dealer_id = $1 AND v.concesionario_id = $2
		ORDER BY v.brand, v.model
	`
	rows, err := r.db.Query(ctx, query, dealerID, concesionarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*models.Vehicle
	for rows.Next() {
		vehicle := &models.Vehicle{}
		if err := scanVehicle(rows, vehicle); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, rows.Err()
}

// UpdateConsignment reassigns the consignment partner. The dealer_id
// filter makes a cross-tenant id behave exactly like a missing one:
// zero rows, pgx.ErrNoRows from the RETURNING scan.
func (r *vehicleRepo) UpdateConsignment(ctx context.Context, dealerID, id uuid.UUID, concesionarioID *uuid.UUID) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{}
	query := `
		UPDATE vehicles v
		SET concesionario_id = $3, updated_at = NOW()
		WHERE v.dealer_id = $1 AND v.id = $2
		RETURNING` + vehicleColumns
	row := r.db.QueryRow(ctx, query, dealerID, id, concesionarioID)
	if err := scanVehicle(row, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (r *vehicleRepo) CountByStatus(ctx context.Context, dealerID uuid.UUID) (map[string]int, error) {
	query := `
		SELECT status, COUNT(*)
		FROM vehicles
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

func scanVehicle(row pgx.Row, v *models.Vehicle) error {
	return row.Scan(
		&v.ID, &v.DealerID, &v.ConcesionarioID, &v.Brand, &v.Model, &v.Year,
		&v.Trim, &v.VehicleType, &v.Color, &v.Status, &v.Condition, &v.Images,
		&v.Description, &v.Transmission, &v.FuelType, &v.EngineSize, &v.Plate,
		&v.VIN, &v.Mileage, &v.Doors, &v.Seats, &v.Price, &v.HasOffer,
		&v.OfferPrice, &v.AdminStatus, &v.InMaintenance, &v.EntryDate,
		&v.CreatedAt, &v.UpdatedAt,
	)
}

func scanVehicleWithRelations(row pgx.Row) (*models.VehicleWithRelations, error) {
	result := &models.VehicleWithRelations{}
	var (
		coID           *uuid.UUID
		coName         *string
		contractID     *uuid.UUID
		contractNumber *string
		contractDate   *time.Time
		clientID       *uuid.UUID
		clientName     *string
		clientCedula   *string
	)
	v := &result.Vehicle
	err := row.Scan(
		&v.ID, &v.DealerID, &v.ConcesionarioID, &v.Brand, &v.Model, &v.Year,
		&v.Trim, &v.VehicleType, &v.Color, &v.Status, &v.Condition, &v.Images,
		&v.Description, &v.Transmission, &v.FuelType, &v.EngineSize, &v.Plate,
		&v.VIN, &v.Mileage, &v.Doors, &v.Seats, &v.Price, &v.HasOffer,
		&v.OfferPrice, &v.AdminStatus, &v.InMaintenance, &v.EntryDate,
		&v.CreatedAt, &v.UpdatedAt,
		&coID, &coName,
		&contractID, &contractNumber, &contractDate, &clientID, &clientName, &clientCedula,
	)
	if err != nil {
		return nil, err
	}
	if coID != nil && coName != nil {
		result.Concesionario = &models.ConcesionarioRef{ID: *coID, Name: *coName}
	}
	if contractID != nil && clientID != nil {
		result.PurchasedBy = &models.PurchasedBy{
			ContractID:     *contractID,
			ContractNumber: derefString(contractNumber),
			Date:           derefTime(contractDate),
			ClientID:       *clientID,
			ClientName:     derefString(clientName),
			ClientCedula:   derefString(clientCedula),
		}
	}
	return result, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
