package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/shopmeco/backend/internal/db"
	"github.com/shopmeco/backend/internal/repository"
	"github.com/shopmeco/backend/internal/storage"
)

type VehicleRepo struct {
	db db.DB
}

func NewVehicleRepo(db db.DB) storage.VehicleRepository {
	return &VehicleRepo{db: db}
}

func (r *VehicleRepo) Create(ctx context.Context, vehicle *repository.Vehicle) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO vehicles (
            id, owner_id, make, model, year, license_plate, mileage,
            maintenance_record_ids, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, vehicle.ID, vehicle.OwnerID, vehicle.Make, vehicle.Model, vehicle.Year,
		vehicle.LicensePlate, vehicle.Mileage, vehicle.MaintenanceRecordIDs,
		vehicle.CreatedAt, vehicle.UpdatedAt)
	return err
}

func (r *VehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Vehicle, error) {
	var vehicle repository.Vehicle
	err := r.db.Get(ctx, &vehicle, "SELECT * FROM vehicles WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepo) Update(ctx context.Context, vehicle *repository.Vehicle) error {
	_, err := r.db.Exec(ctx, `
        UPDATE vehicles
        SET
            make = $1,
            model = $2,
            year = $3,
            license_plate = $4,
            mileage = $5,
            updated_at = $6
        WHERE id = $7
    `, vehicle.Make, vehicle.Model, vehicle.Year, vehicle.LicensePlate,
		vehicle.Mileage, vehicle.UpdatedAt, vehicle.ID)
	return err
}

func (r *VehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM vehicles WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *VehicleRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*repository.Vehicle, error) {
	var vehicles []*repository.Vehicle
	err := r.db.Select(ctx, &vehicles, `
        SELECT * FROM vehicles
        WHERE owner_id = $1
        ORDER BY created_at DESC
    `, ownerID)
	return vehicles, err
}

func (r *VehicleRepo) GetAll(ctx context.Context) ([]*repository.Vehicle, error) {
	var vehicles []*repository.Vehicle
	err := r.db.Select(ctx, &vehicles, "SELECT * FROM vehicles ORDER BY created_at DESC")
	return vehicles, err
}

func (r *VehicleRepo) AppendMaintenanceRecordTx(ctx context.Context, tx db.Tx, vehicleID, recordID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
        UPDATE vehicles
        SET maintenance_record_ids = array_append(maintenance_record_ids, $1)
        WHERE id = $2
    `, recordID, vehicleID)
	return err
}
