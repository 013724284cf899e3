package postgresql

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/db"
	"github.com/shopmeco/backend/internal/repository"
	"github.com/shopmeco/backend/internal/storage"
)

type MaintenanceRepo struct {
	db db.DB
}

func NewMaintenanceRepo(db db.DB) storage.MaintenanceRepository {
	return &MaintenanceRepo{db: db}
}

func (r *MaintenanceRepo) CreateTx(ctx context.Context, tx db.Tx, record *repository.MaintenanceRecord) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO maintenance_records (
            id, vehicle_id, service_request_id, service_type, description,
            final_cost, service_date, mileage, notes, receipts, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, record.ID, record.VehicleID, record.ServiceRequestID, record.ServiceType,
		record.Description, record.FinalCost, record.ServiceDate, record.Mileage,
		record.Notes, record.Receipts, record.CreatedAt)
	return err
}

func (r *MaintenanceRepo) GetByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*repository.MaintenanceRecord, error) {
	var records []*repository.MaintenanceRecord
	err := r.db.Select(ctx, &records, `
        SELECT * FROM maintenance_records
        WHERE vehicle_id = $1
        ORDER BY service_date DESC
    `, vehicleID)
	return records, err
}
