package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/shopmeco/backend/internal/db"
	"github.com/shopmeco/backend/internal/repository"
	"github.com/shopmeco/backend/internal/storage"
)

type ServiceRequestRepo struct {
	db db.DB
}

func NewServiceRequestRepo(db db.DB) storage.ServiceRequestRepository {
	return &ServiceRequestRepo{db: db}
}

func (r *ServiceRequestRepo) Create(ctx context.Context, request *repository.ServiceRequest) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO service_requests (
            id, owner_id, vehicle_id, repairer_id, service_type, description, status,
            preferred_date, scheduled_date, estimated_cost, final_cost,
            completion_date, maintenance_record_id, rating_average, rating_count,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
    `, request.ID, request.OwnerID, request.VehicleID, request.RepairerID,
		request.ServiceType, request.Description, request.Status,
		request.PreferredDate, request.ScheduledDate, request.EstimatedCost, request.FinalCost,
		request.CompletionDate, request.MaintenanceRecordID, request.RatingAverage,
		request.RatingCount, request.CreatedAt, request.UpdatedAt)
	return err
}

func (r *ServiceRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.ServiceRequest, error) {
	var request repository.ServiceRequest
	err := r.db.Get(ctx, &request, "SELECT * FROM service_requests WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *ServiceRequestRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.ServiceRequest, error) {
	var request repository.ServiceRequest
	err := tx.Get(ctx, &request, "SELECT * FROM service_requests WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &request, nil
}

const updateServiceRequestQuery = `
    UPDATE service_requests
    SET
        repairer_id = $1,
        service_type = $2,
        description = $3,
        status = $4,
        preferred_date = $5,
        scheduled_date = $6,
        estimated_cost = $7,
        final_cost = $8,
        completion_date = $9,
        maintenance_record_id = $10,
        updated_at = $11
    WHERE id = $12
`

func (r *ServiceRequestRepo) Update(ctx context.Context, request *repository.ServiceRequest) error {
	_, err := r.db.Exec(ctx, updateServiceRequestQuery,
		request.RepairerID, request.ServiceType, request.Description, request.Status,
		request.PreferredDate, request.ScheduledDate, request.EstimatedCost,
		request.FinalCost, request.CompletionDate, request.MaintenanceRecordID,
		request.UpdatedAt, request.ID)
	return err
}

func (r *ServiceRequestRepo) UpdateTx(ctx context.Context, tx db.Tx, request *repository.ServiceRequest) error {
	_, err := tx.Exec(ctx, updateServiceRequestQuery,
		request.RepairerID, request.ServiceType, request.Description, request.Status,
		request.PreferredDate, request.ScheduledDate, request.EstimatedCost,
		request.FinalCost, request.CompletionDate, request.MaintenanceRecordID,
		request.UpdatedAt, request.ID)
	return err
}

func (r *ServiceRequestRepo) List(ctx context.Context, filter storage.ServiceRequestFilter) ([]*repository.ServiceRequest, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.OwnerID != nil {
		add("owner_id = $%d", *filter.OwnerID)
	}
	if filter.RepairerID != nil {
		if filter.IncludeUnassignedPending {
			add("(repairer_id = $%d OR (repairer_id IS NULL AND status = 'pending'))", *filter.RepairerID)
		} else {
			add("repairer_id = $%d", *filter.RepairerID)
		}
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}

	query := "SELECT * FROM service_requests"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (page-1)*limit)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	var requests []*repository.ServiceRequest
	err := r.db.Select(ctx, &requests, query, args...)
	return requests, err
}

func (r *ServiceRequestRepo) CountOpenByVehicle(ctx context.Context, vehicleID uuid.UUID) (int, error) {
	var count int
	err := r.db.Get(ctx, &count, `
        SELECT COUNT(*) FROM service_requests
        WHERE vehicle_id = $1
          AND status NOT IN ('completed', 'cancelled')
    `, vehicleID)
	return count, err
}

func (r *ServiceRequestRepo) HasCompletedForOwner(ctx context.Context, ownerID, repairerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.Get(ctx, &exists, `
        SELECT EXISTS (
            SELECT 1 FROM service_requests
            WHERE owner_id = $1
              AND repairer_id = $2
              AND status = 'completed'
        )
    `, ownerID, repairerID)
	return exists, err
}

func (r *ServiceRequestRepo) UpdateRatingTx(ctx context.Context, tx db.Tx, id uuid.UUID, average float64, count int) error {
	_, err := tx.Exec(ctx, `
        UPDATE service_requests
        SET rating_average = $1, rating_count = $2
        WHERE id = $3
    `, average, count, id)
	return err
}
