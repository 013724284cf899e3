package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/db"
	"github.com/shopmeco/backend/internal/lifecycle"
	"github.com/shopmeco/backend/internal/repository"
)

type CreateServiceRequestInput struct {
	VehicleID     uuid.UUID  `json:"vehicleId"`
	ServiceType   string     `json:"serviceType"`
	Description   string     `json:"description"`
	PreferredDate *time.Time `json:"preferredDate"`
	EstimatedCost *float64   `json:"estimatedCost"`
}

func (s *PostgresStorage) CreateServiceRequest(ctx context.Context, actor Actor, input CreateServiceRequestInput) (*ServiceRequest, error) {
	if input.ServiceType == "" {
		return nil, fmt.Errorf("%w: service type is required", ErrValidation)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, input.VehicleID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: vehicle", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if !actor.IsAdmin() && vehicle.OwnerID != actor.UserID {
		return nil, fmt.Errorf("%w: vehicle belongs to another owner", ErrForbidden)
	}

	now := time.Now().UTC()
	request := &repository.ServiceRequest{
		ID:            uuid.New(),
		OwnerID:       vehicle.OwnerID,
		VehicleID:     vehicle.ID,
		ServiceType:   input.ServiceType,
		Description:   input.Description,
		Status:        string(lifecycle.ServicePending),
		PreferredDate: input.PreferredDate,
		EstimatedCost: input.EstimatedCost,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.serviceRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create service request: %w", err)
	}
	return serviceRequestFromRepo(request), nil
}

func (s *PostgresStorage) GetServiceRequest(ctx context.Context, actor Actor, id uuid.UUID) (*ServiceRequest, error) {
	request, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: service request", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}

	if !canReadServiceRequest(actor, request) {
		return nil, ErrForbidden
	}
	return serviceRequestFromRepo(request), nil
}

// ListServiceRequests narrows the filter by role: an owner sees their
// own requests, a repairer sees requests assigned to them plus the
// unassigned pending pool, an admin sees whatever the filter asks for.
func (s *PostgresStorage) ListServiceRequests(ctx context.Context, actor Actor, filter ServiceRequestFilter) ([]ServiceRequest, error) {
	switch actor.Role {
	case lifecycle.RoleAdmin:
	case lifecycle.RoleRepairer:
		filter.RepairerID = &actor.UserID
		filter.IncludeUnassignedPending = true
	default:
		filter.OwnerID = &actor.UserID
	}

	rows, err := s.serviceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list service requests: %w", err)
	}

	requests := make([]ServiceRequest, len(rows))
	for i, row := range rows {
		requests[i] = *serviceRequestFromRepo(row)
	}
	return requests, nil
}

// UpdateServiceRequest applies a partial update under the role matrix:
// admin is unrestricted; the owner may edit only while the request is
// pending or cancelled; a repairer may edit a request assigned to them,
// and may accept an unassigned pending request, which atomically assigns
// it to the caller. A transition to completed runs the full completion
// side effect in the same transaction.
func (s *PostgresStorage) UpdateServiceRequest(ctx context.Context, actor Actor, id uuid.UUID, update ServiceRequestUpdate) (*ServiceRequest, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	request, err := s.serviceRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: service request", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}

	accepting, err := s.checkServiceRequestUpdate(actor, request, update)
	if err != nil {
		return nil, err
	}

	// A completed request is immutable history backed by its maintenance
	// record; no update may touch it, a second completion included.
	current := lifecycle.ServiceStatus(request.Status)
	if current == lifecycle.ServiceCompleted {
		return nil, fmt.Errorf("%w: already completed", ErrInvalidTransition)
	}

	completing := false
	if update.Status != nil {
		requested := *update.Status
		if !lifecycle.ValidServiceStatus(requested) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, requested)
		}
		if !lifecycle.ServiceStatusChangeAllowed(actor.Role, current, requested) {
			return nil, fmt.Errorf("%w: cannot move request from %s to %s", ErrInvalidTransition, current, requested)
		}
		completing = requested == lifecycle.ServiceCompleted
	}

	if accepting {
		request.RepairerID = &actor.UserID
	}
	applyServiceRequestUpdate(request, update, actor.IsAdmin())

	if completing {
		if err := s.completeLocked(ctx, tx, request, CompletionInput{FinalCost: update.FinalCost}); err != nil {
			return nil, err
		}
	} else {
		if update.Status != nil {
			request.Status = string(*update.Status)
		}
		request.UpdatedAt = time.Now().UTC()
		if err := s.serviceRepo.UpdateTx(ctx, tx, request); err != nil {
			return nil, fmt.Errorf("failed to update service request: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit service request update: %w", err)
	}
	return serviceRequestFromRepo(request), nil
}

// CompleteServiceRequest is the authoritative completion path: it
// produces exactly one maintenance record, stamps the completion date
// server-side and links everything inside a single transaction.
func (s *PostgresStorage) CompleteServiceRequest(ctx context.Context, actor Actor, id uuid.UUID, input CompletionInput) (*ServiceRequest, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	request, err := s.serviceRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: service request", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}

	assigned := request.RepairerID != nil && *request.RepairerID == actor.UserID
	if !actor.IsAdmin() && !(actor.Role == lifecycle.RoleRepairer && assigned) {
		return nil, ErrForbidden
	}

	current := lifecycle.ServiceStatus(request.Status)
	if !lifecycle.ServiceStatusChangeAllowed(actor.Role, current, lifecycle.ServiceCompleted) || current == lifecycle.ServiceCompleted {
		if current == lifecycle.ServiceCompleted {
			return nil, fmt.Errorf("%w: already completed", ErrInvalidTransition)
		}
		return nil, fmt.Errorf("%w: cannot complete a %s request", ErrInvalidTransition, current)
	}

	if err := s.completeLocked(ctx, tx, request, input); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit completion: %w", err)
	}
	return serviceRequestFromRepo(request), nil
}

// completeLocked performs the completion side effect against a request
// already locked by the surrounding transaction: insert the maintenance
// record, mark the request completed and link the record onto the
// vehicle's history. Callers commit.
func (s *PostgresStorage) completeLocked(ctx context.Context, tx db.Tx, request *repository.ServiceRequest, input CompletionInput) error {
	finalCost := request.FinalCost
	if input.FinalCost != nil {
		finalCost = input.FinalCost
	}
	if finalCost == nil {
		return fmt.Errorf("%w: final cost is required to complete a service request", ErrValidation)
	}

	now := time.Now().UTC()
	serviceDate := now
	if input.ServiceDate != nil {
		serviceDate = *input.ServiceDate
	}

	record := &repository.MaintenanceRecord{
		ID:               uuid.New(),
		VehicleID:        request.VehicleID,
		ServiceRequestID: request.ID,
		ServiceType:      request.ServiceType,
		Description:      request.Description,
		FinalCost:        *finalCost,
		ServiceDate:      serviceDate,
		Mileage:          input.Mileage,
		Notes:            input.Notes,
		Receipts:         input.Receipts,
		CreatedAt:        now,
	}

	if err := s.maintenanceRepo.CreateTx(ctx, tx, record); err != nil {
		return fmt.Errorf("failed to create maintenance record: %w", err)
	}

	request.Status = string(lifecycle.ServiceCompleted)
	request.FinalCost = finalCost
	request.CompletionDate = &now
	request.MaintenanceRecordID = &record.ID
	request.UpdatedAt = now

	if err := s.serviceRepo.UpdateTx(ctx, tx, request); err != nil {
		return fmt.Errorf("failed to update service request: %w", err)
	}
	if err := s.vehicleRepo.AppendMaintenanceRecordTx(ctx, tx, request.VehicleID, record.ID); err != nil {
		return fmt.Errorf("failed to link maintenance record to vehicle: %w", err)
	}
	return nil
}

// CancelServiceRequest cancels a request on behalf of its owner or an
// admin. A completed request can never be cancelled.
func (s *PostgresStorage) CancelServiceRequest(ctx context.Context, actor Actor, id uuid.UUID) (*ServiceRequest, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	request, err := s.serviceRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: service request", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}

	if !actor.IsAdmin() && request.OwnerID != actor.UserID {
		return nil, ErrForbidden
	}

	current := lifecycle.ServiceStatus(request.Status)
	if !lifecycle.ServiceStatusChangeAllowed(actor.Role, current, lifecycle.ServiceCancelled) {
		return nil, fmt.Errorf("%w: cannot cancel a %s request", ErrInvalidTransition, current)
	}

	request.Status = string(lifecycle.ServiceCancelled)
	request.UpdatedAt = time.Now().UTC()
	if err := s.serviceRepo.UpdateTx(ctx, tx, request); err != nil {
		return nil, fmt.Errorf("failed to update service request: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}
	return serviceRequestFromRepo(request), nil
}

// checkServiceRequestUpdate returns whether the update is an acceptance
// of an unassigned pending request by the calling repairer.
func (s *PostgresStorage) checkServiceRequestUpdate(actor Actor, request *repository.ServiceRequest, update ServiceRequestUpdate) (accepting bool, err error) {
	if actor.IsAdmin() {
		return false, nil
	}

	switch actor.Role {
	case lifecycle.RoleCustomer:
		if request.OwnerID != actor.UserID {
			return false, ErrForbidden
		}
		status := lifecycle.ServiceStatus(request.Status)
		if status != lifecycle.ServicePending && status != lifecycle.ServiceCancelled {
			return false, fmt.Errorf("%w: owner may modify only pending or cancelled requests", ErrForbidden)
		}
		if update.Keys["repairerId"] {
			return false, fmt.Errorf("%w: field \"repairerId\" is not updatable by the owner", ErrForbidden)
		}
		return false, nil

	case lifecycle.RoleRepairer:
		if request.RepairerID != nil && *request.RepairerID == actor.UserID {
			return false, nil
		}
		if request.RepairerID == nil &&
			lifecycle.ServiceStatus(request.Status) == lifecycle.ServicePending &&
			update.Status != nil && *update.Status == lifecycle.ServiceAccepted {
			return true, nil
		}
		return false, ErrForbidden

	default:
		return false, ErrForbidden
	}
}

func applyServiceRequestUpdate(request *repository.ServiceRequest, update ServiceRequestUpdate, admin bool) {
	if update.ServiceType != nil {
		request.ServiceType = *update.ServiceType
	}
	if update.Description != nil {
		request.Description = *update.Description
	}
	if update.PreferredDate != nil {
		request.PreferredDate = update.PreferredDate
	}
	if update.ScheduledDate != nil {
		request.ScheduledDate = update.ScheduledDate
	}
	if update.EstimatedCost != nil {
		request.EstimatedCost = update.EstimatedCost
	}
	if update.FinalCost != nil {
		request.FinalCost = update.FinalCost
	}
	if admin && update.RepairerID != nil {
		request.RepairerID = update.RepairerID
	}
}

func serviceRequestFromRepo(row *repository.ServiceRequest) *ServiceRequest {
	return &ServiceRequest{
		ID:                  row.ID,
		OwnerID:             row.OwnerID,
		VehicleID:           row.VehicleID,
		RepairerID:          row.RepairerID,
		ServiceType:         row.ServiceType,
		Description:         row.Description,
		Status:              lifecycle.ServiceStatus(row.Status),
		PreferredDate:       row.PreferredDate,
		ScheduledDate:       row.ScheduledDate,
		EstimatedCost:       row.EstimatedCost,
		FinalCost:           row.FinalCost,
		CompletionDate:      row.CompletionDate,
		MaintenanceRecordID: row.MaintenanceRecordID,
		RatingAverage:       row.RatingAverage,
		RatingCount:         row.RatingCount,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}

func canReadServiceRequest(actor Actor, request *repository.ServiceRequest) bool {
	if actor.IsAdmin() || request.OwnerID == actor.UserID {
		return true
	}
	return request.RepairerID != nil && *request.RepairerID == actor.UserID
}
