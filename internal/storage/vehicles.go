package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/repository"
)

type CreateVehicleInput struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"licensePlate"`
	Mileage      int    `json:"mileage"`
}

type UpdateVehicleInput struct {
	Make         *string `json:"make"`
	Model        *string `json:"model"`
	Year         *int    `json:"year"`
	LicensePlate *string `json:"licensePlate"`
	Mileage      *int    `json:"mileage"`
}

func (s *PostgresStorage) CreateVehicle(ctx context.Context, actor Actor, input CreateVehicleInput) (*Vehicle, error) {
	if input.Make == "" || input.Model == "" || input.Year == 0 {
		return nil, fmt.Errorf("%w: make, model and year are required", ErrValidation)
	}

	now := time.Now().UTC()
	vehicle := &repository.Vehicle{
		ID:           uuid.New(),
		OwnerID:      actor.UserID,
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		LicensePlate: input.LicensePlate,
		Mileage:      input.Mileage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return vehicleFromRepo(vehicle), nil
}

func (s *PostgresStorage) GetVehicle(ctx context.Context, actor Actor, id uuid.UUID) (*Vehicle, error) {
	vehicle, err := s.getOwnedVehicle(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return vehicleFromRepo(vehicle), nil
}

func (s *PostgresStorage) ListVehicles(ctx context.Context, actor Actor) ([]Vehicle, error) {
	var (
		rows []*repository.Vehicle
		err  error
	)
	if actor.IsAdmin() {
		rows, err = s.vehicleRepo.GetAll(ctx)
	} else {
		rows, err = s.vehicleRepo.GetByOwnerID(ctx, actor.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	vehicles := make([]Vehicle, len(rows))
	for i, row := range rows {
		vehicles[i] = *vehicleFromRepo(row)
	}
	return vehicles, nil
}

func (s *PostgresStorage) UpdateVehicle(ctx context.Context, actor Actor, id uuid.UUID, input UpdateVehicleInput) (*Vehicle, error) {
	vehicle, err := s.getOwnedVehicle(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if input.Make != nil {
		vehicle.Make = *input.Make
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.Year != nil {
		vehicle.Year = *input.Year
	}
	if input.LicensePlate != nil {
		vehicle.LicensePlate = *input.LicensePlate
	}
	if input.Mileage != nil {
		vehicle.Mileage = *input.Mileage
	}
	vehicle.UpdatedAt = time.Now().UTC()

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return vehicleFromRepo(vehicle), nil
}

// DeleteVehicle refuses to remove a vehicle with an open service request
// still attached to it.
func (s *PostgresStorage) DeleteVehicle(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.getOwnedVehicle(ctx, actor, id); err != nil {
		return err
	}

	open, err := s.serviceRepo.CountOpenByVehicle(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count open service requests: %w", err)
	}
	if open > 0 {
		return fmt.Errorf("%w: vehicle has open service requests", ErrValidation)
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}

func (s *PostgresStorage) GetVehicleMaintenance(ctx context.Context, actor Actor, vehicleID uuid.UUID) ([]MaintenanceRecord, error) {
	if _, err := s.getOwnedVehicle(ctx, actor, vehicleID); err != nil {
		return nil, err
	}

	rows, err := s.maintenanceRepo.GetByVehicleID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance records: %w", err)
	}

	records := make([]MaintenanceRecord, len(rows))
	for i, row := range rows {
		records[i] = MaintenanceRecord{
			ID:               row.ID,
			VehicleID:        row.VehicleID,
			ServiceRequestID: row.ServiceRequestID,
			ServiceType:      row.ServiceType,
			Description:      row.Description,
			FinalCost:        row.FinalCost,
			ServiceDate:      row.ServiceDate,
			Mileage:          row.Mileage,
			Notes:            row.Notes,
			Receipts:         row.Receipts,
			CreatedAt:        row.CreatedAt,
		}
	}
	return records, nil
}

func (s *PostgresStorage) getOwnedVehicle(ctx context.Context, actor Actor, id uuid.UUID) (*repository.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: vehicle", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if !actor.IsAdmin() && vehicle.OwnerID != actor.UserID {
		return nil, ErrForbidden
	}
	return vehicle, nil
}

func vehicleFromRepo(row *repository.Vehicle) *Vehicle {
	return &Vehicle{
		ID:                   row.ID,
		OwnerID:              row.OwnerID,
		Make:                 row.Make,
		Model:                row.Model,
		Year:                 row.Year,
		LicensePlate:         row.LicensePlate,
		Mileage:              row.Mileage,
		MaintenanceRecordIDs: row.MaintenanceRecordIDs,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}
