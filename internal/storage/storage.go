//go:generate mockgen -source ./storage.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/db"
	"github.com/shopmeco/backend/internal/repository"
)

type UserRepository interface {
	Create(ctx context.Context, user *repository.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.User, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.User, error)
	GetByEmail(ctx context.Context, email string) (*repository.User, error)
	Update(ctx context.Context, user *repository.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, limit int) ([]*repository.User, error)
	UpdateRatingTx(ctx context.Context, tx db.Tx, id uuid.UUID, average float64, count int) error
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *repository.Vehicle) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Vehicle, error)
	Update(ctx context.Context, vehicle *repository.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*repository.Vehicle, error)
	GetAll(ctx context.Context) ([]*repository.Vehicle, error)
	AppendMaintenanceRecordTx(ctx context.Context, tx db.Tx, vehicleID, recordID uuid.UUID) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *repository.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Product, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Product, error)
	Update(ctx context.Context, product *repository.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ProductFilter) ([]*repository.Product, error)
	AdjustStockTx(ctx context.Context, tx db.Tx, id uuid.UUID, delta int) error
	UpdateRatingTx(ctx context.Context, tx db.Tx, id uuid.UUID, average float64, count int) error
}

type OrderRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	AddItemsTx(ctx context.Context, tx db.Tx, items []*repository.OrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Order, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Order, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]*repository.OrderItem, error)
	Update(ctx context.Context, order *repository.Order) error
	UpdateTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	List(ctx context.Context, filter OrderFilter) ([]*repository.Order, error)
	HasDeliveredOrderWithProduct(ctx context.Context, customerID, productID uuid.UUID) (bool, error)
	HasDeliveredOrderFromSeller(ctx context.Context, customerID, sellerID uuid.UUID) (bool, error)
}

type ServiceRequestRepository interface {
	Create(ctx context.Context, request *repository.ServiceRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.ServiceRequest, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.ServiceRequest, error)
	Update(ctx context.Context, request *repository.ServiceRequest) error
	UpdateTx(ctx context.Context, tx db.Tx, request *repository.ServiceRequest) error
	List(ctx context.Context, filter ServiceRequestFilter) ([]*repository.ServiceRequest, error)
	CountOpenByVehicle(ctx context.Context, vehicleID uuid.UUID) (int, error)
	HasCompletedForOwner(ctx context.Context, ownerID, repairerID uuid.UUID) (bool, error)
	UpdateRatingTx(ctx context.Context, tx db.Tx, id uuid.UUID, average float64, count int) error
}

type MaintenanceRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, record *repository.MaintenanceRecord) error
	GetByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*repository.MaintenanceRecord, error)
}

type ReviewRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, review *repository.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*repository.Review, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Review, error)
	UpdateTx(ctx context.Context, tx db.Tx, review *repository.Review) error
	DeleteTx(ctx context.Context, tx db.Tx, id uuid.UUID) error
	Update(ctx context.Context, review *repository.Review) error
	GetByAuthorAndTarget(ctx context.Context, authorID uuid.UUID, targetType string, targetID uuid.UUID) (*repository.Review, error)
	ListByTarget(ctx context.Context, targetType string, targetID uuid.UUID, page, limit int) ([]*repository.Review, error)
}

// PostgresStorage is the marketplace service layer: all role checks,
// status-transition guards and multi-row invariants live here, on top of
// per-entity repositories. Multi-row writes run inside one transaction.
type PostgresStorage struct {
	db db.DB

	userRepo        UserRepository
	vehicleRepo     VehicleRepository
	productRepo     ProductRepository
	orderRepo       OrderRepository
	serviceRepo     ServiceRequestRepository
	maintenanceRepo MaintenanceRepository
	reviewRepo      ReviewRepository
}

func NewPostgresStorage(
	database db.DB,
	userRepo UserRepository,
	vehicleRepo VehicleRepository,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	serviceRepo ServiceRequestRepository,
	maintenanceRepo MaintenanceRepository,
	reviewRepo ReviewRepository,
) *PostgresStorage {
	return &PostgresStorage{
		db:              database,
		userRepo:        userRepo,
		vehicleRepo:     vehicleRepo,
		productRepo:     productRepo,
		orderRepo:       orderRepo,
		serviceRepo:     serviceRepo,
		maintenanceRepo: maintenanceRepo,
		reviewRepo:      reviewRepo,
	}
}
