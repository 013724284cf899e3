package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound = errors.New("not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)

type User struct {
	ID            uuid.UUID `db:"id"`
	Email         string    `db:"email"`
	PasswordHash  string    `db:"password_hash"`
	Name          string    `db:"name"`
	Role          string    `db:"role"`
	Phone         string    `db:"phone"`
	Address       string    `db:"address"`
	RatingAverage float64   `db:"rating_average"`
	RatingCount   int       `db:"rating_count"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Vehicle struct {
	ID                   uuid.UUID   `db:"id"`
	OwnerID              uuid.UUID   `db:"owner_id"`
	Make                 string      `db:"make"`
	Model                string      `db:"model"`
	Year                 int         `db:"year"`
	LicensePlate         string      `db:"license_plate"`
	Mileage              int         `db:"mileage"`
	MaintenanceRecordIDs []uuid.UUID `db:"maintenance_record_ids"`
	CreatedAt            time.Time   `db:"created_at"`
	UpdatedAt            time.Time   `db:"updated_at"`
}

type Product struct {
	ID            uuid.UUID `db:"id"`
	SellerID      uuid.UUID `db:"seller_id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	Category      string    `db:"category"`
	Make          string    `db:"make"`
	Model         string    `db:"model"`
	YearFrom      int       `db:"year_from"`
	YearTo        int       `db:"year_to"`
	Condition     string    `db:"condition"`
	Price         float64   `db:"price"`
	StockQuantity int       `db:"stock_quantity"`
	RatingAverage float64   `db:"rating_average"`
	RatingCount   int       `db:"rating_count"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Order struct {
	ID                uuid.UUID  `db:"id"`
	CustomerID        uuid.UUID  `db:"customer_id"`
	SellerID          uuid.UUID  `db:"seller_id"`
	OrderStatus       string     `db:"order_status"`
	PaymentStatus     string     `db:"payment_status"`
	TotalPrice        float64    `db:"total_price"`
	TrackingNumber    string     `db:"tracking_number"`
	ShippingMethod    string     `db:"shipping_method"`
	EstimatedDelivery *time.Time `db:"estimated_delivery"`
	ActualDelivery    *time.Time `db:"actual_delivery"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

type OrderItem struct {
	ID        int64     `db:"id"`
	OrderID   uuid.UUID `db:"order_id"`
	ProductID uuid.UUID `db:"product_id"`
	Quantity  int       `db:"quantity"`
	UnitPrice float64   `db:"unit_price"`
}

type ServiceRequest struct {
	ID                  uuid.UUID  `db:"id"`
	OwnerID             uuid.UUID  `db:"owner_id"`
	VehicleID           uuid.UUID  `db:"vehicle_id"`
	RepairerID          *uuid.UUID `db:"repairer_id"`
	ServiceType         string     `db:"service_type"`
	Description         string     `db:"description"`
	Status              string     `db:"status"`
	PreferredDate       *time.Time `db:"preferred_date"`
	ScheduledDate       *time.Time `db:"scheduled_date"`
	EstimatedCost       *float64   `db:"estimated_cost"`
	FinalCost           *float64   `db:"final_cost"`
	CompletionDate      *time.Time `db:"completion_date"`
	MaintenanceRecordID *uuid.UUID `db:"maintenance_record_id"`
	RatingAverage       float64    `db:"rating_average"`
	RatingCount         int        `db:"rating_count"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

type MaintenanceRecord struct {
	ID               uuid.UUID `db:"id"`
	VehicleID        uuid.UUID `db:"vehicle_id"`
	ServiceRequestID uuid.UUID `db:"service_request_id"`
	ServiceType      string    `db:"service_type"`
	Description      string    `db:"description"`
	FinalCost        float64   `db:"final_cost"`
	ServiceDate      time.Time `db:"service_date"`
	Mileage          int       `db:"mileage"`
	Notes            string    `db:"notes"`
	Receipts         []string  `db:"receipts"`
	CreatedAt        time.Time `db:"created_at"`
}

type Review struct {
	ID         uuid.UUID `db:"id"`
	AuthorID   uuid.UUID `db:"author_id"`
	TargetType string    `db:"target_type"`
	TargetID   uuid.UUID `db:"target_id"`
	Rating     int       `db:"rating"`
	Title      string    `db:"title"`
	Comment    string    `db:"comment"`
	Response   string    `db:"response"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}
