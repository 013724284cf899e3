package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/lifecycle"
)

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	UserID uuid.UUID
	Role   lifecycle.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == lifecycle.RoleAdmin
}

type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	RatingAverage float64   `json:"ratingAverage"`
	RatingCount   int       `json:"ratingCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Vehicle struct {
	ID                   uuid.UUID   `json:"id"`
	OwnerID              uuid.UUID   `json:"ownerId"`
	Make                 string      `json:"make"`
	Model                string      `json:"model"`
	Year                 int         `json:"year"`
	LicensePlate         string      `json:"licensePlate,omitempty"`
	Mileage              int         `json:"mileage"`
	MaintenanceRecordIDs []uuid.UUID `json:"maintenanceRecordIds"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

type Product struct {
	ID            uuid.UUID `json:"id"`
	SellerID      uuid.UUID `json:"sellerId"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	Make          string    `json:"make,omitempty"`
	Model         string    `json:"model,omitempty"`
	YearFrom      int       `json:"yearFrom,omitempty"`
	YearTo        int       `json:"yearTo,omitempty"`
	Condition     string    `json:"condition"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stockQuantity"`
	RatingAverage float64   `json:"ratingAverage"`
	RatingCount   int       `json:"ratingCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type OrderItem struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
}

type Order struct {
	ID                uuid.UUID               `json:"id"`
	CustomerID        uuid.UUID               `json:"customerId"`
	SellerID          uuid.UUID               `json:"sellerId"`
	Items             []OrderItem             `json:"items,omitempty"`
	OrderStatus       lifecycle.OrderStatus   `json:"orderStatus"`
	PaymentStatus     lifecycle.PaymentStatus `json:"paymentStatus"`
	TotalPrice        float64                 `json:"totalPrice"`
	TrackingNumber    string                  `json:"trackingNumber,omitempty"`
	ShippingMethod    string                  `json:"shippingMethod,omitempty"`
	EstimatedDelivery *time.Time              `json:"estimatedDelivery,omitempty"`
	ActualDelivery    *time.Time              `json:"actualDelivery,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

type ServiceRequest struct {
	ID                  uuid.UUID               `json:"id"`
	OwnerID             uuid.UUID               `json:"ownerId"`
	VehicleID           uuid.UUID               `json:"vehicleId"`
	RepairerID          *uuid.UUID              `json:"repairerId,omitempty"`
	ServiceType         string                  `json:"serviceType"`
	Description         string                  `json:"description,omitempty"`
	Status              lifecycle.ServiceStatus `json:"status"`
	PreferredDate       *time.Time              `json:"preferredDate,omitempty"`
	ScheduledDate       *time.Time              `json:"scheduledDate,omitempty"`
	EstimatedCost       *float64                `json:"estimatedCost,omitempty"`
	FinalCost           *float64                `json:"finalCost,omitempty"`
	CompletionDate      *time.Time              `json:"completionDate,omitempty"`
	MaintenanceRecordID *uuid.UUID              `json:"maintenanceRecordId,omitempty"`
	RatingAverage       float64                 `json:"ratingAverage"`
	RatingCount         int                     `json:"ratingCount"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

type MaintenanceRecord struct {
	ID               uuid.UUID `json:"id"`
	VehicleID        uuid.UUID `json:"vehicleId"`
	ServiceRequestID uuid.UUID `json:"serviceRequestId"`
	ServiceType      string    `json:"serviceType"`
	Description      string    `json:"description,omitempty"`
	FinalCost        float64   `json:"finalCost"`
	ServiceDate      time.Time `json:"serviceDate"`
	Mileage          int       `json:"mileage,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	Receipts         []string  `json:"receipts,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type Review struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"authorId"`
	TargetType string    `json:"targetType"`
	TargetID   uuid.UUID `json:"targetId"`
	Rating     int       `json:"rating"`
	Title      string    `json:"title,omitempty"`
	Comment    string    `json:"comment,omitempty"`
	Response   string    `json:"response,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Review target types.
const (
	TargetProduct  = "product"
	TargetSeller   = "seller"
	TargetRepairer = "repairer"
	TargetService  = "service"
)

func ValidTargetType(t string) bool {
	switch t {
	case TargetProduct, TargetSeller, TargetRepairer, TargetService:
		return true
	}
	return false
}

type OrderFilter struct {
	CustomerID    *uuid.UUID
	SellerID      *uuid.UUID
	OrderStatus   string
	PaymentStatus string
	StartDate     *time.Time
	EndDate       *time.Time
	Page          int
	Limit         int
}

type ProductFilter struct {
	SellerID  *uuid.UUID
	Category  string
	Make      string
	Model     string
	Condition string
	Year      int
	Page      int
	Limit     int
}

type ServiceRequestFilter struct {
	OwnerID                  *uuid.UUID
	RepairerID               *uuid.UUID
	Status                   string
	IncludeUnassignedPending bool
	Page                     int
	Limit                    int
}

// OrderUpdate is a partial order update. Keys holds the JSON keys that
// were actually present in the request body; the permission matrix is
// evaluated against it, not against which pointers are non-nil.
type OrderUpdate struct {
	Keys              map[string]bool          `json:"-"`
	OrderStatus       *lifecycle.OrderStatus   `json:"orderStatus"`
	PaymentStatus     *lifecycle.PaymentStatus `json:"paymentStatus"`
	TotalPrice        *float64                 `json:"totalPrice"`
	TrackingNumber    *string                  `json:"trackingNumber"`
	ShippingMethod    *string                  `json:"shippingMethod"`
	EstimatedDelivery *time.Time               `json:"estimatedDelivery"`
	ActualDelivery    *time.Time               `json:"actualDelivery"`
}

// ServiceRequestUpdate is a partial service-request update, same Keys
// convention as OrderUpdate.
type ServiceRequestUpdate struct {
	Keys          map[string]bool          `json:"-"`
	Status        *lifecycle.ServiceStatus `json:"status"`
	ServiceType   *string                  `json:"serviceType"`
	Description   *string                  `json:"description"`
	PreferredDate *time.Time               `json:"preferredDate"`
	ScheduledDate *time.Time               `json:"scheduledDate"`
	EstimatedCost *float64                 `json:"estimatedCost"`
	FinalCost     *float64                 `json:"finalCost"`
	RepairerID    *uuid.UUID               `json:"repairerId"`
}

// CompletionInput is the payload of the service-request completion
// operation. FinalCost may be omitted when the request already carries
// one.
type CompletionInput struct {
	FinalCost   *float64   `json:"finalCost"`
	ServiceDate *time.Time `json:"serviceDate"`
	Mileage     int        `json:"mileage"`
	Notes       string     `json:"notes"`
	Receipts    []string   `json:"receipts"`
}
