package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/lifecycle"
	"github.com/shopmeco/backend/internal/repository"
)

type OrderItemInput struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type CreateOrderInput struct {
	Items []OrderItemInput `json:"items"`
}

// CreateOrder places an order for the calling customer. Stock is
// checked and decremented under row locks in the same transaction that
// inserts the order, so two concurrent orders cannot oversell.
func (s *PostgresStorage) CreateOrder(ctx context.Context, actor Actor, input CreateOrderInput) (*Order, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", ErrValidation)
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var (
		sellerID uuid.UUID
		total    float64
		items    []*repository.OrderItem
	)
	orderID := uuid.New()

	for _, item := range input.Items {
		product, err := s.productRepo.GetByIDTx(ctx, tx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil, fmt.Errorf("%w: product %s", ErrNotFound, item.ProductID)
			}
			return nil, fmt.Errorf("failed to get product: %w", err)
		}
		if sellerID == uuid.Nil {
			sellerID = product.SellerID
		} else if sellerID != product.SellerID {
			return nil, fmt.Errorf("%w: all items must belong to a single seller", ErrValidation)
		}
		if product.StockQuantity < item.Quantity {
			return nil, fmt.Errorf("%w: insufficient stock for product %s", ErrValidation, product.Name)
		}
		if err := s.productRepo.AdjustStockTx(ctx, tx, product.ID, -item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to decrement stock: %w", err)
		}

		total += product.Price * float64(item.Quantity)
		items = append(items, &repository.OrderItem{
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}

	now := time.Now().UTC()
	order := &repository.Order{
		ID:            orderID,
		CustomerID:    actor.UserID,
		SellerID:      sellerID,
		OrderStatus:   string(lifecycle.OrderProcessing),
		PaymentStatus: string(lifecycle.PaymentPending),
		TotalPrice:    total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orderRepo.CreateTx(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if err := s.orderRepo.AddItemsTx(ctx, tx, items); err != nil {
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return orderFromRepo(order, items), nil
}

func (s *PostgresStorage) GetOrder(ctx context.Context, actor Actor, id uuid.UUID) (*Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if !actor.IsAdmin() && order.CustomerID != actor.UserID && order.SellerID != actor.UserID {
		return nil, ErrForbidden
	}

	items, err := s.orderRepo.GetItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}

	return orderFromRepo(order, items), nil
}

// ListOrders narrows the filter to the caller's own orders unless the
// caller is an admin.
func (s *PostgresStorage) ListOrders(ctx context.Context, actor Actor, filter OrderFilter) ([]Order, error) {
	switch actor.Role {
	case lifecycle.RoleAdmin:
	case lifecycle.RoleSeller:
		filter.SellerID = &actor.UserID
	default:
		filter.CustomerID = &actor.UserID
	}

	rows, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]Order, len(rows))
	for i, row := range rows {
		orders[i] = *orderFromRepo(row, nil)
	}
	return orders, nil
}

// UpdateOrder applies a partial update under the role permission matrix:
// admin is unrestricted; a seller owning the order may touch logistics
// fields only; a customer owning the order may only cancel while the
// order is still processing. Status changes are checked against the
// transition table, and a cancellation restores product stock in the
// same transaction.
func (s *PostgresStorage) UpdateOrder(ctx context.Context, actor Actor, id uuid.UUID, update OrderUpdate) (*Order, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	order, err := s.orderRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if err := s.checkOrderUpdate(actor, order, update); err != nil {
		return nil, err
	}

	current := lifecycle.OrderStatus(order.OrderStatus)
	cancelling := false
	if update.OrderStatus != nil {
		requested := *update.OrderStatus
		if !lifecycle.ValidOrderStatus(requested) {
			return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, requested)
		}
		if !lifecycle.OrderStatusChangeAllowed(actor.Role, current, requested) {
			return nil, fmt.Errorf("%w: cannot move order from %s to %s", ErrInvalidTransition, current, requested)
		}
		cancelling = requested == lifecycle.OrderCancelled && current != lifecycle.OrderCancelled
		order.OrderStatus = string(requested)
	}

	applyOrderUpdate(order, update)
	order.UpdatedAt = time.Now().UTC()

	var items []*repository.OrderItem
	if cancelling {
		items, err = s.orderRepo.GetItems(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get order items: %w", err)
		}
		for _, item := range items {
			if err := s.productRepo.AdjustStockTx(ctx, tx, item.ProductID, item.Quantity); err != nil {
				return nil, fmt.Errorf("failed to restore stock: %w", err)
			}
		}
		if order.PaymentStatus == string(lifecycle.PaymentPaid) {
			order.PaymentStatus = string(lifecycle.PaymentRefunded)
		}
	}

	if err := s.orderRepo.UpdateTx(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order update: %w", err)
	}

	return orderFromRepo(order, items), nil
}

func (s *PostgresStorage) checkOrderUpdate(actor Actor, order *repository.Order, update OrderUpdate) error {
	switch {
	case actor.IsAdmin():
		return nil

	case actor.Role == lifecycle.RoleSeller && order.SellerID == actor.UserID:
		for key := range update.Keys {
			if !lifecycle.SellerOrderFields[key] {
				return fmt.Errorf("%w: field %q is not updatable by a seller", ErrForbidden, key)
			}
		}
		return nil

	case actor.Role == lifecycle.RoleCustomer && order.CustomerID == actor.UserID:
		for key := range update.Keys {
			if key != "orderStatus" {
				return fmt.Errorf("%w: field %q is not updatable by a customer", ErrForbidden, key)
			}
		}
		if update.OrderStatus != nil && *update.OrderStatus != lifecycle.OrderCancelled {
			return fmt.Errorf("%w: a customer may only cancel an order", ErrForbidden)
		}
		return nil

	default:
		return ErrForbidden
	}
}

func applyOrderUpdate(order *repository.Order, update OrderUpdate) {
	if update.PaymentStatus != nil {
		order.PaymentStatus = string(*update.PaymentStatus)
	}
	if update.TotalPrice != nil {
		order.TotalPrice = *update.TotalPrice
	}
	if update.TrackingNumber != nil {
		order.TrackingNumber = *update.TrackingNumber
	}
	if update.ShippingMethod != nil {
		order.ShippingMethod = *update.ShippingMethod
	}
	if update.EstimatedDelivery != nil {
		order.EstimatedDelivery = update.EstimatedDelivery
	}
	if update.ActualDelivery != nil {
		order.ActualDelivery = update.ActualDelivery
	}
}

func orderFromRepo(row *repository.Order, items []*repository.OrderItem) *Order {
	order := &Order{
		ID:                row.ID,
		CustomerID:        row.CustomerID,
		SellerID:          row.SellerID,
		OrderStatus:       lifecycle.OrderStatus(row.OrderStatus),
		PaymentStatus:     lifecycle.PaymentStatus(row.PaymentStatus),
		TotalPrice:        row.TotalPrice,
		TrackingNumber:    row.TrackingNumber,
		ShippingMethod:    row.ShippingMethod,
		EstimatedDelivery: row.EstimatedDelivery,
		ActualDelivery:    row.ActualDelivery,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
	for _, item := range items {
		order.Items = append(order.Items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return order
}
