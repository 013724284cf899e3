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

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) storage.OrderRepository {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) CreateTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO orders (
            id, customer_id, seller_id, order_status, payment_status, total_price,
            tracking_number, shipping_method, estimated_delivery, actual_delivery,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `, order.ID, order.CustomerID, order.SellerID, order.OrderStatus, order.PaymentStatus,
		order.TotalPrice, order.TrackingNumber, order.ShippingMethod,
		order.EstimatedDelivery, order.ActualDelivery, order.CreatedAt, order.UpdatedAt)
	return err
}

func (r *OrderRepo) AddItemsTx(ctx context.Context, tx db.Tx, items []*repository.OrderItem) error {
	for _, item := range items {
		_, err := tx.Exec(ctx, `
            INSERT INTO order_items (order_id, product_id, quantity, unit_price)
            VALUES ($1, $2, $3, $4)
        `, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Order, error) {
	var order repository.Order
	err := tx.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetItems(ctx context.Context, orderID uuid.UUID) ([]*repository.OrderItem, error) {
	var items []*repository.OrderItem
	err := r.db.Select(ctx, &items, `
        SELECT * FROM order_items
        WHERE order_id = $1
        ORDER BY id
    `, orderID)
	return items, err
}

const updateOrderQuery = `
    UPDATE orders
    SET
        order_status = $1,
        payment_status = $2,
        tracking_number = $3,
        shipping_method = $4,
        estimated_delivery = $5,
        actual_delivery = $6,
        updated_at = $7
    WHERE id = $8
`

func (r *OrderRepo) Update(ctx context.Context, order *repository.Order) error {
	_, err := r.db.Exec(ctx, updateOrderQuery,
		order.OrderStatus, order.PaymentStatus, order.TrackingNumber, order.ShippingMethod,
		order.EstimatedDelivery, order.ActualDelivery, order.UpdatedAt, order.ID)
	return err
}

func (r *OrderRepo) UpdateTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	_, err := tx.Exec(ctx, updateOrderQuery,
		order.OrderStatus, order.PaymentStatus, order.TrackingNumber, order.ShippingMethod,
		order.EstimatedDelivery, order.ActualDelivery, order.UpdatedAt, order.ID)
	return err
}

func (r *OrderRepo) List(ctx context.Context, filter storage.OrderFilter) ([]*repository.Order, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.CustomerID != nil {
		add("customer_id = $%d", *filter.CustomerID)
	}
	if filter.SellerID != nil {
		add("seller_id = $%d", *filter.SellerID)
	}
	if filter.OrderStatus != "" {
		add("order_status = $%d", filter.OrderStatus)
	}
	if filter.PaymentStatus != "" {
		add("payment_status = $%d", filter.PaymentStatus)
	}
	if filter.StartDate != nil {
		add("created_at >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("created_at <= $%d", *filter.EndDate)
	}

	query := "SELECT * FROM orders"
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

	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, query, args...)
	return orders, err
}

func (r *OrderRepo) HasDeliveredOrderWithProduct(ctx context.Context, customerID, productID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.Get(ctx, &exists, `
        SELECT EXISTS (
            SELECT 1
            FROM orders o
            JOIN order_items oi ON oi.order_id = o.id
            WHERE o.customer_id = $1
              AND oi.product_id = $2
              AND o.order_status = 'delivered'
        )
    `, customerID, productID)
	return exists, err
}

func (r *OrderRepo) HasDeliveredOrderFromSeller(ctx context.Context, customerID, sellerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.Get(ctx, &exists, `
        SELECT EXISTS (
            SELECT 1 FROM orders
            WHERE customer_id = $1
              AND seller_id = $2
              AND order_status = 'delivered'
        )
    `, customerID, sellerID)
	return exists, err
}
