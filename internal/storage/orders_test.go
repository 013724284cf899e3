package storage_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shopmeco/backend/internal/lifecycle"
	"github.com/shopmeco/backend/internal/repository"
	"github.com/shopmeco/backend/internal/storage"
)

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	sellerID := uuid.New()
	padsID := uuid.New()
	filterID := uuid.New()
	actor := storage.Actor{UserID: customerID, Role: lifecycle.RoleCustomer}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.products.EXPECT().GetByIDTx(gomock.Any(), f.tx, padsID).Return(&repository.Product{
			ID: padsID, SellerID: sellerID, Name: "brake pads", Price: 40, StockQuantity: 10,
		}, nil)
		f.products.EXPECT().AdjustStockTx(gomock.Any(), f.tx, padsID, -2).Return(nil)
		f.products.EXPECT().GetByIDTx(gomock.Any(), f.tx, filterID).Return(&repository.Product{
			ID: filterID, SellerID: sellerID, Name: "oil filter", Price: 15, StockQuantity: 3,
		}, nil)
		f.products.EXPECT().AdjustStockTx(gomock.Any(), f.tx, filterID, -1).Return(nil)

		var created *repository.Order
		f.orders.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, order *repository.Order) error {
				created = order
				return nil
			})
		f.orders.EXPECT().AddItemsTx(gomock.Any(), f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, items []*repository.OrderItem) error {
				require.Len(t, items, 2)
				assert.Equal(t, padsID, items[0].ProductID)
				assert.Equal(t, 2, items[0].Quantity)
				assert.Equal(t, 40.0, items[0].UnitPrice)
				return nil
			})
		f.expectCommit()

		order, err := f.storage.CreateOrder(ctx, actor, storage.CreateOrderInput{
			Items: []storage.OrderItemInput{
				{ProductID: padsID, Quantity: 2},
				{ProductID: filterID, Quantity: 1},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 95.0, order.TotalPrice)
		assert.Equal(t, lifecycle.OrderProcessing, order.OrderStatus)
		assert.Equal(t, lifecycle.PaymentPending, order.PaymentStatus)
		assert.Equal(t, customerID, order.CustomerID)
		assert.Equal(t, sellerID, order.SellerID)
		assert.Len(t, order.Items, 2)
		require.NotNil(t, created)
		assert.Equal(t, created.ID, order.ID)
	})

	t.Run("no items", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.storage.CreateOrder(ctx, actor, storage.CreateOrderInput{})
		assert.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.products.EXPECT().GetByIDTx(gomock.Any(), f.tx, padsID).Return(&repository.Product{
			ID: padsID, SellerID: sellerID, Name: "brake pads", Price: 40, StockQuantity: 1,
		}, nil)

		_, err := f.storage.CreateOrder(ctx, actor, storage.CreateOrderInput{
			Items: []storage.OrderItemInput{{ProductID: padsID, Quantity: 2}},
		})
		assert.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("items from two sellers", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.products.EXPECT().GetByIDTx(gomock.Any(), f.tx, padsID).Return(&repository.Product{
			ID: padsID, SellerID: sellerID, Price: 40, StockQuantity: 10,
		}, nil)
		f.products.EXPECT().AdjustStockTx(gomock.Any(), f.tx, padsID, -1).Return(nil)
		f.products.EXPECT().GetByIDTx(gomock.Any(), f.tx, filterID).Return(&repository.Product{
			ID: filterID, SellerID: uuid.New(), Price: 15, StockQuantity: 10,
		}, nil)

		_, err := f.storage.CreateOrder(ctx, actor, storage.CreateOrderInput{
			Items: []storage.OrderItemInput{
				{ProductID: padsID, Quantity: 1},
				{ProductID: filterID, Quantity: 1},
			},
		})
		assert.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.products.EXPECT().GetByIDTx(gomock.Any(), f.tx, padsID).Return(nil, repository.ErrObjectNotFound)

		_, err := f.storage.CreateOrder(ctx, actor, storage.CreateOrderInput{
			Items: []storage.OrderItemInput{{ProductID: padsID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestUpdateOrder(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	sellerID := uuid.New()
	orderID := uuid.New()

	baseOrder := func(status lifecycle.OrderStatus) *repository.Order {
		return &repository.Order{
			ID:            orderID,
			CustomerID:    customerID,
			SellerID:      sellerID,
			OrderStatus:   string(status),
			PaymentStatus: string(lifecycle.PaymentPaid),
			TotalPrice:    95,
		}
	}
	shipped := lifecycle.OrderShipped
	cancelled := lifecycle.OrderCancelled
	processing := lifecycle.OrderProcessing
	tracking := "TRK-1042"

	t.Run("seller ships own order", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.orders.EXPECT().GetByIDTx(gomock.Any(), f.tx, orderID).Return(baseOrder(processing), nil)
		f.orders.EXPECT().UpdateTx(gomock.Any(), f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, order *repository.Order) error {
				assert.Equal(t, string(shipped), order.OrderStatus)
				assert.Equal(t, tracking, order.TrackingNumber)
				return nil
			})
		f.expectCommit()

		order, err := f.storage.UpdateOrder(ctx, storage.Actor{UserID: sellerID, Role: lifecycle.RoleSeller}, orderID, storage.OrderUpdate{
			Keys:           map[string]bool{"orderStatus": true, "trackingNumber": true},
			OrderStatus:    &shipped,
			TrackingNumber: &tracking,
		})
		require.NoError(t, err)
		assert.Equal(t, shipped, order.OrderStatus)
	})

	t.Run("seller may not touch total price", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.orders.EXPECT().GetByIDTx(gomock.Any(), f.tx, orderID).Return(baseOrder(processing), nil)

		price := 1.0
		_, err := f.storage.UpdateOrder(ctx, storage.Actor{UserID: sellerID, Role: lifecycle.RoleSeller}, orderID, storage.OrderUpdate{
			Keys:       map[string]bool{"totalPrice": true},
			TotalPrice: &price,
		})
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})

	t.Run("customer cancels processing order and stock is restored", func(t *testing.T) {
		f := newFixture(t)
		padsID := uuid.New()
		f.expectTx()
		f.orders.EXPECT().GetByIDTx(gomock.Any(), f.tx, orderID).Return(baseOrder(processing), nil)
		f.orders.EXPECT().GetItems(gomock.Any(), orderID).Return([]*repository.OrderItem{
			{OrderID: orderID, ProductID: padsID, Quantity: 2, UnitPrice: 40},
		}, nil)
		f.products.EXPECT().AdjustStockTx(gomock.Any(), f.tx, padsID, 2).Return(nil)
		f.orders.EXPECT().UpdateTx(gomock.Any(), f.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, order *repository.Order) error {
				assert.Equal(t, string(cancelled), order.OrderStatus)
				assert.Equal(t, string(lifecycle.PaymentRefunded), order.PaymentStatus)
				return nil
			})
		f.expectCommit()

		order, err := f.storage.UpdateOrder(ctx, storage.Actor{UserID: customerID, Role: lifecycle.RoleCustomer}, orderID, storage.OrderUpdate{
			Keys:        map[string]bool{"orderStatus": true},
			OrderStatus: &cancelled,
		})
		require.NoError(t, err)
		assert.Equal(t, lifecycle.PaymentRefunded, order.PaymentStatus)
		// The restored items must come back on the order so callers can
		// evict the affected products from their caches.
		require.Len(t, order.Items, 1)
		assert.Equal(t, padsID, order.Items[0].ProductID)
	})

	t.Run("customer may not ship", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.orders.EXPECT().GetByIDTx(gomock.Any(), f.tx, orderID).Return(baseOrder(processing), nil)

		_, err := f.storage.UpdateOrder(ctx, storage.Actor{UserID: customerID, Role: lifecycle.RoleCustomer}, orderID, storage.OrderUpdate{
			Keys:        map[string]bool{"orderStatus": true},
			OrderStatus: &shipped,
		})
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})

	t.Run("customer may not cancel after shipment", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.orders.EXPECT().GetByIDTx(gomock.Any(), f.tx, orderID).Return(baseOrder(shipped), nil)

		_, err := f.storage.UpdateOrder(ctx, storage.Actor{UserID: customerID, Role: lifecycle.RoleCustomer}, orderID, storage.OrderUpdate{
			Keys:        map[string]bool{"orderStatus": true},
			OrderStatus: &cancelled,
		})
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.orders.EXPECT().GetByIDTx(gomock.Any(), f.tx, orderID).Return(baseOrder(processing), nil)

		_, err := f.storage.UpdateOrder(ctx, storage.Actor{UserID: uuid.New(), Role: lifecycle.RoleCustomer}, orderID, storage.OrderUpdate{
			Keys:        map[string]bool{"orderStatus": true},
			OrderStatus: &cancelled,
		})
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})

	t.Run("admin bypasses the transition table", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.orders.EXPECT().GetByIDTx(gomock.Any(), f.tx, orderID).Return(baseOrder(lifecycle.OrderDelivered), nil)
		f.orders.EXPECT().UpdateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.expectCommit()

		order, err := f.storage.UpdateOrder(ctx, storage.Actor{UserID: uuid.New(), Role: lifecycle.RoleAdmin}, orderID, storage.OrderUpdate{
			Keys:        map[string]bool{"orderStatus": true},
			OrderStatus: &processing,
		})
		require.NoError(t, err)
		assert.Equal(t, processing, order.OrderStatus)
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.orders.EXPECT().GetByIDTx(gomock.Any(), f.tx, orderID).Return(nil, repository.ErrObjectNotFound)

		_, err := f.storage.UpdateOrder(ctx, storage.Actor{UserID: sellerID, Role: lifecycle.RoleSeller}, orderID, storage.OrderUpdate{})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("customer sees only their own orders", func(t *testing.T) {
		f := newFixture(t)
		f.orders.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter storage.OrderFilter) ([]*repository.Order, error) {
				require.NotNil(t, filter.CustomerID)
				assert.Equal(t, userID, *filter.CustomerID)
				return nil, nil
			})

		_, err := f.storage.ListOrders(ctx, storage.Actor{UserID: userID, Role: lifecycle.RoleCustomer}, storage.OrderFilter{})
		require.NoError(t, err)
	})

	t.Run("seller filter is pinned to the caller", func(t *testing.T) {
		f := newFixture(t)
		other := uuid.New()
		f.orders.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter storage.OrderFilter) ([]*repository.Order, error) {
				require.NotNil(t, filter.SellerID)
				assert.Equal(t, userID, *filter.SellerID)
				return nil, nil
			})

		_, err := f.storage.ListOrders(ctx, storage.Actor{UserID: userID, Role: lifecycle.RoleSeller}, storage.OrderFilter{SellerID: &other})
		require.NoError(t, err)
	})
}
