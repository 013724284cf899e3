package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusChangeAllowed(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"customer cancels processing order", RoleCustomer, OrderProcessing, OrderCancelled, true},
		{"customer cancels shipped order", RoleCustomer, OrderShipped, OrderCancelled, false},
		{"customer cancels delivered order", RoleCustomer, OrderDelivered, OrderCancelled, false},
		{"customer ships own order", RoleCustomer, OrderProcessing, OrderShipped, false},
		{"seller ships processing order", RoleSeller, OrderProcessing, OrderShipped, true},
		{"seller delivers shipped order", RoleSeller, OrderShipped, OrderDelivered, true},
		{"seller cancels processing order", RoleSeller, OrderProcessing, OrderCancelled, true},
		{"seller cancels shipped order", RoleSeller, OrderShipped, OrderCancelled, false},
		{"seller cancels delivered order", RoleSeller, OrderDelivered, OrderCancelled, false},
		{"seller reopens cancelled order", RoleSeller, OrderCancelled, OrderProcessing, false},
		{"admin cancels delivered order", RoleAdmin, OrderDelivered, OrderCancelled, true},
		{"no-op keeps status", RoleCustomer, OrderShipped, OrderShipped, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, OrderStatusChangeAllowed(tc.role, tc.from, tc.to))
		})
	}
}

func TestServiceStatusChangeAllowed(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		from    ServiceStatus
		to      ServiceStatus
		allowed bool
	}{
		{"repairer accepts pending request", RoleRepairer, ServicePending, ServiceAccepted, true},
		{"repairer starts accepted request", RoleRepairer, ServiceAccepted, ServiceInProgress, true},
		{"repairer completes in-progress request", RoleRepairer, ServiceInProgress, ServiceCompleted, true},
		{"status no-op on completed request", RoleRepairer, ServiceCompleted, ServiceCompleted, true},
		{"repairer cancels completed request", RoleRepairer, ServiceCompleted, ServiceCancelled, false},
		{"repairer reaccepts completed request", RoleRepairer, ServiceCompleted, ServiceAccepted, false},
		{"owner cancels pending request", RoleCustomer, ServicePending, ServiceCancelled, true},
		{"owner reopens cancelled request", RoleCustomer, ServiceCancelled, ServicePending, true},
		{"owner completes own request", RoleCustomer, ServiceInProgress, ServiceCompleted, false},
		{"owner cancels completed request", RoleCustomer, ServiceCompleted, ServiceCancelled, false},
		{"admin cancels in-progress request", RoleAdmin, ServiceInProgress, ServiceCancelled, true},
		{"admin cancels completed request", RoleAdmin, ServiceCompleted, ServiceCancelled, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, ServiceStatusChangeAllowed(tc.role, tc.from, tc.to))
		})
	}
}

func TestSellerOrderFields(t *testing.T) {
	assert.True(t, SellerOrderFields["trackingNumber"])
	assert.True(t, SellerOrderFields["orderStatus"])
	assert.False(t, SellerOrderFields["totalPrice"])
	assert.False(t, SellerOrderFields["paymentStatus"])
}
