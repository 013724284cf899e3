package lifecycle

type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

type orderTransition struct {
	role Role
	from OrderStatus
	to   OrderStatus
}

// A seller moves an order through fulfilment but may not cancel once it
// has shipped. A customer may only cancel, and only while the order is
// still processing. Admin transitions are unrestricted and bypass the
// table entirely.
var orderTransitions = map[orderTransition]bool{
	{RoleSeller, OrderProcessing, OrderShipped}:   true,
	{RoleSeller, OrderProcessing, OrderDelivered}: true,
	{RoleSeller, OrderProcessing, OrderCancelled}: true,
	{RoleSeller, OrderShipped, OrderDelivered}:    true,

	{RoleCustomer, OrderProcessing, OrderCancelled}: true,
}

// OrderStatusChangeAllowed reports whether role may move an order from
// one status to another. A no-op (from == to) is always allowed.
func OrderStatusChangeAllowed(role Role, from, to OrderStatus) bool {
	if from == to {
		return true
	}
	if role == RoleAdmin {
		return true
	}
	return orderTransitions[orderTransition{role, from, to}]
}

// SellerOrderFields is the set of JSON keys a seller may touch on an
// order update. Any other key rejects the entire update.
var SellerOrderFields = map[string]bool{
	"orderStatus":       true,
	"trackingNumber":    true,
	"shippingMethod":    true,
	"estimatedDelivery": true,
	"actualDelivery":    true,
}
