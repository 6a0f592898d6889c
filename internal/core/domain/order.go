package domain

import "github.com/shopspring/decimal"

// OrderStatus is the fulfillment state of an order. The ledger consumes these
// transitions as trigger events; the order component itself is external.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderActive    OrderStatus = "active"
	OrderCompleted OrderStatus = "completed"
	OrderPickedUp  OrderStatus = "picked_up"
	OrderCancelled OrderStatus = "cancelled"
)

// Order carries the slice of the external order record that the cash ledger
// needs: identity, branch, money and payment channel.
type Order struct {
	OrderID     string          `json:"orderID"`
	BranchID    string          `json:"branchID"`
	Status      OrderStatus     `json:"status"`
	Total       decimal.Decimal `json:"total"`
	PaymentType string          `json:"paymentType"` // "tienda", "tarjeta" or "online"
}

// PaymentMethod maps the storefront payment type onto a ledger method.
// Unknown values default to cash, matching counter sales.
func (o *Order) PaymentMethod() PaymentMethod {
	switch o.PaymentType {
	case "online":
		return MethodOnline
	case "tarjeta":
		return MethodCard
	default:
		return MethodCash
	}
}

// validTransitions enumerates the allowed order lifecycle edges.
// pending -> active -> completed -> picked_up, with cancellation reachable
// from every state except picked_up-after-cancel (cancelled is terminal).
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderActive, OrderCompleted, OrderCancelled},
	OrderActive:    {OrderCompleted, OrderCancelled},
	OrderCompleted: {OrderPickedUp, OrderCancelled},
	OrderPickedUp:  {OrderCancelled},
	OrderCancelled: {},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// MoneyRecognized reports whether an order in the given status has had its
// revenue recognized in the ledger. Cancelling from such a status requires a
// refund; cancelling from any other status does not.
func MoneyRecognized(status OrderStatus) bool {
	return status == OrderCompleted || status == OrderPickedUp
}
