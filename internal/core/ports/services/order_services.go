package services

import (
	"context"

	"github.com/fondita-pos/cash_register_app/internal/core/domain"
)

// OrderSvcFacade drives the order state machine and fires ledger registration
// on the transitions that recognize or reverse money.
type OrderSvcFacade interface {
	// UpdateOrderStatus validates and persists a status transition, then
	// triggers sale/refund registration as a side effect. Ledger posting
	// failures are logged and never fail the transition: order state is
	// authoritative, ledger state is best-effort reconciliation.
	UpdateOrderStatus(ctx context.Context, rc RegistrarContext, orderID string, newStatus domain.OrderStatus) (*domain.Order, error)

	// GetOrder returns the ledger's view of an order.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}
