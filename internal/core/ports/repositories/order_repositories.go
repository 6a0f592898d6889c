package repositories

import (
	"context"

	"github.com/fondita-pos/cash_register_app/internal/core/domain"
)

// OrderReader defines read operations for the order records the ledger consumes.
type OrderReader interface {
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
}

// OrderWriter defines the single write the ledger performs against orders.
type OrderWriter interface {
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
}

// OrderRepositoryFacade combines order repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
