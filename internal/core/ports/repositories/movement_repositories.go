package repositories

import (
	"context"

	"github.com/fondita-pos/cash_register_app/internal/core/domain"
)

// MovementReader defines read operations for movement data
type MovementReader interface {
	// FindMovementsByShift retrieves all movements of a shift, newest first.
	FindMovementsByShift(ctx context.Context, shiftID string) ([]domain.Movement, error)

	// FindMovementsByOrderInShift retrieves the movements a given order has
	// already produced in a given shift. The registrar sums these to decide
	// whether anything still needs to be posted.
	FindMovementsByOrderInShift(ctx context.Context, shiftID, orderID string) ([]domain.Movement, error)
}

// MovementWriter defines write operations for movement data.
// Movements are append-only; there is deliberately no update or delete.
type MovementWriter interface {
	SaveMovement(ctx context.Context, movement domain.Movement) error
}

// MovementRepositoryFacade combines all movement-related repository interfaces
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
