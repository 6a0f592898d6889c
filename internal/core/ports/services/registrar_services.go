package services

import (
	"context"

	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	"github.com/fondita-pos/cash_register_app/internal/dto"
)

// RegistrarContext carries the operator's currently loaded shift as a routing
// hint. The router uses it for the fast path only; cross-branch decisions are
// always re-validated against the store, never trusted from this cache.
type RegistrarContext struct {
	LoadedShift *domain.Shift
}

// RegistrarSvcFacade posts the financial effect of orders and manual entries
// to the ledger with at-most-once net registration per (order, shift).
type RegistrarSvcFacade interface {
	// RegisterSale posts the order's total as a sale movement to the shift
	// owning the order's branch. Safe to call repeatedly: once the recorded
	// net for the order is within tolerance of the total it is a no-op.
	// A missing open shift for the branch is a no-op, not an error.
	RegisterSale(ctx context.Context, rc RegistrarContext, order domain.Order) error

	// RegisterRefund reverses previously recognized money with an offsetting
	// expense movement. A no-op unless a positive net was recorded.
	RegisterRefund(ctx context.Context, rc RegistrarContext, order domain.Order) error

	// RegisterManualMovement posts a manual income or expense to an open
	// shift. Validation (positive amount, expense description) happens before
	// any write.
	RegisterManualMovement(ctx context.Context, shiftID string, req dto.RegisterMovementRequest, operator string) (*domain.Movement, error)
}

// ShiftRouterFacade resolves which open shift an order's money lands in,
// independent of the branch the operator is currently viewing.
type ShiftRouterFacade interface {
	// TargetShift returns the open shift for the branch, the loaded shift
	// when it already matches, or nil when no till is open for the branch.
	TargetShift(ctx context.Context, rc RegistrarContext, branchID string) (*domain.Shift, error)
}
