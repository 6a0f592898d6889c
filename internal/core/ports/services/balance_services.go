package services

import (
	"context"

	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSvcFacade maintains a shift's expected cash balance as signed deltas
// arrive from sales, refunds and manual movements.
type BalanceSvcFacade interface {
	// ApplyDelta applies a signed delta to the shift's expected balance for
	// cash movements; card/online methods are a no-op by design. When view is
	// non-nil it is adjusted optimistically before the durable write and
	// re-fetched from the store if that write ultimately fails.
	ApplyDelta(ctx context.Context, view *domain.Shift, shiftID string, delta decimal.Decimal, method domain.PaymentMethod) error
}
