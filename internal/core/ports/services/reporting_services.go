package services

import (
	"context"

	"github.com/fondita-pos/cash_register_app/internal/core/domain"
)

// ReportingSvcFacade provides read-only ledger history and totals.
type ReportingSvcFacade interface {
	// GetShiftTotals folds a shift's movements into per-method buckets.
	GetShiftTotals(ctx context.Context, shiftID string) (domain.ShiftTotals, error)

	// ListPastShifts returns closed shifts for a branch, newest close first.
	ListPastShifts(ctx context.Context, branchID string, limit int) ([]domain.Shift, error)

	// ListShiftMovements returns a shift's movements, newest first.
	ListShiftMovements(ctx context.Context, shiftID string) ([]domain.Movement, error)
}
