package services

import (
	"context"

	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShiftSvcFacade owns the open/closed lifecycle of a till per branch.
type ShiftSvcFacade interface {
	// OpenShift opens a till for the branch with a counted opening float.
	// Fails with apperrors.ErrAlreadyOpenShift when the branch already has an
	// open shift, and apperrors.ErrInvalidAmount for a negative float.
	OpenShift(ctx context.Context, branchID string, openingBalance decimal.Decimal, operator string) (*domain.Shift, error)

	// CloseShift records the counted balance, closes the shift irreversibly
	// and returns the closed shift with its reconciliation difference
	// computable from it. Fails with apperrors.ErrShiftNotOpen when the shift
	// was already closed (double-close race included).
	CloseShift(ctx context.Context, shiftID string, actualBalance decimal.Decimal) (*domain.Shift, error)

	// GetOpenShift returns the branch's open shift, or nil when no till is
	// open (which is not an error).
	GetOpenShift(ctx context.Context, branchID string) (*domain.Shift, error)

	// GetShift returns a shift by id regardless of status. Fails with
	// apperrors.ErrNotFound when it does not exist.
	GetShift(ctx context.Context, shiftID string) (*domain.Shift, error)
}
