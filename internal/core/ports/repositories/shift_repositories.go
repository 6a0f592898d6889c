package repositories

import (
	"context"
	"time"

	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShiftReader defines read operations for shift data
type ShiftReader interface {
	// FindShiftByID retrieves a specific shift by its unique identifier.
	FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error)

	// FindOpenShiftByBranch retrieves the open shift for a branch.
	// Returns apperrors.ErrNotFound when no shift is open for the branch.
	FindOpenShiftByBranch(ctx context.Context, branchID string) (*domain.Shift, error)

	// ListClosedShiftsByBranch retrieves closed shifts for a branch, newest
	// close first, up to limit rows.
	ListClosedShiftsByBranch(ctx context.Context, branchID string, limit int) ([]domain.Shift, error)
}

// ShiftWriter defines write operations for shift data
type ShiftWriter interface {
	// SaveShift persists a newly opened shift. Returns
	// apperrors.ErrAlreadyOpenShift when the branch already has an open shift.
	SaveShift(ctx context.Context, shift domain.Shift) error

	// CloseShift records the counted balance and closes the shift. The update
	// is conditioned on the stored status being open; a lost race returns
	// apperrors.ErrShiftNotOpen.
	CloseShift(ctx context.Context, shiftID string, actualBalance decimal.Decimal, closedAt time.Time) error

	// UpdateExpectedBalance overwrites the expected balance unconditionally.
	// This is the degraded read-modify-write path only; concurrent writers can
	// lose updates through it.
	UpdateExpectedBalance(ctx context.Context, shiftID string, balance decimal.Decimal) error
}

// BalanceIncrementer is the atomic server-side increment primitive. It is the
// preferred way to maintain expected_balance under concurrent writers.
type BalanceIncrementer interface {
	// IncrementExpectedBalance adds delta to the shift's expected balance in a
	// single conditional statement. Returns apperrors.ErrShiftNotOpen when the
	// shift is missing or closed.
	IncrementExpectedBalance(ctx context.Context, shiftID string, delta decimal.Decimal) error
}

// ShiftRepositoryFacade combines all shift-related repository interfaces
type ShiftRepositoryFacade interface {
	ShiftReader
	ShiftWriter
	BalanceIncrementer
}
