package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fondita-pos/cash_register_app/internal/apperrors"
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	portsrepo "github.com/fondita-pos/cash_register_app/internal/core/ports/repositories"
	portssvc "github.com/fondita-pos/cash_register_app/internal/core/ports/services"
	"github.com/fondita-pos/cash_register_app/internal/middleware"
)

// BalanceUpdateStrategy applies a signed delta to a shift's durable expected
// balance. Two implementations exist: the atomic server-side increment
// (preferred) and a read-modify-write fallback for stores that lack the
// increment primitive.
type BalanceUpdateStrategy interface {
	Apply(ctx context.Context, shiftID string, delta decimal.Decimal) error
	Name() string
}

// atomicIncrementStrategy delegates to the store's conditional increment.
// A single statement, never read-then-write, so concurrent writers compose.
type atomicIncrementStrategy struct {
	repo portsrepo.BalanceIncrementer
}

func (s *atomicIncrementStrategy) Apply(ctx context.Context, shiftID string, delta decimal.Decimal) error {
	return s.repo.IncrementExpectedBalance(ctx, shiftID, delta)
}

func (s *atomicIncrementStrategy) Name() string { return "atomic-increment" }

// readModifyWriteStrategy fetches the balance, adds the delta and writes the
// result back unconditionally. Degraded mode: two concurrent writers can lose
// an update in the window between read and write. Documented, not fixed.
type readModifyWriteStrategy struct {
	repo portsrepo.ShiftRepositoryFacade
}

func (s *readModifyWriteStrategy) Apply(ctx context.Context, shiftID string, delta decimal.Decimal) error {
	shift, err := s.repo.FindShiftByID(ctx, shiftID)
	if err != nil {
		return err
	}
	if !shift.IsOpen() {
		return apperrors.ErrShiftNotOpen
	}
	return s.repo.UpdateExpectedBalance(ctx, shiftID, shift.ExpectedBalance.Add(delta))
}

func (s *readModifyWriteStrategy) Name() string { return "read-modify-write" }

// balanceService maintains expected_balance as movements arrive. Only cash
// movements touch the drawer figure; card/online settle outside it.
type balanceService struct {
	shiftRepo portsrepo.ShiftRepositoryFacade
	primary   BalanceUpdateStrategy
	fallback  BalanceUpdateStrategy
}

// NewBalanceService selects the balance update strategy by probing the
// store's increment primitive once at startup, rather than catching errors
// ad hoc at each call site. The probe targets a throwaway shift id: hitting
// no row proves the statement executes; only a store-level failure demotes
// the service to the read-modify-write fallback.
func NewBalanceService(ctx context.Context, shiftRepo portsrepo.ShiftRepositoryFacade) portssvc.BalanceSvcFacade {
	logger := middleware.GetLoggerFromCtx(ctx)

	svc := &balanceService{
		shiftRepo: shiftRepo,
		fallback:  &readModifyWriteStrategy{repo: shiftRepo},
	}

	probeErr := shiftRepo.IncrementExpectedBalance(ctx, uuid.NewString(), decimal.Zero)
	if probeErr == nil || errors.Is(probeErr, apperrors.ErrShiftNotOpen) || errors.Is(probeErr, apperrors.ErrNotFound) {
		svc.primary = &atomicIncrementStrategy{repo: shiftRepo}
	} else {
		logger.Warn("Atomic increment unavailable, degrading to read-modify-write", slog.String("error", probeErr.Error()))
		svc.primary = svc.fallback
	}
	return svc
}

// Ensure balanceService implements the portssvc.BalanceSvcFacade interface
var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// ApplyDelta applies a signed cash delta to the shift's expected balance.
// When view is non-nil it is adjusted optimistically first so callers can
// render the new figure immediately; the optimistic value is display-only
// and is replaced by a re-fetch if the durable write fails.
func (s *balanceService) ApplyDelta(ctx context.Context, view *domain.Shift, shiftID string, delta decimal.Decimal, method domain.PaymentMethod) error {
	if method != domain.MethodCash {
		return nil
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	if view != nil && view.ShiftID == shiftID {
		view.ExpectedBalance = view.ExpectedBalance.Add(delta)
	}

	err := s.primary.Apply(ctx, shiftID, delta)
	if err != nil && apperrors.IsTransient(err) && s.primary != s.fallback {
		logger.Warn("Balance increment failed, trying fallback path",
			slog.String("shift_id", shiftID),
			slog.String("strategy", s.primary.Name()),
			slog.String("error", err.Error()),
		)
		err = s.fallback.Apply(ctx, shiftID, delta)
	}

	if err != nil {
		s.revertOptimistic(ctx, view, shiftID)
		return fmt.Errorf("failed to apply balance delta %s to shift %s: %w", delta.String(), shiftID, err)
	}
	return nil
}

// revertOptimistic replaces the caller's optimistic view with authoritative
// state. When even the re-fetch fails the view is left stale; the caller
// already receives the write error and must reload before trusting it.
func (s *balanceService) revertOptimistic(ctx context.Context, view *domain.Shift, shiftID string) {
	if view == nil || view.ShiftID != shiftID {
		return
	}
	fresh, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to re-fetch shift after balance write failure", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
		return
	}
	*view = *fresh
}
