package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fondita-pos/cash_register_app/internal/apperrors"
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	portsrepo "github.com/fondita-pos/cash_register_app/internal/core/ports/repositories"
	portssvc "github.com/fondita-pos/cash_register_app/internal/core/ports/services"
	"github.com/fondita-pos/cash_register_app/internal/middleware"
)

// shiftService owns the open/closed lifecycle of a till per branch.
type shiftService struct {
	shiftRepo portsrepo.ShiftRepositoryFacade
}

// NewShiftService creates a new ShiftService.
func NewShiftService(shiftRepo portsrepo.ShiftRepositoryFacade) portssvc.ShiftSvcFacade {
	return &shiftService{shiftRepo: shiftRepo}
}

// Ensure shiftService implements the portssvc.ShiftSvcFacade interface
var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

// OpenShift opens a till for the branch. At most one shift may be open per
// branch; the pre-check produces the user-facing error and the store's
// unique index closes the race behind it.
func (s *shiftService) OpenShift(ctx context.Context, branchID string, openingBalance decimal.Decimal, operator string) (*domain.Shift, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if openingBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance %s", apperrors.ErrInvalidAmount, openingBalance.String())
	}

	existing, err := s.shiftRepo.FindOpenShiftByBranch(ctx, branchID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for open shift", slog.String("branch_id", branchID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check for open shift: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyOpenShift
	}

	now := time.Now().UTC()
	shift := domain.Shift{
		ShiftID:         uuid.NewString(),
		BranchID:        branchID,
		Status:          domain.ShiftOpen,
		OpeningBalance:  openingBalance,
		ExpectedBalance: openingBalance,
		OpenedBy:        operator,
		OpenedAt:        now,
	}

	if err := s.shiftRepo.SaveShift(ctx, shift); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyOpenShift) {
			// Lost the check-then-insert race to a concurrent opener.
			return nil, apperrors.ErrAlreadyOpenShift
		}
		logger.Error("Failed to save shift", slog.String("branch_id", branchID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save shift: %w", err)
	}

	logger.Info("Shift opened", slog.String("shift_id", shift.ShiftID), slog.String("branch_id", branchID), slog.String("opening_balance", openingBalance.String()))
	return &shift, nil
}

// CloseShift records the physically counted amount and closes the shift.
// The store update is conditioned on status=open, so a double-close race
// fails with ErrShiftNotOpen instead of overwriting the first count.
func (s *shiftService) CloseShift(ctx context.Context, shiftID string, actualBalance decimal.Decimal) (*domain.Shift, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if actualBalance.IsNegative() {
		return nil, fmt.Errorf("%w: actual balance %s", apperrors.ErrInvalidAmount, actualBalance.String())
	}

	now := time.Now().UTC()
	if err := s.shiftRepo.CloseShift(ctx, shiftID, actualBalance, now); err != nil {
		if errors.Is(err, apperrors.ErrShiftNotOpen) || errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to close shift", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to close shift: %w", err)
	}

	closed, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		logger.Error("Failed to re-fetch closed shift", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch closed shift: %w", err)
	}

	logger.Info("Shift closed",
		slog.String("shift_id", shiftID),
		slog.String("expected_balance", closed.ExpectedBalance.String()),
		slog.String("actual_balance", actualBalance.String()),
		slog.String("difference", closed.Difference().String()),
	)
	return closed, nil
}

// GetShift returns a shift by id regardless of status.
func (s *shiftService) GetShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch shift %s: %w", shiftID, err)
	}
	return shift, nil
}

// GetOpenShift returns the open shift for a branch, or nil when no till is
// open. A branch operating without cash tracking is a normal condition.
func (s *shiftService) GetOpenShift(ctx context.Context, branchID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindOpenShiftByBranch(ctx, branchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open shift for branch %s: %w", branchID, err)
	}
	return shift, nil
}
