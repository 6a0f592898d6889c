package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fondita-pos/cash_register_app/internal/apperrors"
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	portsrepo "github.com/fondita-pos/cash_register_app/internal/core/ports/repositories"
	portssvc "github.com/fondita-pos/cash_register_app/internal/core/ports/services"
)

// reportingService serves ledger history and per-method totals. Totals are
// always recomputed from the movement rows, never read from a cached figure,
// so they stay reconcilable with the balance accumulator by replay.
type reportingService struct {
	shiftRepo    portsrepo.ShiftReader
	movementRepo portsrepo.MovementReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(shiftRepo portsrepo.ShiftReader, movementRepo portsrepo.MovementReader) portssvc.ReportingSvcFacade {
	return &reportingService{shiftRepo: shiftRepo, movementRepo: movementRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetShiftTotals folds the shift's movements into per-method buckets.
func (s *reportingService) GetShiftTotals(ctx context.Context, shiftID string) (domain.ShiftTotals, error) {
	if _, err := s.shiftRepo.FindShiftByID(ctx, shiftID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.ShiftTotals{}, err
		}
		return domain.ShiftTotals{}, fmt.Errorf("failed to fetch shift %s: %w", shiftID, err)
	}

	movements, err := s.movementRepo.FindMovementsByShift(ctx, shiftID)
	if err != nil {
		return domain.ShiftTotals{}, fmt.Errorf("failed to load movements for shift %s: %w", shiftID, err)
	}
	return domain.ComputeTotals(movements), nil
}

// ListPastShifts returns closed shifts for a branch, newest close first.
func (s *reportingService) ListPastShifts(ctx context.Context, branchID string, limit int) ([]domain.Shift, error) {
	shifts, err := s.shiftRepo.ListClosedShiftsByBranch(ctx, branchID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed shifts for branch %s: %w", branchID, err)
	}
	return shifts, nil
}

// ListShiftMovements returns the shift's movements, newest first.
func (s *reportingService) ListShiftMovements(ctx context.Context, shiftID string) ([]domain.Movement, error) {
	if _, err := s.shiftRepo.FindShiftByID(ctx, shiftID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch shift %s: %w", shiftID, err)
	}

	movements, err := s.movementRepo.FindMovementsByShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to load movements for shift %s: %w", shiftID, err)
	}
	return movements, nil
}
