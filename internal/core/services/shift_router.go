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

// shiftRouter resolves which open shift an order's money lands in. An
// operator may be viewing an aggregate all-branches board while orders
// arrive for several branches at once, so the loaded shift is only a hint.
type shiftRouter struct {
	shiftRepo portsrepo.ShiftReader
}

// NewShiftRouter creates a new ShiftRouter.
func NewShiftRouter(shiftRepo portsrepo.ShiftReader) portssvc.ShiftRouterFacade {
	return &shiftRouter{shiftRepo: shiftRepo}
}

// Ensure shiftRouter implements the portssvc.ShiftRouterFacade interface
var _ portssvc.ShiftRouterFacade = (*shiftRouter)(nil)

// TargetShift returns the open shift for the order's branch. The loaded
// shift is used directly only when it belongs to that branch and is still
// open (fast path, no round-trip); anything else goes back to the store.
// Returns nil when no till is open for the branch: the caller must treat
// that as "nothing to post to", not as an error.
func (r *shiftRouter) TargetShift(ctx context.Context, rc portssvc.RegistrarContext, branchID string) (*domain.Shift, error) {
	if rc.LoadedShift != nil && rc.LoadedShift.BranchID == branchID && rc.LoadedShift.IsOpen() {
		return rc.LoadedShift, nil
	}

	shift, err := r.shiftRepo.FindOpenShiftByBranch(ctx, branchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve open shift for branch %s: %w", branchID, err)
	}
	return shift, nil
}
