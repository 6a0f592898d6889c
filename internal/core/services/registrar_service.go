package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fondita-pos/cash_register_app/internal/apperrors"
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	portsrepo "github.com/fondita-pos/cash_register_app/internal/core/ports/repositories"
	portssvc "github.com/fondita-pos/cash_register_app/internal/core/ports/services"
	"github.com/fondita-pos/cash_register_app/internal/dto"
	"github.com/fondita-pos/cash_register_app/internal/middleware"
)

// saleEpsilon is the tolerance used when comparing an order's already
// registered net against its total. Re-deliveries and duplicate status
// callbacks land inside the window and become no-ops.
var saleEpsilon = decimal.NewFromInt(5)

// minExpenseDescriptionLen is the minimum rune count for a manual expense
// description. Expenses are the audit-sensitive direction of the drawer.
const minExpenseDescriptionLen = 3

// automatedOperator marks ledger lines posted by the order flow itself when
// no authenticated operator is on the context.
const automatedOperator = "system"

// actingOperator attributes an automated posting to the operator driving the
// request, never to whoever happened to open the till.
func actingOperator(ctx context.Context) string {
	if operator, ok := middleware.GetUserIDFromCtx(ctx); ok {
		return operator
	}
	return automatedOperator
}

// registrarService posts order money and manual movements into the ledger.
// All order registration is idempotent: the ledger itself is the dedupe
// record, keyed by (shift, order).
type registrarService struct {
	movementRepo portsrepo.MovementRepositoryFacade
	shiftRepo    portsrepo.ShiftReader
	router       portssvc.ShiftRouterFacade
	balanceSvc   portssvc.BalanceSvcFacade
}

// NewRegistrarService creates a new RegistrarService.
func NewRegistrarService(
	movementRepo portsrepo.MovementRepositoryFacade,
	shiftRepo portsrepo.ShiftReader,
	router portssvc.ShiftRouterFacade,
	balanceSvc portssvc.BalanceSvcFacade,
) portssvc.RegistrarSvcFacade {
	return &registrarService{
		movementRepo: movementRepo,
		shiftRepo:    shiftRepo,
		router:       router,
		balanceSvc:   balanceSvc,
	}
}

// Ensure registrarService implements the portssvc.RegistrarSvcFacade interface
var _ portssvc.RegistrarSvcFacade = (*registrarService)(nil)

// currentNet computes how much of the order's money the ledger already
// recognizes within the shift: sales minus expenses, over movements linked
// to the order. Manual income rows never carry an order id, so they cannot
// leak into the fold.
func (s *registrarService) currentNet(ctx context.Context, shiftID, orderID string) (decimal.Decimal, error) {
	movements, err := s.movementRepo.FindMovementsByOrderInShift(ctx, shiftID, orderID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load movements for order %s in shift %s: %w", orderID, shiftID, err)
	}

	net := decimal.Zero
	for _, m := range movements {
		switch m.Type {
		case domain.MovementSale:
			net = net.Add(m.Amount)
		case domain.MovementExpense:
			net = net.Sub(m.Amount)
		}
	}
	return net, nil
}

// RegisterSale records the order's total as a sale movement in the branch's
// open shift. Safe to call on every money-recognizing transition: if the
// order's net is already within epsilon of the total, nothing is written.
// No open shift for the branch means the money is simply not tracked.
func (s *registrarService) RegisterSale(ctx context.Context, rc portssvc.RegistrarContext, order domain.Order) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	shift, err := s.router.TargetShift(ctx, rc, order.BranchID)
	if err != nil {
		return err
	}
	if shift == nil {
		logger.Info("No open shift for branch, sale not registered", slog.String("branch_id", order.BranchID), slog.String("order_id", order.OrderID))
		return nil
	}

	desired := order.Total.Round(0)
	net, err := s.currentNet(ctx, shift.ShiftID, order.OrderID)
	if err != nil {
		return err
	}
	if desired.Sub(net).Abs().LessThan(saleEpsilon) {
		logger.Info("Sale already registered, skipping",
			slog.String("order_id", order.OrderID),
			slog.String("shift_id", shift.ShiftID),
			slog.String("net", net.String()),
		)
		return nil
	}

	orderID := order.OrderID
	movement := domain.Movement{
		MovementID:    uuid.NewString(),
		ShiftID:       shift.ShiftID,
		Type:          domain.MovementSale,
		Amount:        desired,
		PaymentMethod: order.PaymentMethod(),
		Description:   fmt.Sprintf("Venta orden %s", orderID),
		OrderID:       &orderID,
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     actingOperator(ctx),
	}
	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		return fmt.Errorf("failed to save sale movement for order %s: %w", orderID, err)
	}

	if err := s.balanceSvc.ApplyDelta(ctx, rc.LoadedShift, shift.ShiftID, desired, movement.PaymentMethod); err != nil {
		logger.Error("Sale recorded but balance update failed",
			slog.String("order_id", orderID),
			slog.String("shift_id", shift.ShiftID),
			slog.String("error", err.Error()),
		)
		return err
	}

	logger.Info("Sale registered",
		slog.String("order_id", orderID),
		slog.String("shift_id", shift.ShiftID),
		slog.String("amount", desired.String()),
		slog.String("payment_method", string(movement.PaymentMethod)),
	)
	return nil
}

// RegisterRefund reverses the order's recognized money with an expense
// movement. Only money the ledger actually recognizes is reversed: an order
// cancelled before any sale was registered produces nothing, and the refund
// amount is deliberately the current net, never the order total, so a
// partially registered order cannot over-reverse the drawer.
func (s *registrarService) RegisterRefund(ctx context.Context, rc portssvc.RegistrarContext, order domain.Order) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	shift, err := s.router.TargetShift(ctx, rc, order.BranchID)
	if err != nil {
		return err
	}
	if shift == nil {
		logger.Info("No open shift for branch, refund not registered", slog.String("branch_id", order.BranchID), slog.String("order_id", order.OrderID))
		return nil
	}

	net, err := s.currentNet(ctx, shift.ShiftID, order.OrderID)
	if err != nil {
		return err
	}
	if net.LessThanOrEqual(saleEpsilon) {
		logger.Info("No recognized money to refund, skipping",
			slog.String("order_id", order.OrderID),
			slog.String("shift_id", shift.ShiftID),
			slog.String("net", net.String()),
		)
		return nil
	}

	orderID := order.OrderID
	movement := domain.Movement{
		MovementID:    uuid.NewString(),
		ShiftID:       shift.ShiftID,
		Type:          domain.MovementExpense,
		Amount:        net,
		PaymentMethod: order.PaymentMethod(),
		Description:   fmt.Sprintf("Reembolso orden %s", orderID),
		OrderID:       &orderID,
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     actingOperator(ctx),
	}
	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		return fmt.Errorf("failed to save refund movement for order %s: %w", orderID, err)
	}

	if err := s.balanceSvc.ApplyDelta(ctx, rc.LoadedShift, shift.ShiftID, net.Neg(), movement.PaymentMethod); err != nil {
		logger.Error("Refund recorded but balance update failed",
			slog.String("order_id", orderID),
			slog.String("shift_id", shift.ShiftID),
			slog.String("error", err.Error()),
		)
		return err
	}

	logger.Info("Refund registered",
		slog.String("order_id", orderID),
		slog.String("shift_id", shift.ShiftID),
		slog.String("amount", net.String()),
	)
	return nil
}

// RegisterManualMovement records an operator-entered income or expense
// against an explicit shift. Validation happens before any write: amount
// must be positive and expenses carry a meaningful description.
func (s *registrarService) RegisterManualMovement(ctx context.Context, shiftID string, req dto.RegisterMovementRequest, operator string) (*domain.Movement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	movementType := domain.MovementType(req.Type)
	if movementType != domain.MovementIncome && movementType != domain.MovementExpense {
		return nil, fmt.Errorf("%w: movement type %q cannot be entered manually", apperrors.ErrValidation, req.Type)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount %s", apperrors.ErrInvalidAmount, req.Amount.String())
	}
	if movementType == domain.MovementExpense && utf8.RuneCountInString(req.Description) < minExpenseDescriptionLen {
		return nil, fmt.Errorf("%w: expense description must be at least %d characters", apperrors.ErrMissingDescription, minExpenseDescriptionLen)
	}

	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch shift %s: %w", shiftID, err)
	}
	if !shift.IsOpen() {
		return nil, apperrors.ErrShiftNotOpen
	}

	movement := domain.Movement{
		MovementID:    uuid.NewString(),
		ShiftID:       shiftID,
		Type:          movementType,
		Amount:        req.Amount,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Description:   req.Description,
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     operator,
	}
	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to save manual movement: %w", err)
	}

	if err := s.balanceSvc.ApplyDelta(ctx, nil, shiftID, movement.SignedAmount(), movement.PaymentMethod); err != nil {
		logger.Error("Manual movement recorded but balance update failed",
			slog.String("movement_id", movement.MovementID),
			slog.String("shift_id", shiftID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	logger.Info("Manual movement registered",
		slog.String("movement_id", movement.MovementID),
		slog.String("shift_id", shiftID),
		slog.String("type", string(movementType)),
		slog.String("amount", req.Amount.String()),
	)
	return &movement, nil
}
