package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fondita-pos/cash_register_app/internal/apperrors"
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	portsrepo "github.com/fondita-pos/cash_register_app/internal/core/ports/repositories"
	portssvc "github.com/fondita-pos/cash_register_app/internal/core/ports/services"
	"github.com/fondita-pos/cash_register_app/internal/middleware"
)

// orderService drives the order state machine and fires ledger registration
// on the transitions that move money.
type orderService struct {
	orderRepo portsrepo.OrderRepositoryFacade
	registrar portssvc.RegistrarSvcFacade
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, registrar portssvc.RegistrarSvcFacade) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: orderRepo, registrar: registrar}
}

// Ensure orderService implements the portssvc.OrderSvcFacade interface
var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// UpdateOrderStatus validates and persists a status transition, then posts
// the ledger effect. Order state is authoritative: the transition is saved
// first, and a registrar failure is logged but never rolls it back. The
// ledger's idempotent registration lets a later retry heal the gap.
func (s *orderService) UpdateOrderStatus(ctx context.Context, rc portssvc.RegistrarContext, orderID string, newStatus domain.OrderStatus) (*domain.Order, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}

	previous := order.Status
	if !domain.CanTransition(previous, newStatus) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidTransition, previous, newStatus)
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, newStatus); err != nil {
		logger.Error("Failed to update order status", slog.String("order_id", orderID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update order %s status: %w", orderID, err)
	}
	order.Status = newStatus

	// RegisterSale fires on every money-recognizing transition, not only the
	// first: the registrar's net check makes repeats no-ops, and the repeat is
	// what heals an order whose earlier registration found no open till or
	// failed and was swallowed.
	switch {
	case domain.MoneyRecognized(newStatus):
		if err := s.registrar.RegisterSale(ctx, rc, *order); err != nil {
			logger.Error("Order transitioned but sale registration failed",
				slog.String("order_id", orderID),
				slog.String("status", string(newStatus)),
				slog.String("error", err.Error()),
			)
		}
	case newStatus == domain.OrderCancelled && domain.MoneyRecognized(previous):
		if err := s.registrar.RegisterRefund(ctx, rc, *order); err != nil {
			logger.Error("Order cancelled but refund registration failed",
				slog.String("order_id", orderID),
				slog.String("error", err.Error()),
			)
		}
	}

	logger.Info("Order status updated",
		slog.String("order_id", orderID),
		slog.String("from", string(previous)),
		slog.String("to", string(newStatus)),
	)
	return order, nil
}

// GetOrder returns the ledger's view of an order.
func (s *orderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}
	return order, nil
}
