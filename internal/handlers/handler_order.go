package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fondita-pos/cash_register_app/internal/apperrors"
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	portssvc "github.com/fondita-pos/cash_register_app/internal/core/ports/services"
	"github.com/fondita-pos/cash_register_app/internal/dto"
	"github.com/fondita-pos/cash_register_app/internal/middleware"
)

// orderHandler handles HTTP requests related to orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
	shiftService portssvc.ShiftSvcFacade
}

// newOrderHandler creates a new orderHandler.
func newOrderHandler(orderService portssvc.OrderSvcFacade, shiftService portssvc.ShiftSvcFacade) *orderHandler {
	return &orderHandler{orderService: orderService, shiftService: shiftService}
}

// updateOrderStatus transitions the order and triggers ledger registration.
// The client may name the shift it currently has loaded; the hint is resolved
// here so the registrar gets a shift snapshot, never a raw id.
func (h *orderHandler) updateOrderStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	req := dto.UpdateOrderStatusRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdateOrderStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rc := portssvc.RegistrarContext{}
	if req.LoadedShiftID != "" {
		loaded, err := h.shiftService.GetShift(c.Request.Context(), req.LoadedShiftID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to resolve loaded shift hint", slog.String("shift_id", req.LoadedShiftID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		// A stale or unknown hint is simply dropped; the router re-resolves.
		rc.LoadedShift = loaded
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), rc, orderID, domain.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Order not found", slog.String("order_id", orderID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			logger.Warn("Invalid order transition", slog.String("order_id", orderID), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update order status", slog.String("order_id", orderID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// getOrder returns the ledger's view of an order.
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		logger.Error("Failed to get order", slog.String("order_id", orderID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// registerOrderRoutes registers order specific routes
func registerOrderRoutes(group *gin.RouterGroup, services *portssvc.ServiceContainer) {
	orderHandler := newOrderHandler(services.Order, services.Shift)

	orders := group.Group("/orders")
	{
		orders.GET("/:orderID", orderHandler.getOrder)
		orders.PATCH("/:orderID/status", orderHandler.updateOrderStatus)
	}
}
