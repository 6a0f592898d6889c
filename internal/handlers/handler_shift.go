package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fondita-pos/cash_register_app/internal/apperrors"
	portssvc "github.com/fondita-pos/cash_register_app/internal/core/ports/services"
	"github.com/fondita-pos/cash_register_app/internal/dto"
	"github.com/fondita-pos/cash_register_app/internal/middleware"
)

// shiftHandler handles HTTP requests related to shifts and their movements.
type shiftHandler struct {
	shiftService     portssvc.ShiftSvcFacade
	registrarService portssvc.RegistrarSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// newShiftHandler creates a new shiftHandler.
func newShiftHandler(shiftService portssvc.ShiftSvcFacade, registrarService portssvc.RegistrarSvcFacade, reportingService portssvc.ReportingSvcFacade) *shiftHandler {
	return &shiftHandler{
		shiftService:     shiftService,
		registrarService: registrarService,
		reportingService: reportingService,
	}
}

// openShift opens a till for the branch with the counted opening float.
func (h *shiftHandler) openShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	req := dto.OpenShiftRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for OpenShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	operatorID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	shift, err := h.shiftService.OpenShift(c.Request.Context(), branchID, req.OpeningBalance, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAlreadyOpenShift):
			logger.Warn("Shift already open for branch", slog.String("branch_id", branchID))
			c.JSON(http.StatusConflict, gin.H{"error": "A shift is already open for this branch"})
		case errors.Is(err, apperrors.ErrInvalidAmount):
			logger.Warn("Invalid opening balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to open shift", slog.String("branch_id", branchID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open shift"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftResponse(shift))
}

// getCurrentShift returns the branch's open shift, or 404 when no till is open.
func (h *shiftHandler) getCurrentShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	shift, err := h.shiftService.GetOpenShift(c.Request.Context(), branchID)
	if err != nil {
		logger.Error("Failed to get open shift", slog.String("branch_id", branchID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve current shift"})
		return
	}
	if shift == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No open shift for this branch"})
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// listShifts returns the branch's closed shift history, newest close first.
func (h *shiftHandler) listShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	shifts, err := h.reportingService.ListPastShifts(c.Request.Context(), branchID, limit)
	if err != nil {
		logger.Error("Failed to list shifts", slog.String("branch_id", branchID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shifts"})
		return
	}

	c.JSON(http.StatusOK, dto.ListShiftsResponse{Shifts: dto.ToShiftResponses(shifts)})
}

// closeShift records the counted balance and closes the shift.
func (h *shiftHandler) closeShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	req := dto.CloseShiftRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CloseShift", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	shift, err := h.shiftService.CloseShift(c.Request.Context(), shiftID, req.ActualBalance)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Shift not found", slog.String("shift_id", shiftID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, apperrors.ErrShiftNotOpen):
			logger.Warn("Shift already closed", slog.String("shift_id", shiftID))
			c.JSON(http.StatusConflict, gin.H{"error": "Shift is not open"})
		case errors.Is(err, apperrors.ErrInvalidAmount):
			logger.Warn("Invalid actual balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to close shift", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close shift"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftResponse(shift))
}

// listMovements returns the shift's ledger lines, newest first.
func (h *shiftHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	movements, err := h.reportingService.ListShiftMovements(c.Request.Context(), shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
			return
		}
		logger.Error("Failed to list movements", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movements"})
		return
	}

	c.JSON(http.StatusOK, dto.ListMovementsResponse{Movements: dto.ToMovementResponses(movements)})
}

// getTotals returns the shift's per-method totals computed from its movements.
func (h *shiftHandler) getTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	totals, err := h.reportingService.GetShiftTotals(c.Request.Context(), shiftID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
			return
		}
		logger.Error("Failed to compute totals", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute totals"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTotalsResponse(totals))
}

// registerMovement posts a manual income or expense to the shift.
func (h *shiftHandler) registerMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shiftID := c.Param("shiftID")

	req := dto.RegisterMovementRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for RegisterMovement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	operatorID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	movement, err := h.registrarService.RegisterManualMovement(c.Request.Context(), shiftID, req, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation),
			errors.Is(err, apperrors.ErrInvalidAmount),
			errors.Is(err, apperrors.ErrMissingDescription):
			logger.Warn("Invalid manual movement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Shift not found", slog.String("shift_id", shiftID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		case errors.Is(err, apperrors.ErrShiftNotOpen):
			logger.Warn("Movement rejected, shift not open", slog.String("shift_id", shiftID))
			c.JSON(http.StatusConflict, gin.H{"error": "Shift is not open"})
		default:
			logger.Error("Failed to register movement", slog.String("shift_id", shiftID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register movement"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// registerShiftRoutes registers shift and movement specific routes
func registerShiftRoutes(group *gin.RouterGroup, services *portssvc.ServiceContainer) {
	shiftHandler := newShiftHandler(services.Shift, services.Registrar, services.Reporting)

	branches := group.Group("/branches")
	{
		branches.POST("/:branchID/shifts", shiftHandler.openShift)
		branches.GET("/:branchID/shifts/current", shiftHandler.getCurrentShift)
		branches.GET("/:branchID/shifts", shiftHandler.listShifts)
	}

	shifts := group.Group("/shifts")
	{
		shifts.POST("/:shiftID/close", shiftHandler.closeShift)
		shifts.GET("/:shiftID/movements", shiftHandler.listMovements)
		shifts.GET("/:shiftID/totals", shiftHandler.getTotals)
		shifts.POST("/:shiftID/movements", shiftHandler.registerMovement)
	}
}
