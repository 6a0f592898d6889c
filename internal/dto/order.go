package dto

import (
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateOrderStatusRequest drives the order state machine.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending active completed picked_up cancelled"`
	// BranchID of the operator's currently loaded shift view, if any. Used as
	// a routing hint only; the ledger re-validates against the order's branch.
	LoadedShiftID string `json:"loadedShiftID,omitempty"`
}

// OrderResponse is the ledger's view of an order.
type OrderResponse struct {
	OrderID     string          `json:"orderID"`
	BranchID    string          `json:"branchID"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	PaymentType string          `json:"paymentType"`
}

// ToOrderResponse converts a domain Order to its API representation.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:     o.OrderID,
		BranchID:    o.BranchID,
		Status:      string(o.Status),
		Total:       o.Total,
		PaymentType: o.PaymentType,
	}
}
