package dto

import (
	"time"

	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterMovementRequest is the payload for a manual income or expense.
// Sales are never posted through this path; they come from order transitions.
type RegisterMovementRequest struct {
	Type          string          `json:"type" binding:"required,oneof=income expense"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cash card online"`
	Description   string          `json:"description"`
}

// MovementResponse is the API representation of a ledger line.
type MovementResponse struct {
	MovementID    string          `json:"movementID"`
	ShiftID       string          `json:"shiftID"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Description   string          `json:"description"`
	OrderID       *string         `json:"orderID,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToMovementResponse converts a domain Movement to its API representation.
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:    m.MovementID,
		ShiftID:       m.ShiftID,
		Type:          string(m.Type),
		Amount:        m.Amount,
		PaymentMethod: string(m.PaymentMethod),
		Description:   m.Description,
		OrderID:       m.OrderID,
		CreatedAt:     m.CreatedAt,
	}
}

// ToMovementResponses converts a slice of domain Movements.
func ToMovementResponses(movements []domain.Movement) []MovementResponse {
	resps := make([]MovementResponse, len(movements))
	for i := range movements {
		resps[i] = ToMovementResponse(&movements[i])
	}
	return resps
}

// ListMovementsResponse wraps a shift's movement listing.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
}

// TotalsResponse is the per-method breakdown of a shift.
type TotalsResponse struct {
	Cash     decimal.Decimal `json:"cash"`
	Card     decimal.Decimal `json:"card"`
	Online   decimal.Decimal `json:"online"`
	Expenses decimal.Decimal `json:"expenses"`
	Income   decimal.Decimal `json:"income"`
}

// ToTotalsResponse converts domain totals to the API shape.
func ToTotalsResponse(t domain.ShiftTotals) TotalsResponse {
	return TotalsResponse{
		Cash:     t.Cash,
		Card:     t.Card,
		Online:   t.Online,
		Expenses: t.Expenses,
		Income:   t.Income,
	}
}
