package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifies a ledger line. Direction is derived from the type:
// sale and income credit the drawer, expense debits it.
type MovementType string

const (
	MovementSale    MovementType = "sale"
	MovementIncome  MovementType = "income"
	MovementExpense MovementType = "expense"
)

// PaymentMethod is the settlement channel of a movement. Only cash movements
// affect the physical drawer balance.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodCard   PaymentMethod = "card"
	MethodOnline PaymentMethod = "online"
)

// Movement is a single immutable ledger line belonging to a shift.
// Movements are never updated or deleted; corrections are new offsetting rows.
type Movement struct {
	MovementID    string          `json:"movementID"`
	ShiftID       string          `json:"shiftID"`
	Type          MovementType    `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // Strictly positive
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Description   string          `json:"description"`
	OrderID       *string         `json:"orderID,omitempty"` // Originating order, if any
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// SignedAmount returns the amount with the direction implied by the type:
// positive for sale/income, negative for expense.
func (m *Movement) SignedAmount() decimal.Decimal {
	if m.Type == MovementExpense {
		return m.Amount.Neg()
	}
	return m.Amount
}

// AffectsDrawer reports whether the movement changes the expected cash figure.
func (m *Movement) AffectsDrawer() bool {
	return m.PaymentMethod == MethodCash
}
