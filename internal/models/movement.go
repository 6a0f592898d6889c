package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType mirrors the stored type discriminator of a movement.
type MovementType string

// PaymentMethod mirrors the stored payment method of a movement.
type PaymentMethod string

// Movement is the database representation of a row in cash_movements.
type Movement struct {
	MovementID    string          `json:"movementID"`
	ShiftID       string          `json:"shiftID"`
	Type          MovementType    `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Description   string          `json:"description"`
	OrderID       *string         `json:"orderID,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}
