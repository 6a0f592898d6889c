package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus mirrors the stored status of a cash shift.
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "open"
	ShiftClosed ShiftStatus = "closed"
)

// Shift is the database representation of a row in cash_shifts.
type Shift struct {
	ShiftID         string           `json:"shiftID"`
	BranchID        string           `json:"branchID"`
	Status          ShiftStatus      `json:"status"`
	OpeningBalance  decimal.Decimal  `json:"openingBalance"`
	ExpectedBalance decimal.Decimal  `json:"expectedBalance"`
	ActualBalance   *decimal.Decimal `json:"actualBalance,omitempty"`
	OpenedBy        string           `json:"openedBy"`
	OpenedAt        time.Time        `json:"openedAt"`
	ClosedAt        *time.Time       `json:"closedAt,omitempty"`
}
