package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus indicates the lifecycle state of a cash shift.
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "open"
	ShiftClosed ShiftStatus = "closed"
)

// Shift represents one till session for a branch: the period between opening
// the drawer with a counted float and closing it against a physical count.
// At most one shift per branch may be open at any time.
type Shift struct {
	ShiftID         string           `json:"shiftID"`
	BranchID        string           `json:"branchID"`
	Status          ShiftStatus      `json:"status"`
	OpeningBalance  decimal.Decimal  `json:"openingBalance"`
	ExpectedBalance decimal.Decimal  `json:"expectedBalance"`
	ActualBalance   *decimal.Decimal `json:"actualBalance,omitempty"` // Set at close
	OpenedBy        string           `json:"openedBy"`                // Operator reference
	OpenedAt        time.Time        `json:"openedAt"`
	ClosedAt        *time.Time       `json:"closedAt,omitempty"`
}

// IsOpen reports whether movements may still be applied to the shift.
func (s *Shift) IsOpen() bool {
	return s.Status == ShiftOpen
}

// Difference returns actualBalance - expectedBalance for a closed shift.
// Zero for shifts that have not been counted yet.
func (s *Shift) Difference() decimal.Decimal {
	if s.ActualBalance == nil {
		return decimal.Zero
	}
	return s.ActualBalance.Sub(s.ExpectedBalance)
}
