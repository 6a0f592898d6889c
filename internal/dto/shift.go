package dto

import (
	"time"

	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenShiftRequest is the payload to open a till for a branch.
type OpenShiftRequest struct {
	OpeningBalance decimal.Decimal `json:"openingBalance" binding:"required"`
}

// CloseShiftRequest carries the physically counted amount at close.
type CloseShiftRequest struct {
	ActualBalance decimal.Decimal `json:"actualBalance" binding:"required"`
}

// ShiftResponse is the API representation of a shift.
type ShiftResponse struct {
	ShiftID         string           `json:"shiftID"`
	BranchID        string           `json:"branchID"`
	Status          string           `json:"status"`
	OpeningBalance  decimal.Decimal  `json:"openingBalance"`
	ExpectedBalance decimal.Decimal  `json:"expectedBalance"`
	ActualBalance   *decimal.Decimal `json:"actualBalance,omitempty"`
	Difference      *decimal.Decimal `json:"difference,omitempty"` // actual - expected, closed shifts only
	OpenedBy        string           `json:"openedBy"`
	OpenedAt        time.Time        `json:"openedAt"`
	ClosedAt        *time.Time       `json:"closedAt,omitempty"`
}

// ToShiftResponse converts a domain Shift to its API representation.
func ToShiftResponse(s *domain.Shift) ShiftResponse {
	resp := ShiftResponse{
		ShiftID:         s.ShiftID,
		BranchID:        s.BranchID,
		Status:          string(s.Status),
		OpeningBalance:  s.OpeningBalance,
		ExpectedBalance: s.ExpectedBalance,
		ActualBalance:   s.ActualBalance,
		OpenedBy:        s.OpenedBy,
		OpenedAt:        s.OpenedAt,
		ClosedAt:        s.ClosedAt,
	}
	if s.ActualBalance != nil {
		diff := s.Difference()
		resp.Difference = &diff
	}
	return resp
}

// ToShiftResponses converts a slice of domain Shifts.
func ToShiftResponses(shifts []domain.Shift) []ShiftResponse {
	resps := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		resps[i] = ToShiftResponse(&shifts[i])
	}
	return resps
}

// ListShiftsResponse wraps the shift history listing.
type ListShiftsResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}
