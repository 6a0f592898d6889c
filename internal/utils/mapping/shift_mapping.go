package mapping

import (
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	"github.com/fondita-pos/cash_register_app/internal/models"
)

// ToModelShift converts a domain Shift to a model Shift
func ToModelShift(d domain.Shift) models.Shift {
	return models.Shift{
		ShiftID:         d.ShiftID,
		BranchID:        d.BranchID,
		Status:          models.ShiftStatus(d.Status),
		OpeningBalance:  d.OpeningBalance,
		ExpectedBalance: d.ExpectedBalance,
		ActualBalance:   d.ActualBalance,
		OpenedBy:        d.OpenedBy,
		OpenedAt:        d.OpenedAt,
		ClosedAt:        d.ClosedAt,
	}
}

// ToDomainShift converts a model Shift to a domain Shift
func ToDomainShift(m models.Shift) domain.Shift {
	return domain.Shift{
		ShiftID:         m.ShiftID,
		BranchID:        m.BranchID,
		Status:          domain.ShiftStatus(m.Status),
		OpeningBalance:  m.OpeningBalance,
		ExpectedBalance: m.ExpectedBalance,
		ActualBalance:   m.ActualBalance,
		OpenedBy:        m.OpenedBy,
		OpenedAt:        m.OpenedAt,
		ClosedAt:        m.ClosedAt,
	}
}

// ToDomainShiftSlice converts a slice of model Shifts to domain Shifts
func ToDomainShiftSlice(ms []models.Shift) []domain.Shift {
	ds := make([]domain.Shift, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShift(m)
	}
	return ds
}
