package mapping

import (
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	"github.com/fondita-pos/cash_register_app/internal/models"
)

// ToModelMovement converts a domain Movement to a model Movement
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:    d.MovementID,
		ShiftID:       d.ShiftID,
		Type:          models.MovementType(d.Type),
		Amount:        d.Amount,
		PaymentMethod: models.PaymentMethod(d.PaymentMethod),
		Description:   d.Description,
		OrderID:       d.OrderID,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:    m.MovementID,
		ShiftID:       m.ShiftID,
		Type:          domain.MovementType(m.Type),
		Amount:        m.Amount,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Description:   m.Description,
		OrderID:       m.OrderID,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainMovementSlice converts a slice of model Movements to domain Movements
func ToDomainMovementSlice(ms []models.Movement) []domain.Movement {
	ds := make([]domain.Movement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMovement(m)
	}
	return ds
}
