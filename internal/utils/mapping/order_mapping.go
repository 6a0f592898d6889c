package mapping

import (
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	"github.com/fondita-pos/cash_register_app/internal/models"
)

// ToDomainOrder converts a model Order to a domain Order
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:     m.OrderID,
		BranchID:    m.BranchID,
		Status:      domain.OrderStatus(m.Status),
		Total:       m.Total,
		PaymentType: m.PaymentType,
	}
}
