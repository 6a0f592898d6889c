package pgsql

import (
	"context"
	"errors"

	"github.com/fondita-pos/cash_register_app/internal/apperrors"
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	portsrepo "github.com/fondita-pos/cash_register_app/internal/core/ports/repositories"
	"github.com/fondita-pos/cash_register_app/internal/models"
	"github.com/fondita-pos/cash_register_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderRepository struct {
	BaseRepository
}

// newPgxOrderRepository creates a repository over the order columns the
// ledger consumes. The order aggregate itself is owned elsewhere.
func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxOrderRepository implements portsrepo.OrderRepositoryFacade
var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// FindOrderByID retrieves an order by its ID.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	query := `SELECT order_id, branch_id, status, total, payment_type FROM orders WHERE order_id = $1;`
	var m models.Order
	err := r.Pool.QueryRow(ctx, query, orderID).Scan(
		&m.OrderID,
		&m.BranchID,
		&m.Status,
		&m.Total,
		&m.PaymentType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find order by ID "+orderID, err)
	}
	domainOrder := mapping.ToDomainOrder(m)
	return &domainOrder, nil
}

// UpdateOrderStatus persists a status transition.
func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	query := `UPDATE orders SET status = $2 WHERE order_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, orderID, status)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of order "+orderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("order " + orderID + " not found for status update")
	}
	return nil
}
