package pgsql

import (
	"context"
	"log/slog"

	"github.com/fondita-pos/cash_register_app/internal/apperrors"
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	portsrepo "github.com/fondita-pos/cash_register_app/internal/core/ports/repositories"
	"github.com/fondita-pos/cash_register_app/internal/models"
	"github.com/fondita-pos/cash_register_app/internal/realtime"
	"github.com/fondita-pos/cash_register_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMovementRepository struct {
	BaseRepository
	notifier realtime.Notifier
}

// newPgxMovementRepository creates a new repository for cash movement data.
// notifier may be nil when no change channel is configured.
func newPgxMovementRepository(pool *pgxpool.Pool, notifier realtime.Notifier) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
		notifier:       notifier,
	}
}

// Ensure PgxMovementRepository implements portsrepo.MovementRepositoryFacade
var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

const movementColumns = `movement_id, shift_id, type, amount, payment_method, description, order_id, created_at, created_by`

func scanMovement(row pgx.Row) (*models.Movement, error) {
	var m models.Movement
	err := row.Scan(
		&m.MovementID,
		&m.ShiftID,
		&m.Type,
		&m.Amount,
		&m.PaymentMethod,
		&m.Description,
		&m.OrderID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveMovement appends a ledger line. There is no update or delete: the
// ledger is append-only and corrections are new offsetting rows.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	modelMovement := mapping.ToModelMovement(movement)
	query := `
		INSERT INTO cash_movements (movement_id, shift_id, type, amount, payment_method, description, order_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelMovement.MovementID,
		modelMovement.ShiftID,
		modelMovement.Type,
		modelMovement.Amount,
		modelMovement.PaymentMethod,
		modelMovement.Description,
		modelMovement.OrderID,
		modelMovement.CreatedAt,
		modelMovement.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert movement "+modelMovement.MovementID, err)
	}

	if r.notifier != nil {
		event := realtime.MovementEvent{Kind: realtime.EventInsert, Movement: &movement}
		if nerr := r.notifier.MovementChanged(ctx, movement.ShiftID, event); nerr != nil {
			// Best-effort: observers catch up via a reconciliation read.
			slog.Warn("Failed to publish movement event", slog.String("movement_id", movement.MovementID), slog.String("error", nerr.Error()))
		}
	}
	return nil
}

// FindMovementsByShift retrieves all movements for a shift, newest first.
func (r *PgxMovementRepository) FindMovementsByShift(ctx context.Context, shiftID string) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM cash_movements
		WHERE shift_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query movements for shift "+shiftID, err)
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan movement row for shift "+shiftID, err)
		}
		movements = append(movements, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating movement rows for shift "+shiftID, err)
	}

	return mapping.ToDomainMovementSlice(movements), nil
}

// FindMovementsByOrderInShift retrieves the movements an order has produced
// in a shift. The registrar folds these into the order's current net.
func (r *PgxMovementRepository) FindMovementsByOrderInShift(ctx context.Context, shiftID, orderID string) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM cash_movements
		WHERE shift_id = $1 AND order_id = $2
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, shiftID, orderID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query movements for order "+orderID+" in shift "+shiftID, err)
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan movement row for order "+orderID, err)
		}
		movements = append(movements, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating movement rows for order "+orderID, err)
	}

	return mapping.ToDomainMovementSlice(movements), nil
}
