package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/fondita-pos/cash_register_app/internal/apperrors"
	"github.com/fondita-pos/cash_register_app/internal/core/domain"
	portsrepo "github.com/fondita-pos/cash_register_app/internal/core/ports/repositories"
	"github.com/fondita-pos/cash_register_app/internal/models"
	"github.com/fondita-pos/cash_register_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const uniqueViolationCode = "23505"

type PgxShiftRepository struct {
	BaseRepository
}

// newPgxShiftRepository creates a new repository for cash shift data.
func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryFacade {
	return &PgxShiftRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxShiftRepository implements portsrepo.ShiftRepositoryFacade
var _ portsrepo.ShiftRepositoryFacade = (*PgxShiftRepository)(nil)

const shiftColumns = `shift_id, branch_id, status, opening_balance, expected_balance, actual_balance, opened_by, opened_at, closed_at`

func scanShift(row pgx.Row) (*models.Shift, error) {
	var m models.Shift
	err := row.Scan(
		&m.ShiftID,
		&m.BranchID,
		&m.Status,
		&m.OpeningBalance,
		&m.ExpectedBalance,
		&m.ActualBalance,
		&m.OpenedBy,
		&m.OpenedAt,
		&m.ClosedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveShift persists a newly opened shift. The partial unique index on
// (branch_id) WHERE status='open' backs the one-open-shift invariant; a
// violation is mapped to the domain error so a check-then-insert race still
// fails with the same user-facing condition.
func (r *PgxShiftRepository) SaveShift(ctx context.Context, shift domain.Shift) error {
	modelShift := mapping.ToModelShift(shift)
	query := `
		INSERT INTO cash_shifts (shift_id, branch_id, status, opening_balance, expected_balance, actual_balance, opened_by, opened_at, closed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelShift.ShiftID,
		modelShift.BranchID,
		modelShift.Status,
		modelShift.OpeningBalance,
		modelShift.ExpectedBalance,
		modelShift.ActualBalance,
		modelShift.OpenedBy,
		modelShift.OpenedAt,
		modelShift.ClosedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.ErrAlreadyOpenShift
		}
		return apperrors.NewAppError(500, "failed to insert shift "+modelShift.ShiftID, err)
	}
	return nil
}

// FindShiftByID retrieves a shift by its ID.
func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM cash_shifts WHERE shift_id = $1;`
	modelShift, err := scanShift(r.Pool.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find shift by ID "+shiftID, err)
	}
	domainShift := mapping.ToDomainShift(*modelShift)
	return &domainShift, nil
}

// FindOpenShiftByBranch retrieves the open shift for a branch.
func (r *PgxShiftRepository) FindOpenShiftByBranch(ctx context.Context, branchID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM cash_shifts WHERE branch_id = $1 AND status = 'open';`
	modelShift, err := scanShift(r.Pool.QueryRow(ctx, query, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find open shift for branch "+branchID, err)
	}
	domainShift := mapping.ToDomainShift(*modelShift)
	return &domainShift, nil
}

// ListClosedShiftsByBranch retrieves closed shifts newest-close-first.
func (r *PgxShiftRepository) ListClosedShiftsByBranch(ctx context.Context, branchID string, limit int) ([]domain.Shift, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + shiftColumns + `
		FROM cash_shifts
		WHERE branch_id = $1 AND status = 'closed'
		ORDER BY closed_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, branchID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query closed shifts for branch "+branchID, err)
	}
	defer rows.Close()

	modelShifts := []models.Shift{}
	for rows.Next() {
		m, err := scanShift(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan shift row for branch "+branchID, err)
		}
		modelShifts = append(modelShifts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating shift rows for branch "+branchID, err)
	}

	return mapping.ToDomainShiftSlice(modelShifts), nil
}

// CloseShift records the counted balance and closes the shift. The update is
// conditioned on status='open' at write time so a concurrent close loses
// cleanly instead of overwriting the winner's count.
func (r *PgxShiftRepository) CloseShift(ctx context.Context, shiftID string, actualBalance decimal.Decimal, closedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE cash_shifts
		SET status = 'closed',
		    actual_balance = $2,
		    closed_at = $3
		WHERE shift_id = $1 AND status = 'open';
	`
	cmdTag, err := tx.Exec(ctx, query, shiftID, actualBalance, closedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to close shift "+shiftID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the shift does not exist or it was closed by a racer.
		var status models.ShiftStatus
		err := tx.QueryRow(ctx, `SELECT status FROM cash_shifts WHERE shift_id = $1;`, shiftID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("shift " + shiftID + " not found for close")
		}
		if err != nil {
			return apperrors.NewAppError(500, "failed to check status of shift "+shiftID, err)
		}
		return apperrors.ErrShiftNotOpen
	}

	return r.Commit(ctx, tx)
}

// IncrementExpectedBalance applies a signed delta in a single conditional
// statement, never read-then-write, so concurrent writers cannot lose updates.
func (r *PgxShiftRepository) IncrementExpectedBalance(ctx context.Context, shiftID string, delta decimal.Decimal) error {
	query := `
		UPDATE cash_shifts
		SET expected_balance = expected_balance + $2
		WHERE shift_id = $1 AND status = 'open';
	`
	cmdTag, err := r.Pool.Exec(ctx, query, shiftID, delta)
	if err != nil {
		return apperrors.NewAppError(500, "failed to increment expected balance for shift "+shiftID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrShiftNotOpen
	}
	return nil
}

// UpdateExpectedBalance overwrites the expected balance unconditionally.
// Degraded fallback path only; it carries a documented lost-update window.
func (r *PgxShiftRepository) UpdateExpectedBalance(ctx context.Context, shiftID string, balance decimal.Decimal) error {
	query := `UPDATE cash_shifts SET expected_balance = $2 WHERE shift_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, shiftID, balance)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update expected balance for shift "+shiftID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("shift " + shiftID + " not found for balance update")
	}
	return nil
}
