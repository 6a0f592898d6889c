package pgsql

import (
	portsrepo "github.com/fondita-pos/cash_register_app/internal/core/ports/repositories"
	"github.com/fondita-pos/cash_register_app/internal/realtime"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoriesContainer holds all the pgsql repository implementations.
type RepositoriesContainer struct {
	ShiftRepo    portsrepo.ShiftRepositoryFacade
	MovementRepo portsrepo.MovementRepositoryFacade
	OrderRepo    portsrepo.OrderRepositoryFacade
}

// NewRepositoriesContainer wires the repositories over a shared pool.
// notifier may be nil when no change channel is configured.
func NewRepositoriesContainer(pool *pgxpool.Pool, notifier realtime.Notifier) *RepositoriesContainer {
	return &RepositoriesContainer{
		ShiftRepo:    newPgxShiftRepository(pool),
		MovementRepo: newPgxMovementRepository(pool, notifier),
		OrderRepo:    newPgxOrderRepository(pool),
	}
}
