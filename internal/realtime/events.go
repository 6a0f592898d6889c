package realtime

import (
	"context"

	"github.com/fondita-pos/cash_register_app/internal/core/domain"
)

// EventKind discriminates movement change events.
type EventKind string

const (
	EventInsert EventKind = "insert"
	EventUpdate EventKind = "update"
	EventDelete EventKind = "delete"
)

// MovementEvent is the tagged variant carried by the change channel.
// Insert and Update carry the full row; Delete carries only the id.
type MovementEvent struct {
	Kind       EventKind        `json:"kind"`
	Movement   *domain.Movement `json:"movement,omitempty"`
	MovementID string           `json:"movementID,omitempty"`
}

// Notifier publishes movement changes for a shift. Publishing is best-effort:
// a failed publish must never fail the ledger write it announces.
type Notifier interface {
	MovementChanged(ctx context.Context, shiftID string, event MovementEvent) error
}

// Subscriber delivers movement change events for a shift. The returned stop
// function releases the subscription and closes the channel.
type Subscriber interface {
	Subscribe(ctx context.Context, shiftID string) (<-chan MovementEvent, func(), error)
}
