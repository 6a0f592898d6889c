package realtime

import (
	"sync"

	"github.com/fondita-pos/cash_register_app/internal/core/domain"
)

// MovementFeed maintains an in-memory, newest-first movement list for one
// shift, patched incrementally from change events so observers never need a
// full reload while the till is busy.
type MovementFeed struct {
	mu        sync.RWMutex
	shiftID   string
	movements []domain.Movement
}

// NewMovementFeed seeds a feed with the shift's current movement list,
// expected newest-first as the repositories return it.
func NewMovementFeed(shiftID string, initial []domain.Movement) *MovementFeed {
	movements := make([]domain.Movement, len(initial))
	copy(movements, initial)
	return &MovementFeed{shiftID: shiftID, movements: movements}
}

// ShiftID returns the shift this feed observes.
func (f *MovementFeed) ShiftID() string {
	return f.shiftID
}

// Apply patches the list for one event: prepend on insert, replace-by-id on
// update, remove-by-id on delete. Events for other shifts are ignored.
func (f *MovementFeed) Apply(event MovementEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch event.Kind {
	case EventInsert:
		if event.Movement == nil || event.Movement.ShiftID != f.shiftID {
			return
		}
		f.movements = append([]domain.Movement{*event.Movement}, f.movements...)
	case EventUpdate:
		if event.Movement == nil {
			return
		}
		for i := range f.movements {
			if f.movements[i].MovementID == event.Movement.MovementID {
				f.movements[i] = *event.Movement
				return
			}
		}
	case EventDelete:
		for i := range f.movements {
			if f.movements[i].MovementID == event.MovementID {
				f.movements = append(f.movements[:i], f.movements[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a copy of the current list, newest first.
func (f *MovementFeed) Snapshot() []domain.Movement {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]domain.Movement, len(f.movements))
	copy(out, f.movements)
	return out
}

// Run consumes events from the channel until it closes.
func (f *MovementFeed) Run(events <-chan MovementEvent) {
	for event := range events {
		f.Apply(event)
	}
}
