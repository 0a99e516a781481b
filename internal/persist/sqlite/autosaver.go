package sqlite

import (
	"context"
	"log/slog"
	"time"

	"github.com/msomdec/flashdeck/internal/domain"
	"github.com/msomdec/flashdeck/internal/store"
)

// Autosaver watches a store's change feed and writes a snapshot to the
// persister after mutations settle. A failed save is logged and the
// state stays dirty in memory; the next mutation triggers another
// attempt.
type Autosaver struct {
	store     *store.Store
	persister domain.Persister
	debounce  time.Duration
	dirty     chan struct{}
}

func NewAutosaver(s *store.Store, p domain.Persister, debounce time.Duration) *Autosaver {
	return &Autosaver{
		store:     s,
		persister: p,
		debounce:  debounce,
		dirty:     make(chan struct{}, 1),
	}
}

// Run subscribes to the store and saves snapshots until ctx is
// cancelled. It flushes any pending changes before returning.
func (a *Autosaver) Run(ctx context.Context) {
	unsubscribe := a.store.Subscribe(func(store.ChangeEvent) {
		select {
		case a.dirty <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			a.Flush(context.Background())
			return
		case <-a.dirty:
		}

		// Let a burst of mutations settle before writing.
		timer := time.NewTimer(a.debounce)
		select {
		case <-ctx.Done():
			// The dirty token was already consumed; save outright.
			timer.Stop()
			a.save(context.Background())
			return
		case <-timer.C:
		}

		a.save(ctx)
	}
}

// Flush writes a snapshot if there are unsaved changes.
func (a *Autosaver) Flush(ctx context.Context) {
	select {
	case <-a.dirty:
		a.save(ctx)
	default:
	}
}

func (a *Autosaver) save(ctx context.Context) {
	if err := a.persister.SaveAll(ctx, a.store.Snapshot()); err != nil {
		// In-memory state stays authoritative; the next mutation
		// triggers another save attempt.
		slog.Error("snapshot save failed", "error", err)
	}
}
