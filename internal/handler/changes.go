package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/msomdec/flashdeck/internal/store"
)

// ChangesHandler streams store change events to clients over SSE so
// open screens can refresh without polling.
type ChangesHandler struct {
	store *store.Store
}

// NewChangesHandler creates a new ChangesHandler.
func NewChangesHandler(s *store.Store) *ChangesHandler {
	return &ChangesHandler{store: s}
}

type changeSignal struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
	Op         string `json:"op"`
}

// HandleChanges subscribes the client to the store's change feed for
// the lifetime of the request.
func (h *ChangesHandler) HandleChanges(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	// Buffered so a slow client drops events instead of blocking
	// store mutations.
	events := make(chan store.ChangeEvent, 64)
	unsubscribe := h.store.Subscribe(func(ev store.ChangeEvent) {
		select {
		case events <- ev:
		default:
		}
	})
	defer unsubscribe()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-events:
			payload, err := json.Marshal(changeSignal{
				Collection: string(ev.Collection),
				ID:         ev.ID,
				Op:         string(ev.Op),
			})
			if err != nil {
				slog.Error("marshal change event", "error", err)
				continue
			}
			if err := sse.PatchSignals(payload); err != nil {
				return
			}
		}
	}
}
