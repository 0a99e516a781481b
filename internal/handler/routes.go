package handler

import (
	"net/http"

	"github.com/msomdec/flashdeck/internal/service"
	"github.com/msomdec/flashdeck/internal/store"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	s *store.Store,
	categories *service.CategoryService,
	decks *service.DeckService,
	cards *service.CardService,
	sessions *service.SessionService,
	stats *service.StatsService,
) {
	categoryHandler := NewCategoryHandler(categories)
	deckHandler := NewDeckHandler(decks, stats)
	cardHandler := NewCardHandler(cards, sessions, stats)
	sessionHandler := NewSessionHandler(sessions)
	changesHandler := NewChangesHandler(s)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("GET /api/categories", categoryHandler.HandleList)
	mux.HandleFunc("POST /api/categories", categoryHandler.HandleCreate)
	mux.HandleFunc("GET /api/categories/{id}", categoryHandler.HandleGet)
	mux.HandleFunc("PATCH /api/categories/{id}", categoryHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/categories/{id}", categoryHandler.HandleDelete)

	mux.HandleFunc("GET /api/decks", deckHandler.HandleList)
	mux.HandleFunc("POST /api/decks", deckHandler.HandleCreate)
	mux.HandleFunc("GET /api/decks/{id}", deckHandler.HandleGet)
	mux.HandleFunc("PATCH /api/decks/{id}", deckHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/decks/{id}", deckHandler.HandleDelete)
	mux.HandleFunc("GET /api/decks/{id}/stats", deckHandler.HandleStats)

	mux.HandleFunc("GET /api/cards", cardHandler.HandleList)
	mux.HandleFunc("POST /api/cards", cardHandler.HandleCreate)
	mux.HandleFunc("GET /api/cards/{id}", cardHandler.HandleGet)
	mux.HandleFunc("PATCH /api/cards/{id}", cardHandler.HandleUpdate)
	mux.HandleFunc("DELETE /api/cards/{id}", cardHandler.HandleDelete)
	mux.HandleFunc("GET /api/cards/{id}/progress", cardHandler.HandleProgress)
	mux.HandleFunc("GET /api/cards/{id}/stats", cardHandler.HandleStats)

	mux.HandleFunc("POST /api/decks/{id}/sessions", sessionHandler.HandleStart)
	mux.HandleFunc("GET /api/decks/{id}/sessions", sessionHandler.HandleListByDeck)
	mux.HandleFunc("GET /api/sessions/{id}", sessionHandler.HandleGet)
	mux.HandleFunc("GET /api/sessions/{id}/progress", sessionHandler.HandleProgress)
	mux.HandleFunc("POST /api/sessions/{id}/results", sessionHandler.HandleRecordResult)
	mux.HandleFunc("POST /api/sessions/{id}/complete", sessionHandler.HandleComplete)

	mux.HandleFunc("GET /api/changes", changesHandler.HandleChanges)
}
