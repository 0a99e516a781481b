package handler

import (
	"net/http"

	"github.com/msomdec/flashdeck/internal/service"
)

// CardHandler handles card HTTP requests.
type CardHandler struct {
	cards    *service.CardService
	sessions *service.SessionService
	stats    *service.StatsService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cards *service.CardService, sessions *service.SessionService, stats *service.StatsService) *CardHandler {
	return &CardHandler{cards: cards, sessions: sessions, stats: stats}
}

type createCardRequest struct {
	Front      string `json:"front"`
	Back       string `json:"back"`
	DeckID     string `json:"deckId"`
	Difficulty string `json:"difficulty"`
}

type updateCardRequest struct {
	Front      *string `json:"front"`
	Back       *string `json:"back"`
	DeckID     *string `json:"deckId"`
	Difficulty *string `json:"difficulty"`
}

// HandleList returns cards, optionally filtered by the deckId query
// parameter.
func (h *CardHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	deckID := r.URL.Query().Get("deckId")
	writeJSON(w, http.StatusOK, toCardDTOs(h.cards.List(deckID)))
}

// HandleGet returns a single card by ID.
func (h *CardHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	card, err := h.cards.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardDTO(card))
}

// HandleCreate creates a new card in an existing deck.
func (h *CardHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	card, err := h.cards.Add(service.CardInput{
		Front:      req.Front,
		Back:       req.Back,
		DeckID:     req.DeckID,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCardDTO(card))
}

// HandleUpdate applies a partial update to a card.
func (h *CardHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateCardRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	card, err := h.cards.Update(r.PathValue("id"), service.CardPatch{
		Front:      req.Front,
		Back:       req.Back,
		DeckID:     req.DeckID,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardDTO(card))
}

// HandleDelete removes a card. Recorded progress rows stay as history.
func (h *CardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.cards.Delete(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleProgress returns all recorded results for a card.
func (h *CardHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.cards.Get(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressDTOs(h.sessions.ProgressByCard(id)))
}

// HandleStats returns per-card review statistics.
func (h *CardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.CardStats(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCardStatsDTO(stats))
}
