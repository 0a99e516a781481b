package handler

import (
	"net/http"

	"github.com/msomdec/flashdeck/internal/service"
)

// DeckHandler handles deck HTTP requests.
type DeckHandler struct {
	decks *service.DeckService
	stats *service.StatsService
}

// NewDeckHandler creates a new DeckHandler.
func NewDeckHandler(decks *service.DeckService, stats *service.StatsService) *DeckHandler {
	return &DeckHandler{decks: decks, stats: stats}
}

type createDeckRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CategoryID  string `json:"categoryId"`
	Color       string `json:"color"`
}

type updateDeckRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CategoryID  *string `json:"categoryId"`
	Color       *string `json:"color"`
}

// HandleList returns all decks.
func (h *DeckHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toDeckDTOs(h.decks.List()))
}

// HandleGet returns a single deck by ID.
func (h *DeckHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	deck, err := h.decks.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeckDTO(deck))
}

// HandleCreate creates a new deck under an existing category.
func (h *DeckHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createDeckRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	deck, err := h.decks.Add(service.DeckInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Color:       req.Color,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDeckDTO(deck))
}

// HandleUpdate applies a partial update to a deck.
func (h *DeckHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateDeckRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	deck, err := h.decks.Update(r.PathValue("id"), service.DeckPatch{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Color:       req.Color,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeckDTO(deck))
}

// HandleDelete removes a deck together with its cards.
func (h *DeckHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.decks.Delete(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleStats returns aggregated statistics for a deck.
func (h *DeckHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.DeckStats(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeckStatsDTO(stats))
}
