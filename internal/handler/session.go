package handler

import (
	"net/http"

	"github.com/msomdec/flashdeck/internal/domain"
	"github.com/msomdec/flashdeck/internal/service"
)

// SessionHandler handles learning session HTTP requests.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type recordResultRequest struct {
	CardID       string `json:"cardId"`
	Result       string `json:"result"`
	ResponseTime *int   `json:"responseTime"`
}

type completeSessionRequest struct {
	CorrectAnswers int `json:"correctAnswers"`
	Duration       int `json:"duration"`
}

// HandleStart opens a new session against a deck.
func (h *SessionHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Start(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionDTO(session))
}

// HandleGet returns a single session by ID.
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionDTO(session))
}

// HandleListByDeck returns all sessions recorded against a deck.
func (h *SessionHandler) HandleListByDeck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSessionDTOs(h.sessions.ListByDeck(r.PathValue("id"))))
}

// HandleRecordResult records one card answer within a session.
func (h *SessionHandler) HandleRecordResult(w http.ResponseWriter, r *http.Request) {
	var req recordResultRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	sessionID := r.PathValue("id")
	session, err := h.sessions.Get(sessionID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	progress, err := h.sessions.RecordResult(req.CardID, session.DeckID, sessionID, domain.Result(req.Result), req.ResponseTime)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProgressDTO(progress))
}

// HandleComplete seals a session with the caller's tally.
func (h *SessionHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	var req completeSessionRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	session, err := h.sessions.Complete(r.PathValue("id"), req.CorrectAnswers, req.Duration)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionDTO(session))
}

// HandleProgress returns all results recorded within a session.
func (h *SessionHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.sessions.Get(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressDTOs(h.sessions.ProgressBySession(id)))
}
