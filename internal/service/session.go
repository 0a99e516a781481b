package service

import (
	"fmt"

	"github.com/msomdec/flashdeck/internal/domain"
	"github.com/msomdec/flashdeck/internal/store"
)

// SessionService orchestrates the learning session lifecycle:
// start -> per-card result recording -> completion.
//
// Completion trusts the caller-supplied correctAnswers tally; the
// CardProgress rows are an audit log, not the basis for the
// computation. A session with no completion call stays open forever.
type SessionService struct {
	store *store.Store
}

// NewSessionService creates a new SessionService.
func NewSessionService(s *store.Store) *SessionService {
	return &SessionService{store: s}
}

// Start creates a learning session for the deck. TotalCards is frozen
// at the current card count; a deck with zero cards cannot be studied
// and no session row is created for it.
func (s *SessionService) Start(deckID string) (domain.LearningSession, error) {
	if _, ok := s.store.GetDeck(deckID); !ok {
		return domain.LearningSession{}, fmt.Errorf("deck %q: %w", deckID, domain.ErrNotFound)
	}

	cards := s.store.ListCardsByDeck(deckID)
	if len(cards) == 0 {
		return domain.LearningSession{}, fmt.Errorf("deck %q: %w", deckID, domain.ErrEmptyDeck)
	}

	return s.store.PutSession(domain.LearningSession{
		DeckID:     deckID,
		StartedAt:  s.store.Now(),
		TotalCards: len(cards),
	}), nil
}

// Get returns a session by id.
func (s *SessionService) Get(id string) (domain.LearningSession, error) {
	sess, ok := s.store.GetSession(id)
	if !ok {
		return domain.LearningSession{}, fmt.Errorf("session %q: %w", id, domain.ErrSessionNotFound)
	}
	return sess, nil
}

// ListByDeck returns all sessions recorded against a deck, open ones
// included.
func (s *SessionService) ListByDeck(deckID string) map[string]domain.LearningSession {
	return s.store.ListSessionsByDeck(deckID)
}

// RecordResult appends an immutable attempt row and updates the
// card's aggregate counters. The session must exist but is not
// required to be open: callers drive the session flow and only record
// while studying.
func (s *SessionService) RecordResult(cardID, deckID, sessionID string, result domain.Result, responseTime *int) (domain.CardProgress, error) {
	if result != domain.ResultCorrect && result != domain.ResultIncorrect {
		return domain.CardProgress{}, fmt.Errorf("%w: result must be one of: correct, incorrect", domain.ErrInvalidInput)
	}
	if responseTime != nil && *responseTime < 0 {
		return domain.CardProgress{}, fmt.Errorf("%w: responseTime must be at least 0", domain.ErrInvalidInput)
	}
	if _, ok := s.store.GetSession(sessionID); !ok {
		return domain.CardProgress{}, fmt.Errorf("session %q: %w", sessionID, domain.ErrSessionNotFound)
	}
	if _, ok := s.store.GetCard(cardID); !ok {
		return domain.CardProgress{}, fmt.Errorf("card %q: %w", cardID, domain.ErrNotFound)
	}

	progress := s.store.PutProgress(domain.CardProgress{
		CardID:       cardID,
		DeckID:       deckID,
		SessionID:    sessionID,
		Result:       result,
		ResponseTime: responseTime,
	})

	now := s.store.Now()
	if _, err := s.store.PatchCard(cardID, func(c *domain.Card) {
		c.ReviewCount++
		if result == domain.ResultCorrect {
			c.CorrectCount++
		}
		c.LastReviewed = &now
	}); err != nil {
		return domain.CardProgress{}, fmt.Errorf("update card counters: %w", err)
	}

	return progress, nil
}

// Complete seals a session: accuracy is computed against the frozen
// TotalCards snapshot, never a fresh card count, and the owning deck's
// cached lastStudied/totalLearned are refreshed. The session and deck
// writes are one logical unit without rollback; on error none of the
// side effects should be assumed durable.
func (s *SessionService) Complete(sessionID string, correctAnswers, duration int) (domain.LearningSession, error) {
	sess, ok := s.store.GetSession(sessionID)
	if !ok {
		return domain.LearningSession{}, fmt.Errorf("session %q: %w", sessionID, domain.ErrSessionNotFound)
	}
	if !sess.Open() {
		return domain.LearningSession{}, fmt.Errorf("session %q: %w", sessionID, domain.ErrSessionCompleted)
	}
	if correctAnswers < 0 || correctAnswers > sess.TotalCards {
		return domain.LearningSession{}, fmt.Errorf("%w: correctAnswers must be between 0 and %d", domain.ErrInvalidInput, sess.TotalCards)
	}
	if duration < 0 {
		return domain.LearningSession{}, fmt.Errorf("%w: duration must be at least 0", domain.ErrInvalidInput)
	}

	now := s.store.Now()
	accuracy := percentage(correctAnswers, sess.TotalCards)

	sealed, err := s.store.PatchSession(sessionID, func(sess *domain.LearningSession) {
		sess.CompletedAt = &now
		sess.CorrectAnswers = correctAnswers
		sess.Accuracy = accuracy
		sess.Duration = duration
	})
	if err != nil {
		return domain.LearningSession{}, fmt.Errorf("seal session: %w", err)
	}

	if _, err := s.store.PatchDeck(sess.DeckID, func(d *domain.Deck) {
		d.LastStudied = &now
		d.TotalLearned = correctAnswers
	}); err != nil {
		return domain.LearningSession{}, fmt.Errorf("update deck after completion: %w", err)
	}

	return sealed, nil
}

// ProgressByCard returns the attempt audit rows for a card.
func (s *SessionService) ProgressByCard(cardID string) map[string]domain.CardProgress {
	return s.store.ListProgressByCard(cardID)
}

// ProgressBySession returns the attempt audit rows for a session.
func (s *SessionService) ProgressBySession(sessionID string) map[string]domain.CardProgress {
	return s.store.ListProgressBySession(sessionID)
}
