package store

import "github.com/msomdec/flashdeck/internal/domain"

func (s *Store) GetSession(id string) (domain.LearningSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.tables.Sessions[id]
	return sess, ok
}

func (s *Store) ListSessions() map[string]domain.LearningSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneMap(s.tables.Sessions)
}

// ListSessionsByDeck returns the sessions recorded against a deck.
func (s *Store) ListSessionsByDeck(deckID string) map[string]domain.LearningSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := make(map[string]domain.LearningSession)
	for id, sess := range s.tables.Sessions {
		if sess.DeckID == deckID {
			sessions[id] = sess
		}
	}
	return sessions
}

func (s *Store) PutSession(sess domain.LearningSession) domain.LearningSession {
	s.mu.Lock()
	if sess.ID == "" {
		sess.ID = s.newID()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = s.clock.Now()
	}
	s.tables.Sessions[sess.ID] = sess
	s.mu.Unlock()

	s.notify(ChangeEvent{Collection: Sessions, ID: sess.ID, Op: OpPut})
	return sess
}

// PatchSession applies fn to the stored session. Sessions carry no
// UpdatedAt; the single completion call is the only legitimate patch.
func (s *Store) PatchSession(id string, fn func(*domain.LearningSession)) (domain.LearningSession, error) {
	s.mu.Lock()
	sess, ok := s.tables.Sessions[id]
	if !ok {
		s.mu.Unlock()
		return domain.LearningSession{}, domain.ErrNotFound
	}
	fn(&sess)
	sess.ID = id
	s.tables.Sessions[id] = sess
	s.mu.Unlock()

	s.notify(ChangeEvent{Collection: Sessions, ID: id, Op: OpPatch})
	return sess, nil
}

func (s *Store) DeleteSession(id string) error {
	s.mu.Lock()
	if _, ok := s.tables.Sessions[id]; !ok {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	delete(s.tables.Sessions, id)
	s.mu.Unlock()

	s.notify(ChangeEvent{Collection: Sessions, ID: id, Op: OpDelete})
	return nil
}
