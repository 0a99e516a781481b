package store

import "github.com/msomdec/flashdeck/internal/domain"

// The progress table is append-only: there are no patch or delete
// operations for it.

func (s *Store) GetProgress(id string) (domain.CardProgress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.tables.Progress[id]
	return p, ok
}

func (s *Store) ListProgress() map[string]domain.CardProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneMap(s.tables.Progress)
}

// ListProgressByCard returns the attempt rows logged for a card.
func (s *Store) ListProgressByCard(cardID string) map[string]domain.CardProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make(map[string]domain.CardProgress)
	for id, p := range s.tables.Progress {
		if p.CardID == cardID {
			rows[id] = p
		}
	}
	return rows
}

// ListProgressBySession returns the attempt rows logged against a
// session.
func (s *Store) ListProgressBySession(sessionID string) map[string]domain.CardProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make(map[string]domain.CardProgress)
	for id, p := range s.tables.Progress {
		if p.SessionID == sessionID {
			rows[id] = p
		}
	}
	return rows
}

func (s *Store) PutProgress(p domain.CardProgress) domain.CardProgress {
	s.mu.Lock()
	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.clock.Now()
	}
	s.tables.Progress[p.ID] = p
	s.mu.Unlock()

	s.notify(ChangeEvent{Collection: Progress, ID: p.ID, Op: OpPut})
	return p
}
