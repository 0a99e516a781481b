package store

import "github.com/msomdec/flashdeck/internal/domain"

func (s *Store) GetDeck(id string) (domain.Deck, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.tables.Decks[id]
	return d, ok
}

func (s *Store) ListDecks() map[string]domain.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneMap(s.tables.Decks)
}

func (s *Store) PutDeck(d domain.Deck) domain.Deck {
	s.mu.Lock()
	if d.ID == "" {
		d.ID = s.newID()
	}
	now := s.clock.Now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = now
	}
	s.tables.Decks[d.ID] = d
	s.mu.Unlock()

	s.notify(ChangeEvent{Collection: Decks, ID: d.ID, Op: OpPut})
	return d
}

func (s *Store) PatchDeck(id string, fn func(*domain.Deck)) (domain.Deck, error) {
	s.mu.Lock()
	d, ok := s.tables.Decks[id]
	if !ok {
		s.mu.Unlock()
		return domain.Deck{}, domain.ErrNotFound
	}
	fn(&d)
	d.ID = id
	d.UpdatedAt = s.clock.Now()
	s.tables.Decks[id] = d
	s.mu.Unlock()

	s.notify(ChangeEvent{Collection: Decks, ID: id, Op: OpPatch})
	return d, nil
}

func (s *Store) DeleteDeck(id string) error {
	s.mu.Lock()
	if _, ok := s.tables.Decks[id]; !ok {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	delete(s.tables.Decks, id)
	s.mu.Unlock()

	s.notify(ChangeEvent{Collection: Decks, ID: id, Op: OpDelete})
	return nil
}
