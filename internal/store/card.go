package store

import "github.com/msomdec/flashdeck/internal/domain"

func (s *Store) GetCard(id string) (domain.Card, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.tables.Cards[id]
	return c, ok
}

func (s *Store) ListCards() map[string]domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneMap(s.tables.Cards)
}

// ListCardsByDeck returns the cards whose DeckID matches.
func (s *Store) ListCardsByDeck(deckID string) map[string]domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := make(map[string]domain.Card)
	for id, c := range s.tables.Cards {
		if c.DeckID == deckID {
			cards[id] = c
		}
	}
	return cards
}

func (s *Store) PutCard(c domain.Card) domain.Card {
	s.mu.Lock()
	if c.ID == "" {
		c.ID = s.newID()
	}
	now := s.clock.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	s.tables.Cards[c.ID] = c
	s.mu.Unlock()

	s.notify(ChangeEvent{Collection: Cards, ID: c.ID, Op: OpPut})
	return c
}

func (s *Store) PatchCard(id string, fn func(*domain.Card)) (domain.Card, error) {
	s.mu.Lock()
	c, ok := s.tables.Cards[id]
	if !ok {
		s.mu.Unlock()
		return domain.Card{}, domain.ErrNotFound
	}
	fn(&c)
	c.ID = id
	c.UpdatedAt = s.clock.Now()
	s.tables.Cards[id] = c
	s.mu.Unlock()

	s.notify(ChangeEvent{Collection: Cards, ID: id, Op: OpPatch})
	return c, nil
}

func (s *Store) DeleteCard(id string) error {
	s.mu.Lock()
	if _, ok := s.tables.Cards[id]; !ok {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	delete(s.tables.Cards, id)
	s.mu.Unlock()

	s.notify(ChangeEvent{Collection: Cards, ID: id, Op: OpDelete})
	return nil
}
