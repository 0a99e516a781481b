package service

import (
	"fmt"
	"strings"

	"github.com/msomdec/flashdeck/internal/domain"
	"github.com/msomdec/flashdeck/internal/store"
)

// DeckService handles deck CRUD with validation and referential
// checks against the category table.
type DeckService struct {
	store *store.Store
}

// NewDeckService creates a new DeckService.
func NewDeckService(s *store.Store) *DeckService {
	return &DeckService{store: s}
}

// Add validates, sanitizes and stores a new deck. The referenced
// category must exist.
func (s *DeckService) Add(in DeckInput) (domain.Deck, error) {
	if err := ValidateDeck(in); err != nil {
		return domain.Deck{}, err
	}
	in = SanitizeDeck(in)

	if _, ok := s.store.GetCategory(in.CategoryID); !ok {
		return domain.Deck{}, fmt.Errorf("category %q: %w", in.CategoryID, domain.ErrNotFound)
	}

	return s.store.PutDeck(domain.Deck{
		Name:         in.Name,
		Description:  in.Description,
		CategoryID:   in.CategoryID,
		Color:        in.Color,
		TotalLearned: in.TotalLearned,
		LastStudied:  in.LastStudied,
	}), nil
}

// Get returns a deck by id.
func (s *DeckService) Get(id string) (domain.Deck, error) {
	d, ok := s.store.GetDeck(id)
	if !ok {
		return domain.Deck{}, domain.ErrNotFound
	}
	return d, nil
}

// List returns all decks keyed by id.
func (s *DeckService) List() map[string]domain.Deck {
	return s.store.ListDecks()
}

// Update applies a validated partial update. A changed categoryId
// must reference a live category.
func (s *DeckService) Update(id string, p DeckPatch) (domain.Deck, error) {
	if err := ValidateDeckPatch(p); err != nil {
		return domain.Deck{}, err
	}

	if p.CategoryID != nil {
		if _, ok := s.store.GetCategory(*p.CategoryID); !ok {
			return domain.Deck{}, fmt.Errorf("category %q: %w", *p.CategoryID, domain.ErrNotFound)
		}
	}

	return s.store.PatchDeck(id, func(d *domain.Deck) {
		if p.Name != nil {
			d.Name = strings.TrimSpace(*p.Name)
		}
		if p.Description != nil {
			d.Description = strings.TrimSpace(*p.Description)
		}
		if p.CategoryID != nil {
			d.CategoryID = *p.CategoryID
		}
		if p.Color != nil {
			d.Color = *p.Color
		}
	})
}

// Delete removes a deck and all of its cards.
func (s *DeckService) Delete(id string) error {
	if _, ok := s.store.GetDeck(id); !ok {
		return domain.ErrNotFound
	}

	for cardID := range s.store.ListCardsByDeck(id) {
		if err := s.store.DeleteCard(cardID); err != nil {
			return err
		}
	}

	return s.store.DeleteDeck(id)
}
