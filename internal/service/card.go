package service

import (
	"fmt"
	"strings"

	"github.com/msomdec/flashdeck/internal/domain"
	"github.com/msomdec/flashdeck/internal/store"
)

// CardService handles card CRUD with validation and referential
// checks against the deck table.
type CardService struct {
	store *store.Store
}

// NewCardService creates a new CardService.
func NewCardService(s *store.Store) *CardService {
	return &CardService{store: s}
}

// Add validates, sanitizes and stores a new card. The referenced deck
// must exist.
func (s *CardService) Add(in CardInput) (domain.Card, error) {
	if err := ValidateCard(in); err != nil {
		return domain.Card{}, err
	}
	in = SanitizeCard(in)

	if _, ok := s.store.GetDeck(in.DeckID); !ok {
		return domain.Card{}, fmt.Errorf("deck %q: %w", in.DeckID, domain.ErrNotFound)
	}

	return s.store.PutCard(domain.Card{
		DeckID:       in.DeckID,
		Front:        in.Front,
		Back:         in.Back,
		Difficulty:   domain.Difficulty(in.Difficulty),
		LastReviewed: in.LastReviewed,
		ReviewCount:  in.ReviewCount,
		CorrectCount: in.CorrectCount,
		NextReview:   in.NextReview,
	}), nil
}

// Get returns a card by id.
func (s *CardService) Get(id string) (domain.Card, error) {
	c, ok := s.store.GetCard(id)
	if !ok {
		return domain.Card{}, domain.ErrNotFound
	}
	return c, nil
}

// List returns all cards, optionally filtered to one deck.
func (s *CardService) List(deckID string) map[string]domain.Card {
	if deckID == "" {
		return s.store.ListCards()
	}
	return s.store.ListCardsByDeck(deckID)
}

// Update applies a validated partial update. A changed deckId must
// reference a live deck.
func (s *CardService) Update(id string, p CardPatch) (domain.Card, error) {
	if err := ValidateCardPatch(p); err != nil {
		return domain.Card{}, err
	}

	if p.DeckID != nil {
		if _, ok := s.store.GetDeck(*p.DeckID); !ok {
			return domain.Card{}, fmt.Errorf("deck %q: %w", *p.DeckID, domain.ErrNotFound)
		}
	}

	return s.store.PatchCard(id, func(c *domain.Card) {
		if p.Front != nil {
			c.Front = strings.TrimSpace(*p.Front)
		}
		if p.Back != nil {
			c.Back = strings.TrimSpace(*p.Back)
		}
		if p.DeckID != nil {
			c.DeckID = *p.DeckID
		}
		if p.Difficulty != nil {
			c.Difficulty = domain.Difficulty(*p.Difficulty)
		}
	})
}

// Delete removes a card. Progress rows referencing it stay in the
// audit log.
func (s *CardService) Delete(id string) error {
	return s.store.DeleteCard(id)
}
