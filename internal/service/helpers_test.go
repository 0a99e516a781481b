package service

import (
	"testing"
	"time"

	"github.com/msomdec/flashdeck/internal/store"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore() (*store.Store, *fixedClock) {
	clock := &fixedClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	return store.New(clock), clock
}

// seedDeck creates a category, a deck in it, and n cards, returning
// the deck id and the card ids in creation order.
func seedDeck(t *testing.T, s *store.Store, n int) (string, []string) {
	t.Helper()

	categories := NewCategoryService(s)
	decks := NewDeckService(s)
	cards := NewCardService(s)

	cat, err := categories.Add(CategoryInput{Name: "Science"})
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	deck, err := decks.Add(DeckInput{Name: "Biology", CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("add deck: %v", err)
	}

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		card, err := cards.Add(CardInput{
			Front:  "front " + string(rune('a'+i)),
			Back:   "back " + string(rune('a'+i)),
			DeckID: deck.ID,
		})
		if err != nil {
			t.Fatalf("add card %d: %v", i, err)
		}
		ids = append(ids, card.ID)
	}
	return deck.ID, ids
}
