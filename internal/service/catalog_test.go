package service

import (
	"errors"
	"testing"
	"time"

	"github.com/msomdec/flashdeck/internal/domain"
)

func TestAddCategory_RoundTrip(t *testing.T) {
	s, clock := newTestStore()
	categories := NewCategoryService(s)

	c, err := categories.Add(CategoryInput{Name: " Science "})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if c.ID == "" {
		t.Fatal("expected assigned id")
	}
	if c.Name != "Science" {
		t.Fatalf("expected sanitized name, got %q", c.Name)
	}
	if c.Color != domain.DefaultColor {
		t.Fatalf("expected default color, got %q", c.Color)
	}
	if !c.CreatedAt.Equal(clock.now) || !c.UpdatedAt.Equal(clock.now) {
		t.Fatal("expected system-assigned timestamps")
	}

	got, err := categories.Get(c.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != c {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, c)
	}
}

func TestAddCategory_InvalidInputRejected(t *testing.T) {
	s, _ := newTestStore()
	categories := NewCategoryService(s)

	if _, err := categories.Add(CategoryInput{Name: ""}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(categories.List()) != 0 {
		t.Fatal("invalid input must not create a record")
	}
}

func TestAddDeck_RequiresLiveCategory(t *testing.T) {
	s, _ := newTestStore()
	decks := NewDeckService(s)

	_, err := decks.Add(DeckInput{Name: "Biology", CategoryID: "ghost"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateDeck_PartialPatch(t *testing.T) {
	s, clock := newTestStore()
	deckID, _ := seedDeck(t, s, 1)
	decks := NewDeckService(s)

	before, err := decks.Get(deckID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	clock.advance(time.Minute)

	name := "Marine Biology"
	updated, err := decks.Update(deckID, DeckPatch{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Name != "Marine Biology" {
		t.Fatalf("expected patched name, got %q", updated.Name)
	}
	if updated.CategoryID != before.CategoryID || updated.Color != before.Color {
		t.Fatal("unlisted fields must stay untouched")
	}
	if !updated.UpdatedAt.After(before.UpdatedAt) {
		t.Fatal("expected updatedAt bump")
	}
}

func TestUpdateDeck_RejectsDeadCategory(t *testing.T) {
	s, _ := newTestStore()
	deckID, _ := seedDeck(t, s, 1)
	decks := NewDeckService(s)

	ghost := "ghost"
	if _, err := decks.Update(deckID, DeckPatch{CategoryID: &ghost}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCategory_Cascades(t *testing.T) {
	s, _ := newTestStore()
	categories := NewCategoryService(s)
	decks := NewDeckService(s)
	cards := NewCardService(s)

	cat, err := categories.Add(CategoryInput{Name: "Science"})
	if err != nil {
		t.Fatalf("add category: %v", err)
	}
	other, err := categories.Add(CategoryInput{Name: "History"})
	if err != nil {
		t.Fatalf("add category: %v", err)
	}

	deck1, err := decks.Add(DeckInput{Name: "Biology", CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("add deck: %v", err)
	}
	deck2, err := decks.Add(DeckInput{Name: "Chemistry", CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("add deck: %v", err)
	}
	kept, err := decks.Add(DeckInput{Name: "Rome", CategoryID: other.ID})
	if err != nil {
		t.Fatalf("add deck: %v", err)
	}

	for _, deckID := range []string{deck1.ID, deck2.ID, kept.ID} {
		if _, err := cards.Add(CardInput{Front: "q", Back: "a", DeckID: deckID}); err != nil {
			t.Fatalf("add card: %v", err)
		}
	}

	if err := categories.Delete(cat.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := categories.Get(cat.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatal("category should be gone")
	}
	// No orphan deck or card may reference a deleted parent.
	for id, d := range decks.List() {
		if d.CategoryID == cat.ID {
			t.Fatalf("orphan deck %s survived cascade", id)
		}
	}
	for id, c := range cards.List("") {
		if c.DeckID == deck1.ID || c.DeckID == deck2.ID {
			t.Fatalf("orphan card %s survived cascade", id)
		}
	}
	// The unrelated branch is untouched.
	if _, err := decks.Get(kept.ID); err != nil {
		t.Fatalf("unrelated deck was deleted: %v", err)
	}
	if len(cards.List(kept.ID)) != 1 {
		t.Fatal("unrelated card was deleted")
	}
}

func TestDeleteDeck_CascadesCards(t *testing.T) {
	s, _ := newTestStore()
	deckID, cardIDs := seedDeck(t, s, 3)
	decks := NewDeckService(s)
	cards := NewCardService(s)

	if err := decks.Delete(deckID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	for _, id := range cardIDs {
		if _, err := cards.Get(id); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("card %s survived deck deletion", id)
		}
	}
}

func TestListCards_DeckFilter(t *testing.T) {
	s, _ := newTestStore()
	deckID, cardIDs := seedDeck(t, s, 2)
	cards := NewCardService(s)

	filtered := cards.List(deckID)
	if len(filtered) != len(cardIDs) {
		t.Fatalf("expected %d cards, got %d", len(cardIDs), len(filtered))
	}
	if len(cards.List("")) != len(cardIDs) {
		t.Fatal("unfiltered list mismatch")
	}
	if len(cards.List("ghost")) != 0 {
		t.Fatal("unknown deck should list no cards")
	}
}
