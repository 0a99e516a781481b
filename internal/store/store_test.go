package store_test

import (
	"testing"
	"time"

	"github.com/msomdec/flashdeck/internal/domain"
	"github.com/msomdec/flashdeck/internal/store"
)

// fakeClock returns a fixed instant and can be advanced by tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore() (*store.Store, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return store.New(clock), clock
}

func TestPutCategory_AssignsSystemFields(t *testing.T) {
	s, clock := newTestStore()

	c := s.PutCategory(domain.Category{Name: "Science", Color: "#2196F3"})

	if c.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if !c.CreatedAt.Equal(clock.now) || !c.UpdatedAt.Equal(clock.now) {
		t.Fatalf("expected timestamps %v, got created=%v updated=%v", clock.now, c.CreatedAt, c.UpdatedAt)
	}

	got, ok := s.GetCategory(c.ID)
	if !ok {
		t.Fatal("expected category to be stored")
	}
	if got != c {
		t.Fatalf("round trip mismatch: put %+v, got %+v", c, got)
	}
}

func TestPatchCategory_MergesAndRefreshesUpdatedAt(t *testing.T) {
	s, clock := newTestStore()
	c := s.PutCategory(domain.Category{Name: "Science", Color: "#2196F3"})

	clock.advance(time.Hour)

	patched, err := s.PatchCategory(c.ID, func(cat *domain.Category) {
		cat.Name = "Natural Science"
	})
	if err != nil {
		t.Fatalf("PatchCategory: %v", err)
	}

	if patched.Name != "Natural Science" {
		t.Fatalf("expected patched name, got %q", patched.Name)
	}
	if patched.Color != "#2196F3" {
		t.Fatalf("unlisted field changed: color %q", patched.Color)
	}
	if !patched.CreatedAt.Equal(c.CreatedAt) {
		t.Fatal("createdAt must not change on patch")
	}
	if !patched.UpdatedAt.After(c.UpdatedAt) {
		t.Fatalf("expected updatedAt refreshed, got %v", patched.UpdatedAt)
	}
}

func TestPatchCategory_Unknown(t *testing.T) {
	s, _ := newTestStore()

	if _, err := s.PatchCategory("missing", func(*domain.Category) {}); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCategory(t *testing.T) {
	s, _ := newTestStore()
	c := s.PutCategory(domain.Category{Name: "Science", Color: "#2196F3"})

	if err := s.DeleteCategory(c.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if _, ok := s.GetCategory(c.ID); ok {
		t.Fatal("expected category to be gone")
	}
	if err := s.DeleteCategory(c.ID); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListCategories_ReturnsCopy(t *testing.T) {
	s, _ := newTestStore()
	c := s.PutCategory(domain.Category{Name: "Science", Color: "#2196F3"})

	list := s.ListCategories()
	delete(list, c.ID)

	if _, ok := s.GetCategory(c.ID); !ok {
		t.Fatal("mutating a listed map must not affect the store")
	}
}

func TestListCardsByDeck_FiltersByDeck(t *testing.T) {
	s, _ := newTestStore()
	a := s.PutCard(domain.Card{Front: "q1", Back: "a1", DeckID: "deck-1", Difficulty: domain.DifficultyMedium})
	s.PutCard(domain.Card{Front: "q2", Back: "a2", DeckID: "deck-2", Difficulty: domain.DifficultyMedium})

	cards := s.ListCardsByDeck("deck-1")
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	if _, ok := cards[a.ID]; !ok {
		t.Fatal("expected deck-1 card in result")
	}
}

func TestSubscribe_NotifiesEveryMutation(t *testing.T) {
	s, _ := newTestStore()

	var events []store.ChangeEvent
	unsubscribe := s.Subscribe(func(ev store.ChangeEvent) {
		events = append(events, ev)
	})

	c := s.PutCategory(domain.Category{Name: "Science", Color: "#2196F3"})
	if _, err := s.PatchCategory(c.ID, func(cat *domain.Category) { cat.Name = "Sci" }); err != nil {
		t.Fatalf("PatchCategory: %v", err)
	}
	if err := s.DeleteCategory(c.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	want := []store.Op{store.OpPut, store.OpPatch, store.OpDelete}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(events))
	}
	for i, op := range want {
		if events[i].Op != op || events[i].Collection != store.Categories || events[i].ID != c.ID {
			t.Fatalf("event %d: got %+v", i, events[i])
		}
	}

	unsubscribe()
	s.PutCategory(domain.Category{Name: "History", Color: "#2196F3"})
	if len(events) != len(want) {
		t.Fatal("unsubscribed listener still received events")
	}
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	s, _ := newTestStore()
	cat := s.PutCategory(domain.Category{Name: "Science", Color: "#2196F3"})
	deck := s.PutDeck(domain.Deck{Name: "Biology", CategoryID: cat.ID, Color: "#2196F3"})
	card := s.PutCard(domain.Card{Front: "q", Back: "a", DeckID: deck.ID, Difficulty: domain.DifficultyMedium})

	snapshot := s.Snapshot()

	other, _ := newTestStore()
	other.Restore(snapshot)

	if _, ok := other.GetCategory(cat.ID); !ok {
		t.Fatal("category missing after restore")
	}
	if _, ok := other.GetDeck(deck.ID); !ok {
		t.Fatal("deck missing after restore")
	}
	got, ok := other.GetCard(card.ID)
	if !ok {
		t.Fatal("card missing after restore")
	}
	if got != card {
		t.Fatalf("card mismatch after restore: %+v vs %+v", got, card)
	}
}

func TestSessionPut_StampsCreatedAtOnly(t *testing.T) {
	s, clock := newTestStore()

	sess := s.PutSession(domain.LearningSession{DeckID: "deck-1", StartedAt: clock.Now(), TotalCards: 3})

	if sess.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if !sess.CreatedAt.Equal(clock.now) {
		t.Fatalf("expected createdAt %v, got %v", clock.now, sess.CreatedAt)
	}
	if !sess.Open() {
		t.Fatal("new session should be open")
	}
}
