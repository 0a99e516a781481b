package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/msomdec/flashdeck/internal/domain"
	"github.com/msomdec/flashdeck/internal/persist/sqlite"
	"github.com/msomdec/flashdeck/internal/store"
)

func TestAutosaver_SavesAfterMutation(t *testing.T) {
	db := newTestDB(t)
	p := sqlite.NewPersister(db)
	s := store.New(domain.SystemClock())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	saver := sqlite.NewAutosaver(s, p, 10*time.Millisecond)
	done := make(chan struct{})
	go func() {
		saver.Run(ctx)
		close(done)
	}()

	cat := s.PutCategory(domain.Category{Name: "Science", Color: "#2196F3"})

	deadline := time.Now().Add(2 * time.Second)
	for {
		loaded, err := p.LoadAll(context.Background())
		if err != nil {
			t.Fatalf("LoadAll: %v", err)
		}
		if _, ok := loaded.Categories[cat.ID]; ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("autosaver never persisted the mutation")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	<-done
}

func TestAutosaver_FlushOnShutdown(t *testing.T) {
	db := newTestDB(t)
	p := sqlite.NewPersister(db)
	s := store.New(domain.SystemClock())

	// A debounce far longer than the test: only the shutdown flush
	// can persist the mutation.
	ctx, cancel := context.WithCancel(context.Background())
	saver := sqlite.NewAutosaver(s, p, time.Hour)
	done := make(chan struct{})
	go func() {
		saver.Run(ctx)
		close(done)
	}()

	cat := s.PutCategory(domain.Category{Name: "History", Color: "#795548"})

	// Give the subscription callback a moment to mark dirty.
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	loaded, err := p.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if _, ok := loaded.Categories[cat.ID]; !ok {
		t.Fatal("shutdown flush must persist pending changes")
	}
}
