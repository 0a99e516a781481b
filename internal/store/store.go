// Package store holds the five record collections in memory and is
// the single mutation point for all of them. It enforces no
// cross-collection integrity; the services own referential checks and
// cascades. Every mutation notifies subscribed listeners so the
// persistence collaborator and change feeds can react.
package store

import (
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/msomdec/flashdeck/internal/domain"
)

type Collection string

const (
	Categories Collection = "categories"
	Decks      Collection = "decks"
	Cards      Collection = "cards"
	Sessions   Collection = "learning_sessions"
	Progress   Collection = "card_progress"
)

type Op string

const (
	OpPut    Op = "put"
	OpPatch  Op = "patch"
	OpDelete Op = "delete"
)

// ChangeEvent describes one committed mutation.
type ChangeEvent struct {
	Collection Collection
	ID         string
	Op         Op
}

// Store is an explicitly constructed in-memory record store. One
// mutex guards all tables, so every Put/Patch/Delete is atomic with
// respect to every other store call even under a multi-threaded
// server. Listeners are invoked after the write, outside the lock.
type Store struct {
	mu     sync.Mutex
	clock  domain.Clock
	tables domain.Tables

	listenerMu sync.Mutex
	listeners  map[int]func(ChangeEvent)
	nextToken  int

	newID func() string
}

// New creates an empty store that stamps system-assigned fields using
// the given clock.
func New(clock domain.Clock) *Store {
	return &Store{
		clock:     clock,
		tables:    domain.NewTables(),
		listeners: make(map[int]func(ChangeEvent)),
		newID:     func() string { return gonanoid.Must() },
	}
}

// Now exposes the store's clock so services share one time source.
func (s *Store) Now() time.Time { return s.clock.Now() }

// Subscribe registers a change listener and returns its unsubscribe
// handle. Listeners run synchronously on the mutating goroutine and
// must not block.
func (s *Store) Subscribe(fn func(ChangeEvent)) (unsubscribe func()) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	token := s.nextToken
	s.nextToken++
	s.listeners[token] = fn

	return func() {
		s.listenerMu.Lock()
		defer s.listenerMu.Unlock()
		delete(s.listeners, token)
	}
}

func (s *Store) notify(ev ChangeEvent) {
	s.listenerMu.Lock()
	fns := make([]func(ChangeEvent), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listenerMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Snapshot returns a deep copy of every collection for the
// persistence collaborator.
func (s *Store) Snapshot() domain.Tables {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Tables{
		Categories: cloneMap(s.tables.Categories),
		Decks:      cloneMap(s.tables.Decks),
		Cards:      cloneMap(s.tables.Cards),
		Sessions:   cloneMap(s.tables.Sessions),
		Progress:   cloneMap(s.tables.Progress),
	}
}

// Restore replaces every collection with the given tables. It is
// meant for startup loading and emits no change events.
func (s *Store) Restore(tables domain.Tables) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tables = domain.Tables{
		Categories: cloneMap(tables.Categories),
		Decks:      cloneMap(tables.Decks),
		Cards:      cloneMap(tables.Cards),
		Sessions:   cloneMap(tables.Sessions),
		Progress:   cloneMap(tables.Progress),
	}
	if s.tables.Categories == nil {
		s.tables.Categories = make(map[string]domain.Category)
	}
	if s.tables.Decks == nil {
		s.tables.Decks = make(map[string]domain.Deck)
	}
	if s.tables.Cards == nil {
		s.tables.Cards = make(map[string]domain.Card)
	}
	if s.tables.Sessions == nil {
		s.tables.Sessions = make(map[string]domain.LearningSession)
	}
	if s.tables.Progress == nil {
		s.tables.Progress = make(map[string]domain.CardProgress)
	}
}

func cloneMap[T any](src map[string]T) map[string]T {
	dst := make(map[string]T, len(src))
	for id, rec := range src {
		dst[id] = rec
	}
	return dst
}
