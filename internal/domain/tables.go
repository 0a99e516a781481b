package domain

import "context"

// Tables is the full set of record collections, keyed by record ID.
// It is the unit of exchange with the persistence collaborator: the
// store snapshots into it and restores from it.
type Tables struct {
	Categories map[string]Category
	Decks      map[string]Deck
	Cards      map[string]Card
	Sessions   map[string]LearningSession
	Progress   map[string]CardProgress
}

// NewTables returns an empty, fully allocated Tables value.
func NewTables() Tables {
	return Tables{
		Categories: make(map[string]Category),
		Decks:      make(map[string]Deck),
		Cards:      make(map[string]Card),
		Sessions:   make(map[string]LearningSession),
		Progress:   make(map[string]CardProgress),
	}
}

// Persister serializes and restores the full set of collections.
// The wire/storage format is the implementation's concern; the store
// only requires that a LoadAll after a SaveAll round-trips every row.
type Persister interface {
	LoadAll(ctx context.Context) (Tables, error)
	SaveAll(ctx context.Context, tables Tables) error
}
