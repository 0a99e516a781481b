package domain

import "time"

// Deck is a named collection of cards belonging to one category.
// TotalLearned and LastStudied are cached values refreshed when a
// learning session completes; DeckStats recomputes live figures.
type Deck struct {
	ID           string
	Name         string
	Description  string
	CategoryID   string
	Color        string
	TotalLearned int
	LastStudied  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
