package domain

import "time"

// Category is a named grouping of decks.
type Category struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultColor is applied when no color is supplied for a category or deck.
const DefaultColor = "#2196F3"
