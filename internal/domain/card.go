package domain

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Card is a question/answer pair with per-card review statistics.
// CorrectCount never exceeds ReviewCount. NextReview is stored for
// the owning application but never computed here.
type Card struct {
	ID           string
	DeckID       string
	Front        string
	Back         string
	Difficulty   Difficulty
	LastReviewed *time.Time
	ReviewCount  int
	CorrectCount int
	NextReview   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
