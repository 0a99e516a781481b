package domain

import "time"

// LearningSession is one timed pass through a deck's cards. A session
// is open while CompletedAt is nil; completion seals CorrectAnswers,
// Accuracy and Duration, and they are immutable afterwards.
//
// TotalCards is a snapshot of the deck's card count taken at start and
// is never refreshed, so accuracy is always computed against the
// original denominator even if cards are added or removed mid-session.
type LearningSession struct {
	ID             string
	DeckID         string
	StartedAt      time.Time
	CompletedAt    *time.Time
	TotalCards     int
	CorrectAnswers int
	Accuracy       int // 0-100, computed once at completion
	Duration       int // seconds
	CreatedAt      time.Time
}

// Open reports whether the session has not been completed yet.
func (s *LearningSession) Open() bool {
	return s.CompletedAt == nil
}

type Result string

const (
	ResultCorrect   Result = "correct"
	ResultIncorrect Result = "incorrect"
)

// CardProgress is an immutable per-attempt audit record tying a card,
// a deck and a session to a correct/incorrect outcome. Rows are
// append-only: never updated or deleted once recorded.
type CardProgress struct {
	ID           string
	CardID       string
	DeckID       string
	SessionID    string
	Result       Result
	ResponseTime *int // milliseconds, nil when not measured
	CreatedAt    time.Time
}
