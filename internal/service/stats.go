package service

import (
	"fmt"
	"math"
	"time"

	"github.com/msomdec/flashdeck/internal/domain"
	"github.com/msomdec/flashdeck/internal/store"
)

// StatsService derives per-deck and per-card aggregates by scanning
// the relevant collections on demand. It holds no caches, so there is
// no staleness to manage.
type StatsService struct {
	store *store.Store
}

// NewStatsService creates a new StatsService.
func NewStatsService(s *store.Store) *StatsService {
	return &StatsService{store: s}
}

// DeckStats summarizes a deck's study state.
type DeckStats struct {
	TotalCards         int
	TotalLearned       int // cards reviewed at least once
	ProgressPercentage int
	TotalSessions      int
	AverageAccuracy    int
	LastStudied        string // date of the most recent session, empty when never studied
}

// DeckStats scans the card and session tables for the deck.
func (s *StatsService) DeckStats(deckID string) (DeckStats, error) {
	if _, ok := s.store.GetDeck(deckID); !ok {
		return DeckStats{}, fmt.Errorf("deck %q: %w", deckID, domain.ErrNotFound)
	}

	var stats DeckStats
	for _, c := range s.store.ListCardsByDeck(deckID) {
		stats.TotalCards++
		if c.ReviewCount > 0 {
			stats.TotalLearned++
		}
	}
	stats.ProgressPercentage = percentage(stats.TotalLearned, stats.TotalCards)

	var accuracySum int
	var latest time.Time
	for _, sess := range s.store.ListSessionsByDeck(deckID) {
		stats.TotalSessions++
		// Open sessions have accuracy 0 and still count toward the mean.
		accuracySum += sess.Accuracy

		at := sess.StartedAt
		if sess.CompletedAt != nil {
			at = *sess.CompletedAt
		}
		if at.After(latest) {
			latest = at
		}
	}
	if stats.TotalSessions > 0 {
		stats.AverageAccuracy = int(math.Round(float64(accuracySum) / float64(stats.TotalSessions)))
		stats.LastStudied = latest.Format("2006-01-02")
	}

	return stats, nil
}

// CardStats surfaces a card's stored counters plus the derived
// success rate. SuccessRate is nil until the card has been reviewed.
type CardStats struct {
	ReviewCount  int
	CorrectCount int
	SuccessRate  *int
}

func (s *StatsService) CardStats(cardID string) (CardStats, error) {
	c, ok := s.store.GetCard(cardID)
	if !ok {
		return CardStats{}, fmt.Errorf("card %q: %w", cardID, domain.ErrNotFound)
	}

	stats := CardStats{ReviewCount: c.ReviewCount, CorrectCount: c.CorrectCount}
	if c.ReviewCount > 0 {
		rate := percentage(c.CorrectCount, c.ReviewCount)
		stats.SuccessRate = &rate
	}
	return stats, nil
}

// percentage rounds n/d to the nearest whole percent, returning 0 for
// an empty denominator.
func percentage(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(d) * 100))
}
