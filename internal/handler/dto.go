package handler

import (
	"sort"
	"time"

	"github.com/msomdec/flashdeck/internal/domain"
	"github.com/msomdec/flashdeck/internal/service"
)

// CategoryDTO is the JSON representation of a category.
type CategoryDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toCategoryDTO(c domain.Category) CategoryDTO {
	return CategoryDTO{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func toCategoryDTOs(categories map[string]domain.Category) []CategoryDTO {
	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toCategoryDTO(c))
	}
	sortDTOs(dtos, func(d CategoryDTO) (string, string) { return d.CreatedAt, d.ID })
	return dtos
}

// DeckDTO is the JSON representation of a deck.
type DeckDTO struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	CategoryID   string  `json:"categoryId"`
	Color        string  `json:"color"`
	TotalLearned int     `json:"totalLearned"`
	LastStudied  *string `json:"lastStudied"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

func toDeckDTO(d domain.Deck) DeckDTO {
	return DeckDTO{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		CategoryID:   d.CategoryID,
		Color:        d.Color,
		TotalLearned: d.TotalLearned,
		LastStudied:  formatOptionalTime(d.LastStudied),
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    d.UpdatedAt.Format(time.RFC3339),
	}
}

func toDeckDTOs(decks map[string]domain.Deck) []DeckDTO {
	dtos := make([]DeckDTO, 0, len(decks))
	for _, d := range decks {
		dtos = append(dtos, toDeckDTO(d))
	}
	sortDTOs(dtos, func(d DeckDTO) (string, string) { return d.CreatedAt, d.ID })
	return dtos
}

// CardDTO is the JSON representation of a card.
type CardDTO struct {
	ID           string  `json:"id"`
	DeckID       string  `json:"deckId"`
	Front        string  `json:"front"`
	Back         string  `json:"back"`
	Difficulty   string  `json:"difficulty"`
	LastReviewed *string `json:"lastReviewed"`
	ReviewCount  int     `json:"reviewCount"`
	CorrectCount int     `json:"correctCount"`
	NextReview   *string `json:"nextReview"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

func toCardDTO(c domain.Card) CardDTO {
	return CardDTO{
		ID:           c.ID,
		DeckID:       c.DeckID,
		Front:        c.Front,
		Back:         c.Back,
		Difficulty:   string(c.Difficulty),
		LastReviewed: formatOptionalTime(c.LastReviewed),
		ReviewCount:  c.ReviewCount,
		CorrectCount: c.CorrectCount,
		NextReview:   formatOptionalTime(c.NextReview),
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.Format(time.RFC3339),
	}
}

func toCardDTOs(cards map[string]domain.Card) []CardDTO {
	dtos := make([]CardDTO, 0, len(cards))
	for _, c := range cards {
		dtos = append(dtos, toCardDTO(c))
	}
	sortDTOs(dtos, func(d CardDTO) (string, string) { return d.CreatedAt, d.ID })
	return dtos
}

// SessionDTO is the JSON representation of a learning session.
type SessionDTO struct {
	ID             string  `json:"id"`
	DeckID         string  `json:"deckId"`
	StartedAt      string  `json:"startedAt"`
	CompletedAt    *string `json:"completedAt"`
	TotalCards     int     `json:"totalCards"`
	CorrectAnswers int     `json:"correctAnswers"`
	Accuracy       int     `json:"accuracy"`
	Duration       int     `json:"duration"`
	CreatedAt      string  `json:"createdAt"`
}

func toSessionDTO(s domain.LearningSession) SessionDTO {
	return SessionDTO{
		ID:             s.ID,
		DeckID:         s.DeckID,
		StartedAt:      s.StartedAt.Format(time.RFC3339),
		CompletedAt:    formatOptionalTime(s.CompletedAt),
		TotalCards:     s.TotalCards,
		CorrectAnswers: s.CorrectAnswers,
		Accuracy:       s.Accuracy,
		Duration:       s.Duration,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
}

func toSessionDTOs(sessions map[string]domain.LearningSession) []SessionDTO {
	dtos := make([]SessionDTO, 0, len(sessions))
	for _, s := range sessions {
		dtos = append(dtos, toSessionDTO(s))
	}
	sortDTOs(dtos, func(d SessionDTO) (string, string) { return d.StartedAt, d.ID })
	return dtos
}

// ProgressDTO is the JSON representation of a recorded card result.
type ProgressDTO struct {
	ID           string `json:"id"`
	CardID       string `json:"cardId"`
	DeckID       string `json:"deckId"`
	SessionID    string `json:"sessionId"`
	Result       string `json:"result"`
	ResponseTime *int   `json:"responseTime"`
	CreatedAt    string `json:"createdAt"`
}

func toProgressDTO(p domain.CardProgress) ProgressDTO {
	return ProgressDTO{
		ID:           p.ID,
		CardID:       p.CardID,
		DeckID:       p.DeckID,
		SessionID:    p.SessionID,
		Result:       string(p.Result),
		ResponseTime: p.ResponseTime,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

func toProgressDTOs(progress map[string]domain.CardProgress) []ProgressDTO {
	dtos := make([]ProgressDTO, 0, len(progress))
	for _, p := range progress {
		dtos = append(dtos, toProgressDTO(p))
	}
	sortDTOs(dtos, func(d ProgressDTO) (string, string) { return d.CreatedAt, d.ID })
	return dtos
}

// DeckStatsDTO is the JSON representation of aggregated deck statistics.
type DeckStatsDTO struct {
	TotalCards         int    `json:"totalCards"`
	TotalLearned       int    `json:"totalLearned"`
	ProgressPercentage int    `json:"progressPercentage"`
	TotalSessions      int    `json:"totalSessions"`
	AverageAccuracy    int    `json:"averageAccuracy"`
	LastStudied        string `json:"lastStudied"`
}

func toDeckStatsDTO(s service.DeckStats) DeckStatsDTO {
	return DeckStatsDTO{
		TotalCards:         s.TotalCards,
		TotalLearned:       s.TotalLearned,
		ProgressPercentage: s.ProgressPercentage,
		TotalSessions:      s.TotalSessions,
		AverageAccuracy:    s.AverageAccuracy,
		LastStudied:        s.LastStudied,
	}
}

// CardStatsDTO is the JSON representation of per-card review statistics.
type CardStatsDTO struct {
	ReviewCount  int  `json:"reviewCount"`
	CorrectCount int  `json:"correctCount"`
	SuccessRate  *int `json:"successRate"`
}

func toCardStatsDTO(s service.CardStats) CardStatsDTO {
	return CardStatsDTO{
		ReviewCount:  s.ReviewCount,
		CorrectCount: s.CorrectCount,
		SuccessRate:  s.SuccessRate,
	}
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// sortDTOs orders list responses by creation time, then ID for stable
// output across requests.
func sortDTOs[T any](dtos []T, key func(T) (string, string)) {
	sort.Slice(dtos, func(i, j int) bool {
		ti, idi := key(dtos[i])
		tj, idj := key(dtos[j])
		if ti != tj {
			return ti < tj
		}
		return idi < idj
	})
}
