package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/msomdec/flashdeck/internal/domain"
)

// colorPattern matches a 6-hex-digit color code with a leading '#'.
var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
	maxCardTextLength    = 1000
)

// CategoryInput is the untyped-boundary shape for creating a
// category. Validation converts it into a typed record; sanitization
// runs only on valid input.
type CategoryInput struct {
	Name  string
	Color string
}

// DeckInput is the boundary shape for creating a deck.
type DeckInput struct {
	Name         string
	Description  string
	CategoryID   string
	Color        string
	TotalLearned int
	LastStudied  *time.Time
}

// CardInput is the boundary shape for creating a card. The counter
// fields allow imports of pre-reviewed cards and default to zero.
type CardInput struct {
	Front        string
	Back         string
	DeckID       string
	Difficulty   string
	ReviewCount  int
	CorrectCount int
	LastReviewed *time.Time
	NextReview   *time.Time
}

// ValidateCategory checks every rule and collects one message per
// violation.
func ValidateCategory(in CategoryInput) error {
	var msgs []string
	checkRequiredString(&msgs, "name", in.Name, maxNameLength)
	checkColor(&msgs, in.Color)
	return validationResult(msgs)
}

// SanitizeCategory trims strings and applies defaults. It assumes the
// input already validated.
func SanitizeCategory(in CategoryInput) CategoryInput {
	in.Name = strings.TrimSpace(in.Name)
	if in.Color == "" {
		in.Color = domain.DefaultColor
	}
	return in
}

func ValidateDeck(in DeckInput) error {
	var msgs []string
	checkRequiredString(&msgs, "name", in.Name, maxNameLength)
	if len(in.Description) > maxDescriptionLength {
		msgs = append(msgs, fmt.Sprintf("description must be no more than %d characters long", maxDescriptionLength))
	}
	if strings.TrimSpace(in.CategoryID) == "" {
		msgs = append(msgs, "categoryId is required")
	}
	checkColor(&msgs, in.Color)
	if in.TotalLearned < 0 {
		msgs = append(msgs, "totalLearned must be at least 0")
	}
	return validationResult(msgs)
}

func SanitizeDeck(in DeckInput) DeckInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Color == "" {
		in.Color = domain.DefaultColor
	}
	return in
}

func ValidateCard(in CardInput) error {
	var msgs []string
	checkRequiredText(&msgs, "front", in.Front, maxCardTextLength)
	checkRequiredText(&msgs, "back", in.Back, maxCardTextLength)
	if strings.TrimSpace(in.DeckID) == "" {
		msgs = append(msgs, "deckId is required")
	}
	checkDifficulty(&msgs, in.Difficulty)
	if in.ReviewCount < 0 {
		msgs = append(msgs, "reviewCount must be at least 0")
	}
	if in.CorrectCount < 0 {
		msgs = append(msgs, "correctCount must be at least 0")
	}
	if in.CorrectCount > in.ReviewCount {
		msgs = append(msgs, "correctCount must be no more than reviewCount")
	}
	return validationResult(msgs)
}

func SanitizeCard(in CardInput) CardInput {
	in.Front = strings.TrimSpace(in.Front)
	in.Back = strings.TrimSpace(in.Back)
	if in.Difficulty == "" {
		in.Difficulty = string(domain.DifficultyMedium)
	}
	return in
}

// CategoryPatch carries the fields an update may change; nil fields
// are left untouched.
type CategoryPatch struct {
	Name  *string
	Color *string
}

func ValidateCategoryPatch(p CategoryPatch) error {
	var msgs []string
	if p.Name != nil {
		checkRequiredString(&msgs, "name", *p.Name, maxNameLength)
	}
	if p.Color != nil {
		checkColor(&msgs, *p.Color)
	}
	return validationResult(msgs)
}

type DeckPatch struct {
	Name        *string
	Description *string
	CategoryID  *string
	Color       *string
}

func ValidateDeckPatch(p DeckPatch) error {
	var msgs []string
	if p.Name != nil {
		checkRequiredString(&msgs, "name", *p.Name, maxNameLength)
	}
	if p.Description != nil && len(*p.Description) > maxDescriptionLength {
		msgs = append(msgs, fmt.Sprintf("description must be no more than %d characters long", maxDescriptionLength))
	}
	if p.CategoryID != nil && strings.TrimSpace(*p.CategoryID) == "" {
		msgs = append(msgs, "categoryId is required")
	}
	if p.Color != nil {
		checkColor(&msgs, *p.Color)
	}
	return validationResult(msgs)
}

type CardPatch struct {
	Front      *string
	Back       *string
	DeckID     *string
	Difficulty *string
}

func ValidateCardPatch(p CardPatch) error {
	var msgs []string
	if p.Front != nil {
		checkRequiredText(&msgs, "front", *p.Front, maxCardTextLength)
	}
	if p.Back != nil {
		checkRequiredText(&msgs, "back", *p.Back, maxCardTextLength)
	}
	if p.DeckID != nil && strings.TrimSpace(*p.DeckID) == "" {
		msgs = append(msgs, "deckId is required")
	}
	if p.Difficulty != nil {
		checkDifficulty(&msgs, *p.Difficulty)
	}
	return validationResult(msgs)
}

func checkRequiredString(msgs *[]string, field, value string, maxLen int) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		*msgs = append(*msgs, field+" is required")
		return
	}
	if len(trimmed) > maxLen {
		*msgs = append(*msgs, fmt.Sprintf("%s must be no more than %d characters long", field, maxLen))
	}
}

func checkRequiredText(msgs *[]string, field, value string, maxLen int) {
	checkRequiredString(msgs, field, value, maxLen)
}

func checkColor(msgs *[]string, color string) {
	// Empty is fine; sanitization supplies the default.
	if color != "" && !colorPattern.MatchString(color) {
		*msgs = append(*msgs, "color format is invalid")
	}
}

func checkDifficulty(msgs *[]string, difficulty string) {
	switch domain.Difficulty(difficulty) {
	case "", domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
	default:
		*msgs = append(*msgs, "difficulty must be one of: easy, medium, hard")
	}
}

func validationResult(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &domain.ValidationError{Messages: msgs}
}
