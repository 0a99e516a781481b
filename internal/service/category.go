package service

import (
	"strings"

	"github.com/msomdec/flashdeck/internal/domain"
	"github.com/msomdec/flashdeck/internal/store"
)

// CategoryService handles category CRUD with validation and owns the
// category deletion cascade.
type CategoryService struct {
	store *store.Store
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(s *store.Store) *CategoryService {
	return &CategoryService{store: s}
}

// Add validates, sanitizes and stores a new category.
func (s *CategoryService) Add(in CategoryInput) (domain.Category, error) {
	if err := ValidateCategory(in); err != nil {
		return domain.Category{}, err
	}
	in = SanitizeCategory(in)

	return s.store.PutCategory(domain.Category{
		Name:  in.Name,
		Color: in.Color,
	}), nil
}

// Get returns a category by id.
func (s *CategoryService) Get(id string) (domain.Category, error) {
	c, ok := s.store.GetCategory(id)
	if !ok {
		return domain.Category{}, domain.ErrNotFound
	}
	return c, nil
}

// List returns all categories keyed by id.
func (s *CategoryService) List() map[string]domain.Category {
	return s.store.ListCategories()
}

// Update applies a validated partial update and bumps updatedAt.
func (s *CategoryService) Update(id string, p CategoryPatch) (domain.Category, error) {
	if err := ValidateCategoryPatch(p); err != nil {
		return domain.Category{}, err
	}

	return s.store.PatchCategory(id, func(c *domain.Category) {
		if p.Name != nil {
			c.Name = strings.TrimSpace(*p.Name)
		}
		if p.Color != nil {
			c.Color = *p.Color
		}
	})
}

// Delete removes a category and cascades: every deck referencing it
// is deleted along with that deck's cards, so no orphan remains.
func (s *CategoryService) Delete(id string) error {
	if _, ok := s.store.GetCategory(id); !ok {
		return domain.ErrNotFound
	}

	for deckID, deck := range s.store.ListDecks() {
		if deck.CategoryID != id {
			continue
		}
		for cardID := range s.store.ListCardsByDeck(deckID) {
			if err := s.store.DeleteCard(cardID); err != nil {
				return err
			}
		}
		if err := s.store.DeleteDeck(deckID); err != nil {
			return err
		}
	}

	return s.store.DeleteCategory(id)
}
