package store

import "github.com/msomdec/flashdeck/internal/domain"

// GetCategory returns the category with the given id.
func (s *Store) GetCategory(id string) (domain.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.tables.Categories[id]
	return c, ok
}

// ListCategories returns a copy of the category table.
func (s *Store) ListCategories() map[string]domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneMap(s.tables.Categories)
}

// PutCategory inserts or replaces a category. A missing ID is
// assigned, and zero CreatedAt/UpdatedAt are stamped with the current
// time.
func (s *Store) PutCategory(c domain.Category) domain.Category {
	s.mu.Lock()
	if c.ID == "" {
		c.ID = s.newID()
	}
	now := s.clock.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	s.tables.Categories[c.ID] = c
	s.mu.Unlock()

	s.notify(ChangeEvent{Collection: Categories, ID: c.ID, Op: OpPut})
	return c
}

// PatchCategory applies fn to a copy of the stored record, refreshes
// UpdatedAt and commits the result. Fields fn leaves alone are
// untouched.
func (s *Store) PatchCategory(id string, fn func(*domain.Category)) (domain.Category, error) {
	s.mu.Lock()
	c, ok := s.tables.Categories[id]
	if !ok {
		s.mu.Unlock()
		return domain.Category{}, domain.ErrNotFound
	}
	fn(&c)
	c.ID = id
	c.UpdatedAt = s.clock.Now()
	s.tables.Categories[id] = c
	s.mu.Unlock()

	s.notify(ChangeEvent{Collection: Categories, ID: id, Op: OpPatch})
	return c, nil
}

// DeleteCategory removes a category row. Cascading to decks and cards
// is the caller's job.
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	if _, ok := s.tables.Categories[id]; !ok {
		s.mu.Unlock()
		return domain.ErrNotFound
	}
	delete(s.tables.Categories, id)
	s.mu.Unlock()

	s.notify(ChangeEvent{Collection: Categories, ID: id, Op: OpDelete})
	return nil
}
