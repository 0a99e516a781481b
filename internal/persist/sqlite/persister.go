package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/flashdeck/internal/domain"
)

// Persister writes and reads whole-state snapshots. Implements
// domain.Persister.
type Persister struct {
	db *DB
}

func NewPersister(db *DB) *Persister {
	return &Persister{db: db}
}

// LoadAll reads every table into an in-memory snapshot. An empty
// database yields an empty snapshot, not an error.
func (p *Persister) LoadAll(ctx context.Context) (domain.Tables, error) {
	tables := domain.NewTables()

	if err := p.loadCategories(ctx, &tables); err != nil {
		return domain.Tables{}, fmt.Errorf("load categories: %w", err)
	}
	if err := p.loadDecks(ctx, &tables); err != nil {
		return domain.Tables{}, fmt.Errorf("load decks: %w", err)
	}
	if err := p.loadCards(ctx, &tables); err != nil {
		return domain.Tables{}, fmt.Errorf("load cards: %w", err)
	}
	if err := p.loadSessions(ctx, &tables); err != nil {
		return domain.Tables{}, fmt.Errorf("load learning sessions: %w", err)
	}
	if err := p.loadProgress(ctx, &tables); err != nil {
		return domain.Tables{}, fmt.Errorf("load card progress: %w", err)
	}

	return tables, nil
}

// SaveAll replaces the database contents with the given snapshot in a
// single transaction.
func (p *Persister) SaveAll(ctx context.Context, tables domain.Tables) error {
	tx, err := p.db.SqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"card_progress", "learning_sessions", "cards", "decks", "categories"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, c := range tables.Categories {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, name, color, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, c.ID, c.Name, c.Color, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert category %s: %w", c.ID, err)
		}
	}

	for _, d := range tables.Decks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO decks (id, name, description, category_id, color, total_learned, last_studied, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, d.ID, d.Name, d.Description, d.CategoryID, d.Color, d.TotalLearned, d.LastStudied, d.CreatedAt, d.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert deck %s: %w", d.ID, err)
		}
	}

	for _, c := range tables.Cards {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cards (id, deck_id, front, back, difficulty, last_reviewed, review_count, correct_count, next_review, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, c.ID, c.DeckID, c.Front, c.Back, string(c.Difficulty), c.LastReviewed, c.ReviewCount, c.CorrectCount, c.NextReview, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert card %s: %w", c.ID, err)
		}
	}

	for _, s := range tables.Sessions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO learning_sessions (id, deck_id, started_at, completed_at, total_cards, correct_answers, accuracy, duration, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, s.ID, s.DeckID, s.StartedAt, s.CompletedAt, s.TotalCards, s.CorrectAnswers, s.Accuracy, s.Duration, s.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert learning session %s: %w", s.ID, err)
		}
	}

	for _, pr := range tables.Progress {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO card_progress (id, card_id, deck_id, session_id, result, response_time, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, pr.ID, pr.CardID, pr.DeckID, pr.SessionID, string(pr.Result), pr.ResponseTime, pr.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert card progress %s: %w", pr.ID, err)
		}
	}

	return tx.Commit()
}

func (p *Persister) loadCategories(ctx context.Context, tables *domain.Tables) error {
	rows, err := p.db.SqlDB.QueryContext(ctx, `
		SELECT id, name, color, created_at, updated_at FROM categories
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return err
		}
		tables.Categories[c.ID] = c
	}
	return rows.Err()
}

func (p *Persister) loadDecks(ctx context.Context, tables *domain.Tables) error {
	rows, err := p.db.SqlDB.QueryContext(ctx, `
		SELECT id, name, description, category_id, color, total_learned, last_studied, created_at, updated_at
		FROM decks
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var d domain.Deck
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CategoryID, &d.Color, &d.TotalLearned, &d.LastStudied, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return err
		}
		tables.Decks[d.ID] = d
	}
	return rows.Err()
}

func (p *Persister) loadCards(ctx context.Context, tables *domain.Tables) error {
	rows, err := p.db.SqlDB.QueryContext(ctx, `
		SELECT id, deck_id, front, back, difficulty, last_reviewed, review_count, correct_count, next_review, created_at, updated_at
		FROM cards
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Card
		var difficulty string
		if err := rows.Scan(&c.ID, &c.DeckID, &c.Front, &c.Back, &difficulty, &c.LastReviewed, &c.ReviewCount, &c.CorrectCount, &c.NextReview, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return err
		}
		c.Difficulty = domain.Difficulty(difficulty)
		tables.Cards[c.ID] = c
	}
	return rows.Err()
}

func (p *Persister) loadSessions(ctx context.Context, tables *domain.Tables) error {
	rows, err := p.db.SqlDB.QueryContext(ctx, `
		SELECT id, deck_id, started_at, completed_at, total_cards, correct_answers, accuracy, duration, created_at
		FROM learning_sessions
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.LearningSession
		if err := rows.Scan(&s.ID, &s.DeckID, &s.StartedAt, &s.CompletedAt, &s.TotalCards, &s.CorrectAnswers, &s.Accuracy, &s.Duration, &s.CreatedAt); err != nil {
			return err
		}
		tables.Sessions[s.ID] = s
	}
	return rows.Err()
}

func (p *Persister) loadProgress(ctx context.Context, tables *domain.Tables) error {
	rows, err := p.db.SqlDB.QueryContext(ctx, `
		SELECT id, card_id, deck_id, session_id, result, response_time, created_at
		FROM card_progress
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var pr domain.CardProgress
		var result string
		var responseTime sql.NullInt64
		if err := rows.Scan(&pr.ID, &pr.CardID, &pr.DeckID, &pr.SessionID, &result, &responseTime, &pr.CreatedAt); err != nil {
			return err
		}
		pr.Result = domain.Result(result)
		if responseTime.Valid {
			rt := int(responseTime.Int64)
			pr.ResponseTime = &rt
		}
		tables.Progress[pr.ID] = pr
	}
	return rows.Err()
}
