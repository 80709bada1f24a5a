package faq

import (
	"context"

	"membuddy/internal/adapters/storage"
	domain "membuddy/internal/domain/faq"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new FAQ store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save upserts one FAQ entry by id.
func (s *SQLiteStore) Save(ctx context.Context, value domain.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO faq (id, topic, question, answer) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET topic=excluded.topic, question=excluded.question, answer=excluded.answer`,
		value.ID, value.Topic, value.Question, value.Answer)
	return err
}

// List returns every FAQ entry. The knowledge base is small; matching
// happens in the application layer.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, topic, question, answer FROM faq ORDER BY topic, question")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Entry
	for rows.Next() {
		var entity domain.Entry
		if err := rows.Scan(&entity.ID, &entity.Topic, &entity.Question, &entity.Answer); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
