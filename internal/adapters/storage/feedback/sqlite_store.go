package feedback

import (
	"context"
	"time"

	"membuddy/internal/adapters/storage"
	domain "membuddy/internal/domain/feedback"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new feedback store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Append inserts one feedback record.
// PRE: value has been validated (rating inside 1-5)
// POST: Record is persisted exactly once
func (s *SQLiteStore) Append(ctx context.Context, value domain.Feedback) error {
	var memberID any
	if value.MemberID != "" {
		memberID = value.MemberID
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO feedback (id, member_id, email, rating, comment, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		value.ID,
		memberID,
		value.Email,
		value.Rating,
		value.Comment,
		value.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// RatingsByMember returns every rating this member has left, oldest first.
func (s *SQLiteStore) RatingsByMember(ctx context.Context, memberID string) ([]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT rating FROM feedback WHERE member_id = ? ORDER BY created_at",
		memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []int
	for rows.Next() {
		var r int
		if err := rows.Scan(&r); err != nil {
			return nil, err
		}
		ratings = append(ratings, r)
	}
	return ratings, rows.Err()
}
