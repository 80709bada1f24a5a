package payment

import (
	"context"
	"time"

	"membuddy/internal/adapters/storage"
	domain "membuddy/internal/domain/payment"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new payment store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Append inserts one payment record.
// PRE: value has been validated
// POST: Record is persisted exactly once; existing records are never touched
func (s *SQLiteStore) Append(ctx context.Context, value domain.Payment) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO payment (id, member_id, method, amount, paid_at, status) VALUES (?, ?, ?, ?, ?, ?)",
		value.ID,
		value.MemberID,
		value.Method,
		value.Amount,
		value.PaidAt.UTC().Format(time.RFC3339),
		value.Status,
	)
	return err
}

// MethodsOnFile returns the distinct payment methods this member has used,
// most recent first.
func (s *SQLiteStore) MethodsOnFile(ctx context.Context, memberID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT method FROM payment WHERE member_id = ? GROUP BY method ORDER BY MAX(paid_at) DESC",
		memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

// ListByMember returns all payments for one member, newest first.
func (s *SQLiteStore) ListByMember(ctx context.Context, memberID string) ([]domain.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, member_id, method, amount, paid_at, status FROM payment WHERE member_id = ? ORDER BY paid_at DESC",
		memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Payment
	for rows.Next() {
		var entity domain.Payment
		var paidAt string
		if err := rows.Scan(&entity.ID, &entity.MemberID, &entity.Method, &entity.Amount, &paidAt, &entity.Status); err != nil {
			return nil, err
		}
		entity.PaidAt = parseDate(paidAt)
		results = append(results, entity)
	}
	return results, rows.Err()
}

func parseDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
