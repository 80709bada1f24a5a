package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables. Dates are stored as RFC 3339 TEXT; member.email is
	// already normalized (trimmed, lowercase) before it reaches the store.
	schema := `
	CREATE TABLE IF NOT EXISTS member (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		graduation_year INTEGER,
		membership_type TEXT NOT NULL DEFAULT '',
		join_date TEXT,
		expiration_date TEXT,
		engagement_score INTEGER NOT NULL DEFAULT 0,
		auto_renew INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS payment (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		method TEXT NOT NULL,
		amount REAL NOT NULL,
		paid_at TEXT NOT NULL,
		status TEXT NOT NULL,
		FOREIGN KEY (member_id) REFERENCES member(id)
	);

	CREATE TABLE IF NOT EXISTS feedback (
		id TEXT PRIMARY KEY,
		member_id TEXT,
		email TEXT NOT NULL DEFAULT '',
		rating INTEGER NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		FOREIGN KEY (member_id) REFERENCES member(id)
	);

	CREATE TABLE IF NOT EXISTS faq (
		id TEXT PRIMARY KEY,
		topic TEXT NOT NULL DEFAULT '',
		question TEXT NOT NULL,
		answer TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_payment_member ON payment(member_id);
	CREATE INDEX IF NOT EXISTS idx_feedback_member ON feedback(member_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
