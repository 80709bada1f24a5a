package faq

import (
	"context"

	domain "membuddy/internal/domain/faq"
)

// Store persists FAQ entries.
type Store interface {
	Save(ctx context.Context, value domain.Entry) error
	List(ctx context.Context) ([]domain.Entry, error)
}
