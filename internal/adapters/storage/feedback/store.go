package feedback

import (
	"context"

	domain "membuddy/internal/domain/feedback"
)

// Store persists Feedback records. Feedback is append-only.
type Store interface {
	Append(ctx context.Context, value domain.Feedback) error
	RatingsByMember(ctx context.Context, memberID string) ([]int, error)
}
