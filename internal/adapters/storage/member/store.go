package member

import (
	"context"
	"errors"
	"time"

	domain "membuddy/internal/domain/member"
	"membuddy/internal/domain/nlu"
)

// Store persists Member state.
type Store interface {
	GetByEmail(ctx context.Context, email string) (domain.Member, error)
	Save(ctx context.Context, value domain.Member) error
	UpdateField(ctx context.Context, id string, field nlu.Field, value string) error
	UpdateExpiration(ctx context.Context, id string, expiration time.Time) error
	UpdateEngagement(ctx context.Context, id string, score int) error
	List(ctx context.Context) ([]domain.Member, error)
}

// ErrUnknownField is returned when an update names a field with no mapped
// column. Schema problems are explicit results, never panics.
var ErrUnknownField = errors.New("no column mapped for field")
