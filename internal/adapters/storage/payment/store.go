package payment

import (
	"context"

	domain "membuddy/internal/domain/payment"
)

// Store persists Payment records. Payments are append-only: there is no
// update or delete.
type Store interface {
	Append(ctx context.Context, value domain.Payment) error
	MethodsOnFile(ctx context.Context, memberID string) ([]string, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.Payment, error)
}
