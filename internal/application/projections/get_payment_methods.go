package projections

import (
	"context"

	"membuddy/internal/domain/payment"
)

// MethodsPaymentStore defines the payment store interface for method reads.
type MethodsPaymentStore interface {
	MethodsOnFile(ctx context.Context, memberID string) ([]string, error)
}

// GetPaymentMethodsQuery carries query parameters.
type GetPaymentMethodsQuery struct {
	Email string
}

// GetPaymentMethodsDeps holds dependencies for the methods projection.
type GetPaymentMethodsDeps struct {
	MemberStore  ProfileMemberStore
	PaymentStore MethodsPaymentStore
}

// QueryPaymentMethods returns the member's methods on file merged with the
// default set, on-file methods first.
// PRE: Email is normalized
// POST: Result is non-empty and duplicate-free
func QueryPaymentMethods(ctx context.Context, query GetPaymentMethodsQuery, deps GetPaymentMethodsDeps) ([]string, error) {
	m, err := deps.MemberStore.GetByEmail(ctx, query.Email)
	if err != nil {
		return nil, err
	}

	onFile, err := deps.PaymentStore.MethodsOnFile(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return payment.MergeMethods(onFile), nil
}
