package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"membuddy/internal/application/projections"
	"membuddy/internal/domain/member"
	"membuddy/internal/domain/nlu"
)

// PaymentMethodsInput carries input for the payment-methods orchestrator.
type PaymentMethodsInput struct {
	Email string
}

// PaymentMethodsDeps holds dependencies for GetPaymentMethods.
type PaymentMethodsDeps struct {
	MemberStore  projections.ProfileMemberStore
	PaymentStore projections.MethodsPaymentStore
}

// ExecuteGetPaymentMethods lists the payment methods available to a
// member: methods on file first, then the defaults.
func ExecuteGetPaymentMethods(ctx context.Context, input PaymentMethodsInput, deps PaymentMethodsDeps) (string, error) {
	email := nlu.NormalizeEmail(input.Email)
	methods, err := projections.QueryPaymentMethods(ctx,
		projections.GetPaymentMethodsQuery{Email: email},
		projections.GetPaymentMethodsDeps{MemberStore: deps.MemberStore, PaymentStore: deps.PaymentStore})
	if errors.Is(err, member.ErrNotFound) {
		return fmt.Sprintf("No member found with email: %s", email), nil
	}
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Your available payment methods: %s.", strings.Join(methods, ", ")), nil
}
