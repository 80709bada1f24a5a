package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"membuddy/internal/application/projections"
	"membuddy/internal/domain/member"
	"membuddy/internal/domain/nlu"
)

// RenewalOptionsInput carries input for the renewal-options orchestrator.
type RenewalOptionsInput struct {
	Email string
}

// RenewalOptionsDeps holds dependencies for GetRenewalOptions.
type RenewalOptionsDeps struct {
	MemberStore projections.ProfileMemberStore
}

// ExecuteGetRenewalOptions renders the renewal offer for a member.
// PRE: none
// POST: Returns a single user-facing reply naming the package when one applies
func ExecuteGetRenewalOptions(ctx context.Context, input RenewalOptionsInput, deps RenewalOptionsDeps) (string, error) {
	email := nlu.NormalizeEmail(input.Email)
	view, err := projections.QueryRenewalOptions(ctx,
		projections.GetRenewalOptionsQuery{Email: email},
		projections.GetRenewalOptionsDeps{MemberStore: deps.MemberStore})
	if errors.Is(err, member.ErrNotFound) {
		return fmt.Sprintf("No member found with email: %s", email), nil
	}
	if err != nil {
		return "", err
	}

	var b strings.Builder
	expires := "N/A"
	if !view.ExpiresAt.IsZero() {
		expires = view.ExpiresAt.Format("2006-01-02")
	}
	fmt.Fprintf(&b, "Membership expires on %s. %s", expires, view.Note)

	if pkg := view.Package; pkg != nil {
		fmt.Fprintf(&b, "\n\n%s: $%.0f (early bird $%.0f before %s)\n%s",
			pkg.Name, pkg.Price, pkg.EarlyBirdPrice, pkg.EarlyBirdDeadline, pkg.Description)
	}

	slog.Info("assistant_event", "event", "renewal_options_viewed", "email", email)
	return b.String(), nil
}
