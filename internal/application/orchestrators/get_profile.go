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

// GetProfileInput carries input for the profile orchestrator.
type GetProfileInput struct {
	Email string
}

// GetProfileDeps holds dependencies for GetProfile.
type GetProfileDeps struct {
	MemberStore projections.ProfileMemberStore
}

// ExecuteGetProfile looks up a member by email and renders their profile.
// PRE: none; the email is normalized here
// POST: Returns a single user-facing reply; unknown members are a reply,
// not an error
func ExecuteGetProfile(ctx context.Context, input GetProfileInput, deps GetProfileDeps) (string, error) {
	email := nlu.NormalizeEmail(input.Email)
	if email == "" {
		return "Please provide your email address so I can look up your profile.", nil
	}

	view, err := projections.QueryMemberProfile(ctx,
		projections.GetMemberProfileQuery{Email: email},
		projections.GetMemberProfileDeps{MemberStore: deps.MemberStore})
	if errors.Is(err, member.ErrNotFound) {
		return fmt.Sprintf("No member found with email: %s. Please check the email address and try again.", email), nil
	}
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Member profile found successfully!\n\n")
	for _, f := range view.Fields {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
	}

	slog.Info("assistant_event", "event", "profile_viewed", "member_id", view.Member.ID)
	return strings.TrimRight(b.String(), "\n"), nil
}
