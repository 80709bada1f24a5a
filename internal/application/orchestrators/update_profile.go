package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"membuddy/internal/domain/member"
	"membuddy/internal/domain/nlu"
)

// UpdateProfileMemberStore defines the store interface needed by UpdateProfile.
type UpdateProfileMemberStore interface {
	GetByEmail(ctx context.Context, email string) (member.Member, error)
	UpdateField(ctx context.Context, id string, field nlu.Field, value string) error
}

// UpdateProfileInput carries input for the profile-update orchestrator.
type UpdateProfileInput struct {
	Email string
	Text  string // natural language, e.g. "change my address to 123 Main St"
}

// UpdateProfileDeps holds dependencies for UpdateProfile.
type UpdateProfileDeps struct {
	MemberStore UpdateProfileMemberStore
}

// ExecuteUpdateProfile resolves a free-text profile update, writes the
// field, and confirms from the re-read record.
// PRE: none; all slot checks happen in the resolver
// POST: On success exactly one field changed; the confirmation reflects
// the stored value, and a transition offer is appended when a new
// graduation year makes a Student eligible
func ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput, deps UpdateProfileDeps) (string, error) {
	cmd, clarify := nlu.ResolveUpdateProfile(input.Email, input.Text)
	if clarify != nil {
		return clarify.Message, nil
	}

	m, err := deps.MemberStore.GetByEmail(ctx, cmd.Email)
	if errors.Is(err, member.ErrNotFound) {
		return fmt.Sprintf("No member found with email: %s", cmd.Email), nil
	}
	if err != nil {
		return "", err
	}

	if err := deps.MemberStore.UpdateField(ctx, m.ID, cmd.Field, cmd.Value); err != nil {
		return "", err
	}

	// Confirm from the stored record, not the parsed input. An email
	// change moves the lookup key with it.
	lookupEmail := cmd.Email
	if cmd.Field == nlu.FieldEmail {
		lookupEmail = nlu.NormalizeEmail(cmd.Value)
	}
	updated, err := deps.MemberStore.GetByEmail(ctx, lookupEmail)
	if err != nil {
		return "", err
	}

	reply := fmt.Sprintf("Successfully updated your %s to: %s.", cmd.Field.Label(), cmd.Value)
	if cmd.Field == nlu.FieldGraduationYear && updated.EligibleForTransition() {
		reply += fmt.Sprintf("\n\nSince your graduation year is now %d and you're currently a Student member, "+
			"you're eligible for the Pharmacist Transition Package ($100, early bird $90 before June 15).",
			updated.GraduationYear)
	}

	slog.Info("assistant_event", "event", "profile_updated",
		"member_id", m.ID, "field", string(cmd.Field))
	return reply, nil
}
