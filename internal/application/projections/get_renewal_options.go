package projections

import (
	"context"
	"time"

	"membuddy/internal/domain/member"
)

// GetRenewalOptionsQuery carries query parameters.
type GetRenewalOptionsQuery struct {
	Email string
}

// GetRenewalOptionsDeps holds dependencies for the renewal projection.
type GetRenewalOptionsDeps struct {
	MemberStore ProfileMemberStore
}

// RenewalView describes the renewal offer for one member. Package is nil
// when no standard package applies.
type RenewalView struct {
	ExpiresAt time.Time
	Package   *member.Package
	Note      string
}

// QueryRenewalOptions derives the renewal offer for a member from their
// membership type and graduation year.
// PRE: Email is normalized
// POST: Note always carries a user-facing sentence, even without a package
func QueryRenewalOptions(ctx context.Context, query GetRenewalOptionsQuery, deps GetRenewalOptionsDeps) (RenewalView, error) {
	m, err := deps.MemberStore.GetByEmail(ctx, query.Email)
	if err != nil {
		return RenewalView{}, err
	}

	view := RenewalView{ExpiresAt: m.ExpirationDate}
	pkg, ok := m.RenewalPackage()
	if !ok {
		view.Note = "Please contact support for renewal options specific to your membership type."
		return view, nil
	}

	view.Package = &pkg
	switch pkg.Name {
	case "Pharmacist Transition Package":
		view.Note = "You're eligible for the Pharmacist Transition Package!"
	case "Regular Renewal":
		view.Note = "Regular renewal available with early bird discount!"
	default:
		view.Note = "Student renewal available!"
	}
	return view, nil
}
