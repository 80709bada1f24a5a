package projections

import (
	"context"
	"fmt"

	"membuddy/internal/domain/member"
)

// ProfileMemberStore defines the member store interface for profile reads.
type ProfileMemberStore interface {
	GetByEmail(ctx context.Context, email string) (member.Member, error)
}

// GetMemberProfileQuery carries query parameters.
type GetMemberProfileQuery struct {
	Email string
}

// GetMemberProfileDeps holds dependencies for the profile projection.
type GetMemberProfileDeps struct {
	MemberStore ProfileMemberStore
}

// ProfileField is one labeled line of the profile view, in display order.
type ProfileField struct {
	Label string
	Value string
}

// ProfileView is the member profile shaped for display.
type ProfileView struct {
	Member member.Member
	Fields []ProfileField
}

// QueryMemberProfile loads a member by email and shapes the profile for
// display. Empty values render as "N/A".
// PRE: Email is normalized (trimmed, lowercase)
// POST: Fields are in stable display order
func QueryMemberProfile(ctx context.Context, query GetMemberProfileQuery, deps GetMemberProfileDeps) (ProfileView, error) {
	m, err := deps.MemberStore.GetByEmail(ctx, query.Email)
	if err != nil {
		return ProfileView{}, err
	}

	gradYear := "N/A"
	if m.GraduationYear > 0 {
		gradYear = fmt.Sprintf("%d", m.GraduationYear)
	}

	return ProfileView{
		Member: m,
		Fields: []ProfileField{
			{Label: "Full Name", Value: orNA(m.FullName)},
			{Label: "Email", Value: orNA(m.Email)},
			{Label: "Address", Value: orNA(m.Address)},
			{Label: "Graduation Year", Value: gradYear},
			{Label: "Membership Type", Value: orNA(m.MembershipType)},
			{Label: "Join Date", Value: orNA(formatDate(m.JoinDate))},
			{Label: "Expiration Date", Value: orNA(formatDate(m.ExpirationDate))},
			{Label: "Member ID", Value: orNA(m.ID)},
		},
	}, nil
}
