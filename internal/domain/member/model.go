package member

import (
	"errors"
	"strings"
	"time"
)

// Membership types with defined renewal packages.
const (
	TypeStudent           = "Student"
	TypePharmacistRegular = "Pharmacist Regular"
)

// TransitionGraduationYear is the earliest graduation year that makes a
// Student member eligible for the Pharmacist Transition Package.
const TransitionGraduationYear = 2023

// Domain errors
var (
	ErrNotFound = errors.New("member not found")
)

// Member holds one membership record, keyed by normalized email.
type Member struct {
	ID              string
	Email           string
	FullName        string
	Address         string
	GraduationYear  int // zero when unknown
	MembershipType  string
	JoinDate        time.Time
	ExpirationDate  time.Time
	EngagementScore int
	AutoRenew       bool
}

// Validate checks if the Member has valid data.
// PRE: Member struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Email must contain '@', FullName must not be empty
func (m *Member) Validate() error {
	if strings.TrimSpace(m.FullName) == "" {
		return errors.New("member name cannot be empty")
	}
	if !strings.Contains(m.Email, "@") {
		return errors.New("member email must be valid")
	}
	if m.Email != strings.ToLower(strings.TrimSpace(m.Email)) {
		return errors.New("member email must be normalized (trimmed, lowercase)")
	}
	if m.EngagementScore < 0 || m.EngagementScore > 100 {
		return errors.New("engagement score must be between 0 and 100")
	}
	return nil
}

// EligibleForTransition reports whether the member qualifies for the
// Pharmacist Transition Package: a Student whose graduation year is at or
// past the transition threshold.
// INVARIANT: Pure derived rule, never a stored flag
func (m *Member) EligibleForTransition() bool {
	return m.MembershipType == TypeStudent && m.GraduationYear >= TransitionGraduationYear
}

// ExtendExpiration returns the member's new expiration date after one
// renewal: one year from the later of the current expiration and now, so
// a lapsed membership never compounds from a date in the past.
func (m *Member) ExtendExpiration(now time.Time) time.Time {
	from := m.ExpirationDate
	if now.After(from) {
		from = now
	}
	return from.AddDate(1, 0, 0)
}
