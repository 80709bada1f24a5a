package member_test

import (
	"testing"
	"time"

	"membuddy/internal/domain/member"
)

// TestMemberValidation tests validation of Member.
func TestMemberValidation(t *testing.T) {
	tests := []struct {
		name    string
		member  member.Member
		wantErr bool
	}{
		{
			name: "valid member",
			member: member.Member{
				ID:             "123",
				FullName:       "Jane Doe",
				Email:          "jane@example.com",
				MembershipType: member.TypeStudent,
			},
			wantErr: false,
		},
		{
			name: "empty name",
			member: member.Member{
				ID:    "123",
				Email: "jane@example.com",
			},
			wantErr: true,
		},
		{
			name: "invalid email",
			member: member.Member{
				ID:       "123",
				FullName: "Jane Doe",
				Email:    "invalid-email",
			},
			wantErr: true,
		},
		{
			name: "unnormalized email",
			member: member.Member{
				ID:       "123",
				FullName: "Jane Doe",
				Email:    " Jane@Example.com ",
			},
			wantErr: true,
		},
		{
			name: "engagement score out of range",
			member: member.Member{
				ID:              "123",
				FullName:        "Jane Doe",
				Email:           "jane@example.com",
				EngagementScore: 101,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.member.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestEligibleForTransition tests the derived transition rule.
func TestEligibleForTransition(t *testing.T) {
	tests := []struct {
		name           string
		membershipType string
		gradYear       int
		want           bool
	}{
		{name: "student graduating 2024", membershipType: member.TypeStudent, gradYear: 2024, want: true},
		{name: "student at threshold", membershipType: member.TypeStudent, gradYear: 2023, want: true},
		{name: "student graduating 2022", membershipType: member.TypeStudent, gradYear: 2022, want: false},
		{name: "regular member", membershipType: member.TypePharmacistRegular, gradYear: 2024, want: false},
		{name: "unknown graduation year", membershipType: member.TypeStudent, gradYear: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := member.Member{MembershipType: tt.membershipType, GraduationYear: tt.gradYear}
			if got := m.EligibleForTransition(); got != tt.want {
				t.Errorf("EligibleForTransition() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestExtendExpiration tests that renewal extends from the later of the
// current expiration and now.
func TestExtendExpiration(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// Active membership: extend from the current expiration.
	m := member.Member{ExpirationDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)}
	if got := m.ExtendExpiration(now); !got.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("active membership: got %v", got)
	}

	// Lapsed membership: extend from now, not from the stale date.
	m = member.Member{ExpirationDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)}
	if got := m.ExtendExpiration(now); !got.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("lapsed membership: got %v", got)
	}

	// No expiration on record: one year from now.
	m = member.Member{}
	if got := m.ExtendExpiration(now); !got.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("no expiration: got %v", got)
	}
}

// TestRenewalPackage tests package derivation per membership type.
func TestRenewalPackage(t *testing.T) {
	tests := []struct {
		name           string
		membershipType string
		gradYear       int
		wantName       string
		wantPrice      float64
		wantEarlyBird  float64
		wantOK         bool
	}{
		{name: "transition package", membershipType: member.TypeStudent, gradYear: 2024,
			wantName: "Pharmacist Transition Package", wantPrice: 100, wantEarlyBird: 90, wantOK: true},
		{name: "regular renewal", membershipType: member.TypePharmacistRegular,
			wantName: "Regular Renewal", wantPrice: 200, wantEarlyBird: 180, wantOK: true},
		{name: "student renewal", membershipType: member.TypeStudent, gradYear: 2026,
			wantName: "Pharmacist Transition Package", wantPrice: 100, wantEarlyBird: 90, wantOK: true},
		{name: "student renewal pre-threshold", membershipType: member.TypeStudent, gradYear: 2020,
			wantName: "Student Renewal", wantPrice: 50, wantEarlyBird: 45, wantOK: true},
		{name: "unrecognized type", membershipType: "Honorary", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := member.Member{MembershipType: tt.membershipType, GraduationYear: tt.gradYear}
			pkg, ok := m.RenewalPackage()
			if ok != tt.wantOK {
				t.Fatalf("RenewalPackage() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if pkg.Name != tt.wantName || pkg.Price != tt.wantPrice || pkg.EarlyBirdPrice != tt.wantEarlyBird {
				t.Errorf("RenewalPackage() = %+v", pkg)
			}
			if pkg.EffectivePrice() != tt.wantEarlyBird {
				t.Errorf("EffectivePrice() = %v, want %v", pkg.EffectivePrice(), tt.wantEarlyBird)
			}
		})
	}
}
