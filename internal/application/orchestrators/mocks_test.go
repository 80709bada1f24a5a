package orchestrators

import (
	"context"
	"time"

	"membuddy/internal/domain/faq"
	domainFeedback "membuddy/internal/domain/feedback"
	"membuddy/internal/domain/member"
	"membuddy/internal/domain/nlu"
	"membuddy/internal/domain/payment"
)

var testTime = time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

func testNow() time.Time { return testTime }

func testID() string { return "test-id-001" }

// mockMemberStore implements the member store interfaces used across the
// orchestrators, keyed by normalized email like the real store.
type mockMemberStore struct {
	members map[string]member.Member
	getErr  error
	lookups []string // emails passed to GetByEmail, in order
}

func newMockMemberStore(members ...member.Member) *mockMemberStore {
	s := &mockMemberStore{members: make(map[string]member.Member)}
	for _, m := range members {
		s.members[m.Email] = m
	}
	return s
}

func (s *mockMemberStore) GetByEmail(_ context.Context, email string) (member.Member, error) {
	s.lookups = append(s.lookups, email)
	if s.getErr != nil {
		return member.Member{}, s.getErr
	}
	m, ok := s.members[nlu.NormalizeEmail(email)]
	if !ok {
		return member.Member{}, member.ErrNotFound
	}
	return m, nil
}

func (s *mockMemberStore) Save(_ context.Context, value member.Member) error {
	s.members[value.Email] = value
	return nil
}

func (s *mockMemberStore) List(_ context.Context) ([]member.Member, error) {
	var out []member.Member
	for _, m := range s.members {
		out = append(out, m)
	}
	return out, nil
}

func (s *mockMemberStore) UpdateField(_ context.Context, id string, field nlu.Field, value string) error {
	for email, m := range s.members {
		if m.ID != id {
			continue
		}
		switch field {
		case nlu.FieldEmail:
			delete(s.members, email)
			m.Email = nlu.NormalizeEmail(value)
			s.members[m.Email] = m
		case nlu.FieldAddress:
			m.Address = value
			s.members[email] = m
		case nlu.FieldGraduationYear:
			var year int
			for _, r := range value {
				year = year*10 + int(r-'0')
			}
			m.GraduationYear = year
			s.members[email] = m
		}
		return nil
	}
	return member.ErrNotFound
}

func (s *mockMemberStore) UpdateExpiration(_ context.Context, id string, expiration time.Time) error {
	for email, m := range s.members {
		if m.ID == id {
			m.ExpirationDate = expiration
			s.members[email] = m
			return nil
		}
	}
	return member.ErrNotFound
}

func (s *mockMemberStore) UpdateEngagement(_ context.Context, id string, score int) error {
	for email, m := range s.members {
		if m.ID == id {
			m.EngagementScore = score
			s.members[email] = m
			return nil
		}
	}
	return member.ErrNotFound
}

func (s *mockMemberStore) byID(id string) (member.Member, bool) {
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return member.Member{}, false
}

// mockPaymentStore implements the payment store interfaces.
type mockPaymentStore struct {
	onFile   map[string][]string
	appended []payment.Payment
}

func newMockPaymentStore() *mockPaymentStore {
	return &mockPaymentStore{onFile: make(map[string][]string)}
}

func (s *mockPaymentStore) MethodsOnFile(_ context.Context, memberID string) ([]string, error) {
	return s.onFile[memberID], nil
}

func (s *mockPaymentStore) Append(_ context.Context, value payment.Payment) error {
	s.appended = append(s.appended, value)
	return nil
}

// mockFeedbackStore implements the feedback store interfaces.
type mockFeedbackStore struct {
	records []domainFeedback.Feedback
}

func (s *mockFeedbackStore) Append(_ context.Context, value domainFeedback.Feedback) error {
	s.records = append(s.records, value)
	return nil
}

func (s *mockFeedbackStore) RatingsByMember(_ context.Context, memberID string) ([]int, error) {
	var ratings []int
	for _, r := range s.records {
		if r.MemberID == memberID {
			ratings = append(ratings, r.Rating)
		}
	}
	return ratings, nil
}

// mockFAQStore implements the FAQ store interfaces.
type mockFAQStore struct {
	entries []faq.Entry
}

func (s *mockFAQStore) List(_ context.Context) ([]faq.Entry, error) {
	return s.entries, nil
}

func (s *mockFAQStore) Save(_ context.Context, value faq.Entry) error {
	for i, e := range s.entries {
		if e.ID == value.ID {
			s.entries[i] = value
			return nil
		}
	}
	s.entries = append(s.entries, value)
	return nil
}

// demoStudent is a transition-eligible Student member used across tests.
func demoStudent() member.Member {
	return member.Member{
		ID:             "M001",
		Email:          "john.doe@example.com",
		FullName:       "John Doe",
		Address:        "123 Main St, Springfield",
		GraduationYear: 2023,
		MembershipType: member.TypeStudent,
		JoinDate:       time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
		ExpirationDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}
