package orchestrators

import (
	"context"
	"testing"
)

func TestExecuteSeedDemo_SeedsOnce(t *testing.T) {
	members := newMockMemberStore()
	payments := newMockPaymentStore()
	faqs := &mockFAQStore{}
	deps := SeedDemoDeps{
		MemberStore:  members,
		PaymentStore: payments,
		FAQStore:     faqs,
		Now:          testNow,
	}

	if err := ExecuteSeedDemo(context.Background(), deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members.members) != 3 {
		t.Errorf("seeded %d members, want 3", len(members.members))
	}
	if len(payments.appended) != 2 {
		t.Errorf("seeded %d payments, want 2", len(payments.appended))
	}
	if len(faqs.entries) == 0 {
		t.Error("expected FAQ entries")
	}

	// Second run is a no-op for members and payments, an upsert for FAQs.
	faqCount := len(faqs.entries)
	if err := ExecuteSeedDemo(context.Background(), deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members.members) != 3 || len(payments.appended) != 2 || len(faqs.entries) != faqCount {
		t.Error("re-seeding must not duplicate data")
	}
}

func TestExecuteSeedDemo_DemoStudentIsTransitionEligible(t *testing.T) {
	members := newMockMemberStore()
	deps := SeedDemoDeps{
		MemberStore:  members,
		PaymentStore: newMockPaymentStore(),
		FAQStore:     &mockFAQStore{},
		Now:          testNow,
	}
	if err := ExecuteSeedDemo(context.Background(), deps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := members.GetByEmail(context.Background(), "john.doe@example.com")
	if err != nil {
		t.Fatalf("demo member missing: %v", err)
	}
	if !m.EligibleForTransition() {
		t.Error("john.doe should be transition eligible")
	}
}
