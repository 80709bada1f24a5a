package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"membuddy/internal/domain/faq"
	"membuddy/internal/domain/member"
	"membuddy/internal/domain/payment"

	"github.com/google/uuid"
)

// MemberStoreForSeed defines the member store interface needed by SeedDemo.
type MemberStoreForSeed interface {
	Save(ctx context.Context, value member.Member) error
	List(ctx context.Context) ([]member.Member, error)
}

// PaymentStoreForSeed defines the payment store interface needed by SeedDemo.
type PaymentStoreForSeed interface {
	Append(ctx context.Context, value payment.Payment) error
}

// FAQStoreForSeed defines the FAQ store interface needed by SeedDemo.
type FAQStoreForSeed interface {
	Save(ctx context.Context, value faq.Entry) error
}

// SeedDemoDeps holds dependencies for SeedDemo.
type SeedDemoDeps struct {
	MemberStore  MemberStoreForSeed
	PaymentStore PaymentStoreForSeed
	FAQStore     FAQStoreForSeed
	Now          func() time.Time
}

// ExecuteSeedDemo creates demo members, payments on file, and FAQ entries
// if no members exist yet. FAQ entries have fixed IDs so re-seeding is an
// upsert, not a duplicate.
func ExecuteSeedDemo(ctx context.Context, deps SeedDemoDeps) error {
	for _, entry := range demoFAQs() {
		if err := deps.FAQStore.Save(ctx, entry); err != nil {
			return err
		}
	}

	existing, err := deps.MemberStore.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil // Already seeded
	}

	now := deps.Now()
	members := []member.Member{
		{
			ID:             "M001",
			Email:          "john.doe@example.com",
			FullName:       "John Doe",
			Address:        "123 Main St, Springfield",
			GraduationYear: 2023,
			MembershipType: member.TypeStudent,
			JoinDate:       time.Date(2021, 9, 1, 0, 0, 0, 0, time.UTC),
			ExpirationDate: now.AddDate(0, 2, 0),
		},
		{
			ID:             "M002",
			Email:          "jane.smith@example.com",
			FullName:       "Jane Smith",
			Address:        "456 Oak Ave, Centerville",
			GraduationYear: 2018,
			MembershipType: member.TypePharmacistRegular,
			JoinDate:       time.Date(2018, 7, 15, 0, 0, 0, 0, time.UTC),
			ExpirationDate: now.AddDate(0, 5, 0),
			AutoRenew:      true,
		},
		{
			ID:             "M003",
			Email:          "sam.lee@example.com",
			FullName:       "Sam Lee",
			Address:        "789 Pine Rd, Lakeside",
			GraduationYear: 2026,
			MembershipType: member.TypeStudent,
			JoinDate:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			ExpirationDate: now.AddDate(0, 8, 0),
		},
	}
	for _, m := range members {
		if err := deps.MemberStore.Save(ctx, m); err != nil {
			return err
		}
	}

	payments := []payment.Payment{
		{ID: uuid.New().String(), MemberID: "M001", Method: "Card", Amount: 50, PaidAt: now.AddDate(-1, 0, 0), Status: payment.StatusCompleted},
		{ID: uuid.New().String(), MemberID: "M002", Method: "ACH", Amount: 200, PaidAt: now.AddDate(-1, 1, 0), Status: payment.StatusCompleted},
	}
	for _, p := range payments {
		if err := deps.PaymentStore.Append(ctx, p); err != nil {
			return err
		}
	}

	slog.Info("assistant_event", "event", "demo_seeded", "members", len(members), "payments", len(payments))
	return nil
}

func demoFAQs() []faq.Entry {
	return []faq.Entry{
		{
			ID:       "faq-renewal",
			Topic:    "renewal",
			Question: "How do I renew my membership?",
			Answer: "You can renew right here in the chat. Tell me your email and say something like " +
				"\"renew my membership\" and I'll show your renewal package, including any **early bird discount** " +
				"you qualify for.",
		},
		{
			ID:       "faq-payment-methods",
			Topic:    "payment",
			Question: "What payment methods are accepted?",
			Answer: "We accept the following methods:\n\n- **Card**\n- **ACH**\n- **PayPal**\n\n" +
				"Any method you've paid with before stays on file and is offered first.",
		},
		{
			ID:       "faq-transition",
			Topic:    "transition package graduation",
			Question: "What is the Pharmacist Transition Package?",
			Answer: "The **Pharmacist Transition Package** ($100, early bird $90 before June 15) is for Student " +
				"members who graduated in 2023 or later. It bridges your student membership into a full " +
				"professional membership for your first year of practice.",
		},
		{
			ID:       "faq-update-profile",
			Topic:    "update profile",
			Question: "How do I update my profile details?",
			Answer: "Tell me what to change in plain language, for example:\n\n" +
				"- \"update my email to new@example.com\"\n" +
				"- \"change my address to 123 Main St, Springfield\"\n" +
				"- \"my graduation year is 2024\"",
		},
		{
			ID:       "faq-engagement",
			Topic:    "engagement score feedback",
			Question: "What is my engagement score?",
			Answer: "Your engagement score summarizes the ratings you've given us, on a 0-100 scale. " +
				"Leave feedback after a chat and watch it move.",
		},
	}
}
