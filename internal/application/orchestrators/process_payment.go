package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"membuddy/internal/adapters/email"
	"membuddy/internal/domain/member"
	"membuddy/internal/domain/nlu"
	"membuddy/internal/domain/payment"
)

// DefaultPaymentAmount is used when neither the text nor the renewal
// package yields an amount.
const DefaultPaymentAmount = 100.0

// ProcessPaymentMemberStore defines the member store interface needed by ProcessPayment.
type ProcessPaymentMemberStore interface {
	GetByEmail(ctx context.Context, email string) (member.Member, error)
	UpdateExpiration(ctx context.Context, id string, expiration time.Time) error
}

// ProcessPaymentPaymentStore defines the payment store interface needed by ProcessPayment.
type ProcessPaymentPaymentStore interface {
	Append(ctx context.Context, value payment.Payment) error
	MethodsOnFile(ctx context.Context, memberID string) ([]string, error)
}

// ProcessPaymentInput carries input for the payment orchestrator.
type ProcessPaymentInput struct {
	Email string
	Text  string // natural language, e.g. "pay $90 with my card"
}

// ProcessPaymentDeps holds dependencies for ProcessPayment.
type ProcessPaymentDeps struct {
	MemberStore  ProcessPaymentMemberStore
	PaymentStore ProcessPaymentPaymentStore
	EmailSender  email.Sender
	Now          func() time.Time
	GenerateID   func() string
}

// ExecuteProcessPayment resolves and records a renewal payment.
// Two-phase: the member's methods on file and renewal price are loaded
// first, then the text is resolved against them.
// PRE: Deps.Now and Deps.GenerateID are non-nil
// POST: On success one payment row is appended, the expiration moves one
// year from max(current expiration, now), and the reply carries the
// transaction ID; the receipt email is a single best-effort attempt
func ExecuteProcessPayment(ctx context.Context, input ProcessPaymentInput, deps ProcessPaymentDeps) (string, error) {
	email0, clarify := nlu.CheckEmail(input.Email)
	if clarify != nil {
		return clarify.Message, nil
	}
	m, err := deps.MemberStore.GetByEmail(ctx, email0)
	if errors.Is(err, member.ErrNotFound) {
		return fmt.Sprintf("No member found with email: %s", email0), nil
	}
	if err != nil {
		return "", err
	}

	onFile, err := deps.PaymentStore.MethodsOnFile(ctx, m.ID)
	if err != nil {
		return "", err
	}
	available := payment.MergeMethods(onFile)

	fallback := DefaultPaymentAmount
	if pkg, ok := m.RenewalPackage(); ok {
		fallback = pkg.EffectivePrice()
	}

	cmd, clarify := nlu.ResolvePayment(input.Email, input.Text, available, fallback)
	if clarify != nil {
		return clarify.Message, nil
	}

	now := deps.Now()
	p := payment.Payment{
		ID:       deps.GenerateID(),
		MemberID: m.ID,
		Method:   cmd.Method,
		Amount:   cmd.Amount,
		PaidAt:   now,
		Status:   payment.StatusCompleted,
	}
	if err := p.Validate(); err != nil {
		return "", err
	}
	if err := deps.PaymentStore.Append(ctx, p); err != nil {
		return "", err
	}

	newExpiration := m.ExtendExpiration(now)
	if err := deps.MemberStore.UpdateExpiration(ctx, m.ID, newExpiration); err != nil {
		return "", err
	}

	txn := payment.TransactionID(m.ID, now)
	slog.Info("assistant_event", "event", "payment_processed",
		"member_id", m.ID, "method", cmd.Method, "amount", cmd.Amount, "transaction_id", txn)

	if deps.EmailSender != nil && m.Email != "" {
		req := email.BuildReceipt(m.Email, email.PaymentReceipt{
			MemberName:    m.FullName,
			TransactionID: txn,
			PackageName:   receiptPackageName(&m),
			Method:        cmd.Method,
			Amount:        cmd.Amount,
			PaidAt:        now,
			ExpiresAt:     newExpiration,
		})
		if _, err := deps.EmailSender.Send(ctx, req); err != nil {
			slog.Error("receipt_email_failed", "error", err, "member_id", m.ID, "transaction_id", txn)
		}
	}

	return fmt.Sprintf("Payment processed successfully using %s!\n\n"+
		"Amount: $%.2f\nMethod: %s\nStatus: %s\nDate: %s\nTransaction ID: %s\n\n"+
		"Your membership is now active until %s.",
		cmd.Method, cmd.Amount, cmd.Method, payment.StatusCompleted,
		now.Format("2006-01-02 15:04:05"), txn,
		newExpiration.Format("2006-01-02")), nil
}

func receiptPackageName(m *member.Member) string {
	if pkg, ok := m.RenewalPackage(); ok {
		return pkg.Name
	}
	return "Membership Renewal"
}
