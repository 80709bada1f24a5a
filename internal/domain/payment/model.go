package payment

import (
	"errors"
	"fmt"
	"time"
)

// StatusCompleted is the only status this core ever writes. Payments are
// append-only records, never mutated in place.
const StatusCompleted = "Completed"

// DefaultMethods are offered to every member in addition to whatever is
// already on file for them.
var DefaultMethods = []string{"Card", "ACH", "PayPal"}

// Domain errors
var (
	ErrInvalidAmount = errors.New("payment amount must be positive")
)

// Payment holds one completed payment belonging to exactly one member.
type Payment struct {
	ID       string
	MemberID string
	Method   string
	Amount   float64
	PaidAt   time.Time
	Status   string
}

// Validate checks if the Payment has valid data.
// POST: Returns error if validation fails, nil otherwise
func (p *Payment) Validate() error {
	if p.MemberID == "" {
		return errors.New("payment must belong to a member")
	}
	if p.Method == "" {
		return errors.New("payment method cannot be empty")
	}
	if p.Amount <= 0 {
		return ErrInvalidAmount
	}
	if p.Status != StatusCompleted {
		return errors.New("payment status must be Completed")
	}
	return nil
}

// TransactionID derives the user-visible transaction identifier from the
// member identifier and the payment timestamp.
func TransactionID(memberID string, at time.Time) string {
	return fmt.Sprintf("TXN_%s_%s", memberID, at.Format("20060102150405"))
}

// MergeMethods returns the methods on file followed by any default
// methods not already present, preserving order and dropping duplicates.
func MergeMethods(onFile []string) []string {
	seen := make(map[string]bool, len(onFile))
	merged := make([]string, 0, len(onFile)+len(DefaultMethods))
	for _, m := range onFile {
		if m != "" && !seen[m] {
			seen[m] = true
			merged = append(merged, m)
		}
	}
	for _, m := range DefaultMethods {
		if !seen[m] {
			seen[m] = true
			merged = append(merged, m)
		}
	}
	return merged
}
