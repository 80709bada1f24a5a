package nlu

import (
	"fmt"
	"strings"
)

// Slot names one piece of information a command needs. A clarification
// always points at exactly one slot.
type Slot string

// Slots required across the three mutating intents.
const (
	SlotEmail  Slot = "email"
	SlotField  Slot = "field"
	SlotValue  Slot = "value"
	SlotMethod Slot = "method"
	SlotAmount Slot = "amount"
	SlotRating Slot = "rating"
)

// Clarification is returned instead of a command when a required slot is
// missing or invalid. Message is ready to show to the user.
type Clarification struct {
	Slot    Slot
	Message string
}

// UpdateProfileCommand is a fully resolved profile update: every slot has
// passed extraction and validation.
type UpdateProfileCommand struct {
	Email string
	Field Field
	Value string
}

// PaymentCommand is a fully resolved payment.
type PaymentCommand struct {
	Email  string
	Method string
	Amount float64
}

// FeedbackCommand is a fully resolved piece of feedback. Email may be
// empty for anonymous feedback.
type FeedbackCommand struct {
	Email   string
	Rating  int
	Comment string
}

// Rating bounds for feedback.
const (
	MinRating = 1
	MaxRating = 5
)

// NormalizeEmail canonicalizes an email for lookup: trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CheckEmail enforces the email precondition shared by every intent. No
// backend lookup happens with a structurally invalid identifier.
func CheckEmail(email string) (string, *Clarification) {
	normalized := NormalizeEmail(email)
	if _, ok := ExtractEmail(normalized); !ok {
		return "", &Clarification{
			Slot:    SlotEmail,
			Message: "I couldn't find a valid email address. Please provide your email in the format: user@example.com",
		}
	}
	return normalized, nil
}

// ResolveUpdateProfile turns free text plus a known email into a profile
// update command, or a clarification naming the missing slot. Resolution
// is a pure single pass over the text: normalize, classify the field,
// extract the value, validate.
func ResolveUpdateProfile(email, text string) (UpdateProfileCommand, *Clarification) {
	normalized, clarify := CheckEmail(email)
	if clarify != nil {
		return UpdateProfileCommand{}, clarify
	}

	cleaned := Normalize(text)

	field, ok := ExtractField(cleaned)
	if !ok {
		return UpdateProfileCommand{}, &Clarification{
			Slot:    SlotField,
			Message: "I couldn't understand what you want to update. Please specify: email, address, or graduation year.",
		}
	}

	value, ok := ExtractValue(cleaned, field)
	if !ok {
		return UpdateProfileCommand{}, &Clarification{
			Slot:    SlotValue,
			Message: fmt.Sprintf("I couldn't find the new value for your %s. Please provide the new %s.", field.Label(), field.Label()),
		}
	}

	if verdict := Validate(cleaned, field); !verdict.Valid {
		return UpdateProfileCommand{}, &Clarification{Slot: SlotValue, Message: verdict.Message}
	}

	return UpdateProfileCommand{Email: normalized, Field: field, Value: value}, nil
}

// ResolvePayment turns free text into a payment command against the
// member's actually available methods. The caller fetches the available
// methods and the renewal price first (two-phase protocol); amount is the
// only slot with a defined default.
func ResolvePayment(email, text string, available []string, fallbackAmount float64) (PaymentCommand, *Clarification) {
	normalized, clarify := CheckEmail(email)
	if clarify != nil {
		return PaymentCommand{}, clarify
	}

	cleaned := Normalize(text)

	method, ok := ExtractPaymentMethod(cleaned, available)
	if !ok {
		return PaymentCommand{}, &Clarification{
			Slot: SlotMethod,
			Message: fmt.Sprintf("I couldn't identify your payment method. Your available methods are: %s. Please specify which one you'd like to use.",
				strings.Join(available, ", ")),
		}
	}

	amount, ok := ExtractAmount(cleaned)
	if !ok {
		amount = fallbackAmount
	}
	if amount <= 0 {
		return PaymentCommand{}, &Clarification{
			Slot:    SlotAmount,
			Message: "I couldn't determine the payment amount. Please tell me how much you'd like to pay, e.g. $100.",
		}
	}

	return PaymentCommand{Email: normalized, Method: method, Amount: amount}, nil
}

// ResolveFeedback validates a rating and optional comment. Email may be
// empty (anonymous feedback); when present it must be structurally valid.
func ResolveFeedback(email string, rating int, comment string) (FeedbackCommand, *Clarification) {
	normalized := ""
	if strings.TrimSpace(email) != "" {
		var clarify *Clarification
		normalized, clarify = CheckEmail(email)
		if clarify != nil {
			return FeedbackCommand{}, clarify
		}
	}

	if rating < MinRating || rating > MaxRating {
		return FeedbackCommand{}, &Clarification{
			Slot:    SlotRating,
			Message: "Error: Rating must be between 1 and 5.",
		}
	}

	return FeedbackCommand{Email: normalized, Rating: rating, Comment: comment}, nil
}
