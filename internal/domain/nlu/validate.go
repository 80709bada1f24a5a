package nlu

import (
	"fmt"
	"strconv"
	"strings"
)

// Graduation years outside this range are treated as typos rather than
// plausible values.
const (
	MinGraduationYear = 1900
	MaxGraduationYear = 2030
)

// MinAddressLength is the minimum trimmed length for an address value.
const MinAddressLength = 5

// Verdict is the structured outcome of validating one field against user
// text. Message and Suggestion are ready to display; the validator is the
// single source of rejection wording.
type Verdict struct {
	Valid      bool
	Message    string
	Suggestion string
}

func accept() Verdict {
	return Verdict{Valid: true}
}

func reject(message, suggestion string) Verdict {
	return Verdict{Valid: false, Message: message, Suggestion: suggestion}
}

// Validate checks whether user text contains an acceptable value for the
// given field.
// POST: Verdict.Message is non-empty whenever Valid is false
func Validate(text string, field Field) Verdict {
	switch field {
	case FieldEmail:
		if _, ok := ExtractEmail(text); !ok {
			return reject(
				"I couldn't find a valid email address. Please provide your email in the format: user@example.com",
				"Please enter a valid email address",
			)
		}
	case FieldGraduationYear:
		year, ok := ExtractValue(text, FieldGraduationYear)
		if !ok {
			return reject(
				"I couldn't find a valid graduation year. Please provide a 4-digit year (e.g., 2023)",
				"Please enter a 4-digit year like 2023",
			)
		}
		yearInt, err := strconv.Atoi(year)
		if err != nil {
			return reject(
				"Please provide a valid 4-digit year",
				"Please enter a 4-digit year like 2023",
			)
		}
		if yearInt < MinGraduationYear || yearInt > MaxGraduationYear {
			return reject(
				fmt.Sprintf("Graduation year %s seems unusual. Please provide a year between 1900 and 2030.", year),
				"Please enter a year between 1900 and 2030",
			)
		}
	case FieldAddress:
		address, ok := ExtractValue(text, FieldAddress)
		if !ok || len(strings.TrimSpace(address)) < MinAddressLength {
			return reject(
				"I couldn't find a complete address. Please provide your full address including street number and city.",
				"Please provide your complete address",
			)
		}
	}
	return accept()
}
