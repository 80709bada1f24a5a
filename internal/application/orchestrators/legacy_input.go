package orchestrators

import "strings"

// ParseLegacyActionInput splits the legacy delimited action form
// "email|user_input" into its parts. Inputs without a delimiter are
// treated as a bare email. This is the only place the delimited form is
// understood; everything past this boundary uses structured inputs.
func ParseLegacyActionInput(raw string) (email, userInput string) {
	before, after, found := strings.Cut(raw, "|")
	if !found {
		return strings.TrimSpace(raw), ""
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}
