package nlu_test

import (
	"testing"

	"membuddy/internal/domain/nlu"
)

// TestNormalizeFixesTypos tests whole-token typo replacement.
func TestNormalizeFixesTypos(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single typo", in: "I want to renue my membership", want: "I want to renew my membership"},
		{name: "multiple typos", in: "updte my adress please", want: "update my address please"},
		{name: "case insensitive", in: "RENUE now", want: "renew now"},
		{name: "clean text untouched", in: "renew my membership", want: "renew my membership"},
		{name: "typo as substring untouched", in: "readdress the adressing", want: "readdress the adressing"},
		{name: "email passes through", in: "my email is adress@example.com", want: "my email is adress@example.com"},
		{name: "numbers untouched", in: "pay $100.50 now", want: "pay $100.50 now"},
		{name: "membership misspellings", in: "membreshi and membeship", want: "membership and membership"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nlu.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestNormalizeIdempotent tests that normalizing normalized text is a no-op.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"renue my membreshi",
		"updte my proflie and paymnt details",
		"already clean text",
	}
	for _, in := range inputs {
		once := nlu.Normalize(in)
		twice := nlu.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
