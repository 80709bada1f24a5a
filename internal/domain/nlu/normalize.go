package nlu

import "strings"

// typoFixes maps known misspellings of domain vocabulary to the canonical
// spelling. Matching is whole-token and case-insensitive; anything not in
// the table passes through untouched, so email addresses, numbers, and
// punctuation are never rewritten.
var typoFixes = map[string]string{
	"membreshi": "membership",
	"membeship": "membership",
	"renue":     "renew",
	"renuew":    "renew",
	"updte":     "update",
	"updat":     "update",
	"proflie":   "profile",
	"profil":    "profile",
	"paymnt":    "payment",
	"paymet":    "payment",
	"adres":     "address",
	"adress":    "address",
	"emai":      "email",
	"emial":     "email",
	"gradution": "graduation",
	"graduat":   "graduation",
}

// Normalize fixes common misspellings of domain terms before extraction runs.
// PRE: text is arbitrary user input
// POST: Known misspelled tokens are replaced; everything else is unchanged
// INVARIANT: Normalize(Normalize(text)) == Normalize(text)
func Normalize(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		if fixed, ok := typoFixes[strings.ToLower(word)]; ok {
			words[i] = fixed
		}
	}
	return strings.Join(words, " ")
}
