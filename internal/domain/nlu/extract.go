package nlu

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Field identifies a profile field a member can update through conversation.
type Field string

// Updatable profile fields.
const (
	FieldEmail          Field = "email"
	FieldAddress        Field = "address"
	FieldGraduationYear Field = "graduation_year"
)

// Label returns the human-readable name of the field for user-facing text.
func (f Field) Label() string {
	if f == FieldGraduationYear {
		return "graduation year"
	}
	return string(f)
}

// methodSimilarityFloor is the minimum similarity for a fuzzy payment-method
// match. Below this the extractor reports absent rather than guessing.
const methodSimilarityFloor = 0.6

var (
	emailPattern  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	yearPattern   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	amountDollar  = regexp.MustCompile(`\$(\d+(?:\.\d{2})?)`)
	amountDollars = regexp.MustCompile(`(?i)(\d+(?:\.\d{2})?)\s*dollars?`)
	amountBucks   = regexp.MustCompile(`(?i)(\d+(?:\.\d{2})?)\s*bucks?`)
	amountBare    = regexp.MustCompile(`(\d+(?:\.\d{2})?)`)

	leadingFiller = regexp.MustCompile(`^[:\-\s,]+`)
	leadingTo     = regexp.MustCompile(`(?i)^to\s+`)
)

// ExtractEmail returns the first email address found in text.
func ExtractEmail(text string) (string, bool) {
	match := emailPattern.FindString(text)
	return match, match != ""
}

// ExtractAmount returns the first monetary amount found in text.
// Patterns with an explicit currency marker ($, "dollars", "bucks") are
// tried before bare numbers, so a year or quantity is not mistaken for a
// price when a marked amount is also present.
// POST: Returned amount is strictly positive when ok is true
func ExtractAmount(text string) (float64, bool) {
	for _, pattern := range []*regexp.Regexp{amountDollar, amountDollars, amountBucks, amountBare} {
		groups := pattern.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		amount, err := strconv.ParseFloat(groups[1], 64)
		if err != nil || amount <= 0 {
			continue
		}
		return amount, true
	}
	return 0, false
}

// methodKeywords groups spoken variations under each canonical method family.
var methodKeywords = map[string][]string{
	"card":   {"card", "credit", "debit", "visa", "mastercard"},
	"ach":    {"ach", "bank", "direct debit", "transfer"},
	"paypal": {"paypal", "pay pal"},
	"check":  {"check", "cheque"},
}

// ExtractPaymentMethod matches free text against the member's available
// payment methods. Tries exact substring, then keyword families, then a
// fuzzy nearest match with a similarity floor.
// POST: Returned method is always an element of available when ok is true
func ExtractPaymentMethod(text string, available []string) (string, bool) {
	textLower := strings.ToLower(text)

	for _, method := range available {
		if strings.Contains(textLower, strings.ToLower(method)) {
			return method, true
		}
	}

	// Keyword families: a method matches when one of its family variations
	// appears both in the method name and in the user's text.
	for _, method := range available {
		methodLower := strings.ToLower(method)
		for _, variations := range methodKeywords {
			if containsAny(methodLower, variations) && containsAny(textLower, variations) {
				return method, true
			}
		}
	}

	best := ""
	bestScore := 0.0
	for _, method := range available {
		score := similarity(textLower, strings.ToLower(method))
		if score > bestScore {
			best = method
			bestScore = score
		}
	}
	if bestScore >= methodSimilarityFloor {
		return best, true
	}
	return "", false
}

// similarity returns a 0..1 score from the Levenshtein edit distance.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// fieldKeywords classifies which profile field the user is talking about.
// Families are checked in order; the first family with a keyword present
// in the text wins.
var fieldKeywords = []struct {
	field    Field
	keywords []string
}{
	{FieldEmail, []string{"email", "e-mail", "mail"}},
	{FieldAddress, []string{"address", "location", "street", "home"}},
	{FieldGraduationYear, []string{"graduation", "grad year", "year", "graduate", "graduated"}},
}

// ExtractField determines which profile field an utterance refers to.
// When no keyword matches it reports absent so the caller asks "which
// field?" instead of guessing a default.
func ExtractField(text string) (Field, bool) {
	textLower := strings.ToLower(text)
	for _, family := range fieldKeywords {
		if containsAny(textLower, family.keywords) {
			return family.field, true
		}
	}
	return "", false
}

// addressAnchors are scanned in order; the address value is everything
// after the first anchor found. Anchors match whole words only, and the
// bare word "to" is last so more specific anchors win.
var addressAnchors = compileAnchors("address", "location", "street", "home", "live at", "move to", "to")

func compileAnchors(words ...string) []*regexp.Regexp {
	anchors := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		anchors[i] = regexp.MustCompile(`(?i)\b` + w + `\b`)
	}
	return anchors
}

// ExtractValue pulls the new value for a profile field out of free text.
// Email and graduation year use direct pattern extraction. Addresses take
// the remainder of the utterance after an anchor keyword; when no anchor
// is present the whole utterance is accepted as the address only if it is
// plausibly a bare value (at least three words), never a shorter fragment.
func ExtractValue(text string, field Field) (string, bool) {
	switch field {
	case FieldEmail:
		return ExtractEmail(text)
	case FieldGraduationYear:
		match := yearPattern.FindString(text)
		return match, match != ""
	case FieldAddress:
		for _, anchor := range addressAnchors {
			loc := anchor.FindStringIndex(text)
			if loc == nil {
				continue
			}
			value := strings.TrimSpace(text[loc[1]:])
			value = leadingFiller.ReplaceAllString(value, "")
			value = leadingTo.ReplaceAllString(value, "")
			if value != "" {
				return value, true
			}
		}
		// Bare-value fallback: "333 Lakeview Dr, Boston" with no anchor.
		if trimmed := strings.TrimSpace(text); len(strings.Fields(trimmed)) >= 3 {
			return trimmed, true
		}
	}
	return "", false
}
