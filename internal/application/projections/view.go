package projections

import "time"

// formatDate renders a date for display, empty for the zero value.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
