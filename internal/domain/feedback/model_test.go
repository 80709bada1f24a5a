package feedback_test

import (
	"testing"

	"membuddy/internal/domain/feedback"
)

// TestFeedbackValidation tests the rating bounds.
func TestFeedbackValidation(t *testing.T) {
	for _, rating := range []int{1, 3, 5} {
		f := feedback.Feedback{ID: "f1", Rating: rating}
		if err := f.Validate(); err != nil {
			t.Errorf("rating %d rejected: %v", rating, err)
		}
	}
	for _, rating := range []int{0, 6, -1, 100} {
		f := feedback.Feedback{ID: "f1", Rating: rating}
		if err := f.Validate(); err == nil {
			t.Errorf("rating %d accepted, want rejection", rating)
		}
	}

	// Empty comment and empty member (anonymous) are both fine.
	f := feedback.Feedback{ID: "f1", Rating: 3, Comment: ""}
	if err := f.Validate(); err != nil {
		t.Errorf("empty comment rejected: %v", err)
	}
}

// TestEngagementScore tests the derived 0-100 engagement score.
func TestEngagementScore(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    int
	}{
		{name: "no ratings", ratings: nil, want: 0},
		{name: "single five", ratings: []int{5}, want: 100},
		{name: "mixed ratings round", ratings: []int{5, 5, 4}, want: 93},
		{name: "all ones", ratings: []int{1, 1}, want: 20},
		{name: "capped at 100", ratings: []int{5, 5, 5, 5}, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := feedback.EngagementScore(tt.ratings); got != tt.want {
				t.Errorf("EngagementScore(%v) = %d, want %d", tt.ratings, got, tt.want)
			}
		})
	}
}
