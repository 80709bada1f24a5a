package feedback

import (
	"errors"
	"math"
	"time"
)

// Rating bounds. A rating outside this range never produces a record.
const (
	MinRating = 1
	MaxRating = 5
)

// Domain errors
var (
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

// Feedback holds one rating with an optional comment. MemberID is empty
// for anonymous feedback.
type Feedback struct {
	ID        string
	MemberID  string
	Email     string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// Validate checks if the Feedback has valid data.
// INVARIANT: 1 <= Rating <= 5
func (f *Feedback) Validate() error {
	if f.Rating < MinRating || f.Rating > MaxRating {
		return ErrRatingOutOfRange
	}
	return nil
}

// EngagementScore summarizes a member's ratings on a 0-100 scale:
// min(100, round(mean * 20)). Returns 0 for no ratings.
func EngagementScore(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	score := int(math.Round(mean * 20))
	if score > 100 {
		score = 100
	}
	return score
}
