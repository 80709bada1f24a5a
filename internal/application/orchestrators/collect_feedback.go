package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domainFeedback "membuddy/internal/domain/feedback"
	"membuddy/internal/domain/member"
	"membuddy/internal/domain/nlu"
)

// CollectFeedbackMemberStore defines the member store interface needed by CollectFeedback.
type CollectFeedbackMemberStore interface {
	GetByEmail(ctx context.Context, email string) (member.Member, error)
	UpdateEngagement(ctx context.Context, id string, score int) error
}

// CollectFeedbackFeedbackStore defines the feedback store interface needed by CollectFeedback.
type CollectFeedbackFeedbackStore interface {
	Append(ctx context.Context, value domainFeedback.Feedback) error
	RatingsByMember(ctx context.Context, memberID string) ([]int, error)
}

// CollectFeedbackInput carries input for the feedback orchestrator.
// Email may be empty for anonymous feedback.
type CollectFeedbackInput struct {
	Email   string
	Rating  int
	Comment string
}

// CollectFeedbackDeps holds dependencies for CollectFeedback.
type CollectFeedbackDeps struct {
	MemberStore   CollectFeedbackMemberStore
	FeedbackStore CollectFeedbackFeedbackStore
	Now           func() time.Time
	GenerateID    func() string
}

// ExecuteCollectFeedback records a rating and recomputes the member's
// engagement score.
// PRE: Deps.Now and Deps.GenerateID are non-nil
// POST: An out-of-range rating writes nothing; for known members the
// engagement score reflects all their ratings including this one
func ExecuteCollectFeedback(ctx context.Context, input CollectFeedbackInput, deps CollectFeedbackDeps) (string, error) {
	cmd, clarify := nlu.ResolveFeedback(input.Email, input.Rating, input.Comment)
	if clarify != nil {
		return clarify.Message, nil
	}

	var memberID string
	if cmd.Email != "" {
		m, err := deps.MemberStore.GetByEmail(ctx, cmd.Email)
		if errors.Is(err, member.ErrNotFound) {
			return fmt.Sprintf("No member found with email: %s", cmd.Email), nil
		}
		if err != nil {
			return "", err
		}
		memberID = m.ID
	}

	record := domainFeedback.Feedback{
		ID:        deps.GenerateID(),
		MemberID:  memberID,
		Email:     cmd.Email,
		Rating:    cmd.Rating,
		Comment:   cmd.Comment,
		CreatedAt: deps.Now(),
	}
	if err := record.Validate(); err != nil {
		return "", err
	}
	if err := deps.FeedbackStore.Append(ctx, record); err != nil {
		return "", err
	}

	reply := fmt.Sprintf("Thank you for your feedback! Your %d-star rating has been recorded.", cmd.Rating)

	if memberID != "" {
		ratings, err := deps.FeedbackStore.RatingsByMember(ctx, memberID)
		if err != nil {
			return "", err
		}
		score := domainFeedback.EngagementScore(ratings)
		if err := deps.MemberStore.UpdateEngagement(ctx, memberID, score); err != nil {
			return "", err
		}
		reply += fmt.Sprintf(" Your engagement score is now %d.", score)
		slog.Info("assistant_event", "event", "feedback_collected",
			"member_id", memberID, "rating", cmd.Rating, "engagement_score", score)
	} else {
		slog.Info("assistant_event", "event", "feedback_collected", "rating", cmd.Rating, "anonymous", true)
	}

	return reply, nil
}
