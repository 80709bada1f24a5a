package orchestrators

import (
	"context"
	"strings"
	"testing"
)

func feedbackDeps(members *mockMemberStore, store *mockFeedbackStore) CollectFeedbackDeps {
	return CollectFeedbackDeps{
		MemberStore:   members,
		FeedbackStore: store,
		Now:           testNow,
		GenerateID:    testID,
	}
}

func TestExecuteCollectFeedback_RatingGate(t *testing.T) {
	store := &mockFeedbackStore{}
	for _, rating := range []int{0, 6, -1} {
		reply, err := ExecuteCollectFeedback(context.Background(),
			CollectFeedbackInput{Email: "john.doe@example.com", Rating: rating},
			feedbackDeps(newMockMemberStore(demoStudent()), store))
		if err != nil {
			t.Fatalf("rating %d: unexpected error: %v", rating, err)
		}
		if reply != "Error: Rating must be between 1 and 5." {
			t.Errorf("rating %d: reply = %q", rating, reply)
		}
	}
	if len(store.records) != 0 {
		t.Error("out-of-range ratings must not be recorded")
	}
}

func TestExecuteCollectFeedback_RecordsAndRecomputesEngagement(t *testing.T) {
	members := newMockMemberStore(demoStudent())
	store := &mockFeedbackStore{}

	ratings := []int{5, 5, 4}
	var reply string
	var err error
	for _, r := range ratings {
		reply, err = ExecuteCollectFeedback(context.Background(),
			CollectFeedbackInput{Email: "john.doe@example.com", Rating: r, Comment: "great"},
			feedbackDeps(members, store))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if !strings.Contains(reply, "Thank you for your feedback! Your 4-star rating has been recorded.") {
		t.Errorf("reply = %q", reply)
	}
	// mean(5,5,4)*20 rounds to 93
	if !strings.Contains(reply, "Your engagement score is now 93.") {
		t.Errorf("reply = %q", reply)
	}
	m, _ := members.byID("M001")
	if m.EngagementScore != 93 {
		t.Errorf("stored engagement = %d, want 93", m.EngagementScore)
	}
	if len(store.records) != 3 {
		t.Errorf("recorded %d feedback rows, want 3", len(store.records))
	}
}

func TestExecuteCollectFeedback_Anonymous(t *testing.T) {
	members := newMockMemberStore(demoStudent())
	store := &mockFeedbackStore{}

	reply, err := ExecuteCollectFeedback(context.Background(),
		CollectFeedbackInput{Email: "", Rating: 3, Comment: "ok"},
		feedbackDeps(members, store))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Thank you for your feedback! Your 3-star rating has been recorded." {
		t.Errorf("reply = %q", reply)
	}
	if len(store.records) != 1 || store.records[0].MemberID != "" {
		t.Errorf("records = %+v", store.records)
	}
	// No engagement write for anonymous feedback.
	if m, _ := members.byID("M001"); m.EngagementScore != 0 {
		t.Errorf("engagement = %d, want 0", m.EngagementScore)
	}
}

func TestExecuteCollectFeedback_UnknownMember(t *testing.T) {
	store := &mockFeedbackStore{}
	reply, err := ExecuteCollectFeedback(context.Background(),
		CollectFeedbackInput{Email: "nobody@example.com", Rating: 5},
		feedbackDeps(newMockMemberStore(), store))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "No member found with email: nobody@example.com" {
		t.Errorf("reply = %q", reply)
	}
	if len(store.records) != 0 {
		t.Error("nothing should be recorded for an unknown member")
	}
}
