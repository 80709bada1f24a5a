package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	"membuddy/internal/domain/faq"
	"membuddy/internal/domain/nlu"
)

// FAQNoAnswer is the reply when no entry matches the question.
const FAQNoAnswer = "Sorry, I couldn't find an answer to your question."

// AnswerFAQStore defines the FAQ store interface needed by AnswerFAQ.
type AnswerFAQStore interface {
	List(ctx context.Context) ([]faq.Entry, error)
}

// AnswerFAQInput carries input for the FAQ orchestrator.
type AnswerFAQInput struct {
	Question string
}

// AnswerFAQDeps holds dependencies for AnswerFAQ.
type AnswerFAQDeps struct {
	FAQStore AnswerFAQStore
}

// faqStopwords are ignored when scoring question overlap.
var faqStopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "can": true,
	"do": true, "does": true, "for": true, "how": true, "i": true,
	"is": true, "it": true, "my": true, "of": true, "the": true,
	"to": true, "what": true, "when": true, "where": true, "with": true,
	"you": true, "your": true,
}

// ExecuteAnswerFAQ answers a question by keyword overlap against the
// stored entries. Plain retrieval: the entry whose topic and question
// share the most words with the question wins.
// POST: Returns the stored markdown answer, or FAQNoAnswer on no overlap
func ExecuteAnswerFAQ(ctx context.Context, input AnswerFAQInput, deps AnswerFAQDeps) (string, error) {
	entries, err := deps.FAQStore.List(ctx)
	if err != nil {
		return "", err
	}

	questionTokens := faqTokens(input.Question)
	if len(questionTokens) == 0 {
		return FAQNoAnswer, nil
	}

	var best *faq.Entry
	bestScore := 0
	for i := range entries {
		entryTokens := faqTokens(entries[i].Topic + " " + entries[i].Question)
		score := 0
		for tok := range questionTokens {
			if entryTokens[tok] {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = &entries[i]
		}
	}

	if best == nil {
		slog.Info("assistant_event", "event", "faq_missed", "question", input.Question)
		return FAQNoAnswer, nil
	}

	slog.Info("assistant_event", "event", "faq_answered", "faq_id", best.ID, "score", bestScore)
	return best.Answer, nil
}

// faqTokens lowercases, fixes common typos, and drops stopwords and
// punctuation, returning the distinct word set.
func faqTokens(text string) map[string]bool {
	cleaned := strings.ToLower(nlu.Normalize(text))
	tokens := make(map[string]bool)
	for _, w := range strings.FieldsFunc(cleaned, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if !faqStopwords[w] {
			tokens[w] = true
		}
	}
	return tokens
}
