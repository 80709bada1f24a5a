package faq

import "errors"

// Entry is one question/answer pair in the knowledge base. Answer is
// markdown, rendered by the presentation layer.
type Entry struct {
	ID       string
	Topic    string
	Question string
	Answer   string
}

// Validate checks if the Entry has valid data.
func (e *Entry) Validate() error {
	if e.Question == "" {
		return errors.New("faq question cannot be empty")
	}
	if e.Answer == "" {
		return errors.New("faq answer cannot be empty")
	}
	return nil
}
