// Package answers holds the session's mutable question-answer mapping.
package answers

import "github.com/slam0615/sc2026/internal/schema"

// Store maps question IDs to yes/no answers. A question absent from the map
// is unanswered; once set, an answer changes only by re-selection. The store
// does not check IDs against the catalog — an unknown ID is stored and simply
// ignored by the validator and scorer, which traverse the catalog.
type Store struct {
	m map[int]bool
}

// New returns an empty store: every question starts unanswered.
func New() *Store {
	return &Store{m: make(map[int]bool)}
}

// Set records a yes/no answer for a question, overwriting any prior value.
func (s *Store) Set(questionID int, yes bool) {
	s.m[questionID] = yes
}

// Get returns the current answer for a question.
func (s *Store) Get(questionID int) schema.Answer {
	yes, ok := s.m[questionID]
	switch {
	case !ok:
		return schema.AnswerUnanswered
	case yes:
		return schema.AnswerYes
	default:
		return schema.AnswerNo
	}
}

// Answered returns the number of questions with a recorded answer.
func (s *Store) Answered() int {
	return len(s.m)
}
