package quiz

import (
	"fmt"

	"github.com/example/deutschtrainer/pkg/models"
)

// PassThreshold is the minimum percentage required to pass a level
const PassThreshold = 80

// State identifies the phase a session is in
type State int

const (
	// StateAwaitingAnswer means a question is waiting for a selection
	StateAwaitingAnswer State = iota
	// StateComplete means every question has been answered
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateAwaitingAnswer:
		return "awaiting-answer"
	case StateComplete:
		return "complete"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// InvalidStateError reports a session operation called in the wrong state
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: invalid in session state %s", e.Op, e.State)
}

// Session drives one question set to completion and tallies the score.
// It is not safe for concurrent use; every front end runs it from a single
// goroutine.
type Session struct {
	questions []models.Question
	index     int
	correct   int
	state     State
}

// NewSession starts a session over the given questions. An empty set is
// complete from the start and scores zero.
func NewSession(questions []models.Question) *Session {
	s := &Session{questions: questions}
	if len(questions) == 0 {
		s.state = StateComplete
	}
	return s
}

// State returns the session's current state
func (s *Session) State() State {
	return s.state
}

// Index returns the zero-based position of the current question
func (s *Session) Index() int {
	return s.index
}

// Total returns the number of questions in the session
func (s *Session) Total() int {
	return len(s.questions)
}

// Correct returns the number of correct answers so far
func (s *Session) Correct() int {
	return s.correct
}

// Current returns the question awaiting an answer
func (s *Session) Current() (models.Question, error) {
	if s.state != StateAwaitingAnswer {
		return models.Question{}, &InvalidStateError{Op: "current question", State: s.state}
	}
	return s.questions[s.index], nil
}

// SubmitAnswer scores the selected option against the current question and
// advances to the next one. The selection must match the stored answer
// exactly.
func (s *Session) SubmitAnswer(selected string) (bool, error) {
	if s.state != StateAwaitingAnswer {
		return false, &InvalidStateError{Op: "submit answer", State: s.state}
	}
	correct := selected == s.questions[s.index].Answer
	if correct {
		s.correct++
	}
	s.index++
	if s.index == len(s.questions) {
		s.state = StateComplete
	}
	return correct, nil
}

// Percentage returns the score of a complete session, rounded down to a
// whole percent. A session without questions scores zero.
func (s *Session) Percentage() (int, error) {
	if s.state != StateComplete {
		return 0, &InvalidStateError{Op: "percentage", State: s.state}
	}
	if len(s.questions) == 0 {
		return 0, nil
	}
	return 100 * s.correct / len(s.questions), nil
}

// Passed reports whether a complete session reached the pass threshold
func (s *Session) Passed() (bool, error) {
	percent, err := s.Percentage()
	if err != nil {
		return false, err
	}
	return percent >= PassThreshold, nil
}
