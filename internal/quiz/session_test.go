package quiz

import (
	"errors"
	"testing"

	"github.com/example/deutschtrainer/pkg/models"
)

func makeQuestions(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			Prompt:  "p",
			Options: []string{"right", "wrong"},
			Answer:  "right",
		}
	}
	return questions
}

func answerAll(t *testing.T, s *Session, correct int) {
	t.Helper()
	for i := 0; s.State() == StateAwaitingAnswer; i++ {
		selected := "wrong"
		if i < correct {
			selected = "right"
		}
		if _, err := s.SubmitAnswer(selected); err != nil {
			t.Fatalf("submit answer %d: %v", i, err)
		}
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSession(makeQuestions(3))
	if s.State() != StateAwaitingAnswer {
		t.Fatalf("expected awaiting-answer, got %s", s.State())
	}
	if s.Total() != 3 || s.Index() != 0 {
		t.Fatalf("expected index 0 of 3, got %d of %d", s.Index(), s.Total())
	}

	q, err := s.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	correct, err := s.SubmitAnswer(q.Answer)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !correct {
		t.Errorf("expected the answer to score as correct")
	}
	if s.Index() != 1 || s.Correct() != 1 {
		t.Errorf("expected index 1 and 1 correct, got %d and %d", s.Index(), s.Correct())
	}

	if correct, _ := s.SubmitAnswer("wrong"); correct {
		t.Errorf("expected a wrong answer to score as incorrect")
	}
	if _, err := s.SubmitAnswer("right"); err != nil {
		t.Fatalf("submit last: %v", err)
	}
	if s.State() != StateComplete {
		t.Fatalf("expected complete, got %s", s.State())
	}

	percent, err := s.Percentage()
	if err != nil {
		t.Fatalf("percentage: %v", err)
	}
	if percent != 66 {
		t.Errorf("expected 66, got %d", percent)
	}
	passed, err := s.Passed()
	if err != nil {
		t.Fatalf("passed: %v", err)
	}
	if passed {
		t.Errorf("66%% must not pass")
	}
}

func TestPercentageRoundsDown(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		correct int
		percent int
		passed  bool
	}{
		{"half of two", 2, 1, 50, false},
		{"four of five", 5, 4, 80, true},
		{"three of four", 4, 3, 75, false},
		{"seven of nine", 9, 7, 77, false},
		{"all of three", 3, 3, 100, true},
		{"none", 3, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(makeQuestions(tt.total))
			answerAll(t, s, tt.correct)
			percent, err := s.Percentage()
			if err != nil {
				t.Fatalf("percentage: %v", err)
			}
			if percent != tt.percent {
				t.Errorf("expected %d%%, got %d%%", tt.percent, percent)
			}
			passed, err := s.Passed()
			if err != nil {
				t.Fatalf("passed: %v", err)
			}
			if passed != tt.passed {
				t.Errorf("expected passed=%v at %d%%", tt.passed, percent)
			}
		})
	}
}

func TestEmptySessionIsCompleteAndScoresZero(t *testing.T) {
	s := NewSession(nil)
	if s.State() != StateComplete {
		t.Fatalf("expected complete, got %s", s.State())
	}
	percent, err := s.Percentage()
	if err != nil {
		t.Fatalf("percentage: %v", err)
	}
	if percent != 0 {
		t.Errorf("expected 0, got %d", percent)
	}
	passed, err := s.Passed()
	if err != nil {
		t.Fatalf("passed: %v", err)
	}
	if passed {
		t.Errorf("an empty session must not pass")
	}
}

func TestInvalidStateErrors(t *testing.T) {
	s := NewSession(makeQuestions(1))

	if _, err := s.Percentage(); err == nil {
		t.Fatalf("expected error before completion")
	} else {
		var stateErr *InvalidStateError
		if !errors.As(err, &stateErr) {
			t.Fatalf("expected InvalidStateError, got %T", err)
		}
		if stateErr.State != StateAwaitingAnswer {
			t.Errorf("expected awaiting-answer in error, got %s", stateErr.State)
		}
	}
	if _, err := s.Passed(); err == nil {
		t.Errorf("expected error from Passed before completion")
	}

	if _, err := s.SubmitAnswer("right"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if _, err := s.Current(); err == nil {
		t.Errorf("expected error from Current after completion")
	}
	if _, err := s.SubmitAnswer("right"); err == nil {
		t.Errorf("expected error from SubmitAnswer after completion")
	} else {
		var stateErr *InvalidStateError
		if !errors.As(err, &stateErr) {
			t.Fatalf("expected InvalidStateError, got %T", err)
		}
		if stateErr.State != StateComplete {
			t.Errorf("expected complete in error, got %s", stateErr.State)
		}
	}
}

func TestSubmitRequiresExactMatch(t *testing.T) {
	s := NewSession([]models.Question{{
		Prompt:  "p",
		Options: []string{"die Paletten", "die Lager"},
		Answer:  "die Paletten",
	}})
	correct, err := s.SubmitAnswer("die paletten")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if correct {
		t.Errorf("comparison must be exact, case included")
	}
}
