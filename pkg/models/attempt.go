package models

import "time"

// Attempt modes
const (
	AttemptModeLevel  = "level"
	AttemptModeReview = "review"
)

// Attempt records one finished quiz session in the history database
type Attempt struct {
	ID             int64     `json:"id" db:"id"`
	Mode           string    `json:"mode" db:"mode"`
	Level          int       `json:"level" db:"level"` // 0 for review attempts
	TotalQuestions int       `json:"total_questions" db:"total_questions"`
	CorrectAnswers int       `json:"correct_answers" db:"correct_answers"`
	Percent        int       `json:"percent" db:"percent"`
	Passed         bool      `json:"passed" db:"passed"`
	AttemptDate    time.Time `json:"attempt_date" db:"attempt_date"`
}

// AttemptSummary aggregates the stored attempt history
type AttemptSummary struct {
	TotalAttempts       int     `json:"total_attempts" db:"total_attempts"`
	PassedLevelAttempts int     `json:"passed_level_attempts" db:"passed_level_attempts"`
	ReviewSessions      int     `json:"review_sessions" db:"review_sessions"`
	AveragePercent      float64 `json:"average_percent" db:"average_percent"`
}
