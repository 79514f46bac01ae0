package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/deutschtrainer/pkg/models"
)

// AttemptRepository handles database operations for quiz attempts
type AttemptRepository struct {
	db *sqlx.DB
}

// NewAttemptRepository creates a new repository instance
func NewAttemptRepository(db *sqlx.DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Create inserts a new attempt and fills in its ID
func (r *AttemptRepository) Create(attempt *models.Attempt) error {
	if attempt.AttemptDate.IsZero() {
		attempt.AttemptDate = time.Now()
	}
	if r.db.DriverName() == "postgres" {
		query := `
			INSERT INTO attempts (mode, level, total_questions, correct_answers, percent, passed, attempt_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		err := r.db.QueryRow(query,
			attempt.Mode,
			attempt.Level,
			attempt.TotalQuestions,
			attempt.CorrectAnswers,
			attempt.Percent,
			attempt.Passed,
			attempt.AttemptDate,
		).Scan(&attempt.ID)
		if err != nil {
			return fmt.Errorf("failed to create attempt: %v", err)
		}
		return nil
	}

	query := `
		INSERT INTO attempts (mode, level, total_questions, correct_answers, percent, passed, attempt_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.Exec(query,
		attempt.Mode,
		attempt.Level,
		attempt.TotalQuestions,
		attempt.CorrectAnswers,
		attempt.Percent,
		attempt.Passed,
		attempt.AttemptDate,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %v", err)
	}
	attempt.ID = id
	return nil
}

// GetRecent returns the most recent attempts, newest first
func (r *AttemptRepository) GetRecent(limit int) ([]models.Attempt, error) {
	query := "SELECT * FROM attempts ORDER BY attempt_date DESC, id DESC LIMIT ?"
	if r.db.DriverName() == "postgres" {
		query = strings.Replace(query, "?", "$1", -1)
	}
	var attempts []models.Attempt
	if err := r.db.Select(&attempts, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get attempts: %v", err)
	}
	return attempts, nil
}

// Summary aggregates the stored attempt history
func (r *AttemptRepository) Summary() (*models.AttemptSummary, error) {
	summary := &models.AttemptSummary{}
	if err := r.db.Get(&summary.TotalAttempts, "SELECT COUNT(*) FROM attempts"); err != nil {
		return nil, fmt.Errorf("failed to count attempts: %v", err)
	}
	if err := r.db.Get(&summary.PassedLevelAttempts,
		"SELECT COUNT(*) FROM attempts WHERE mode = 'level' AND passed"); err != nil {
		return nil, fmt.Errorf("failed to count passed attempts: %v", err)
	}
	if err := r.db.Get(&summary.ReviewSessions,
		"SELECT COUNT(*) FROM attempts WHERE mode = 'review'"); err != nil {
		return nil, fmt.Errorf("failed to count review sessions: %v", err)
	}
	if err := r.db.Get(&summary.AveragePercent,
		"SELECT COALESCE(AVG(percent), 0) FROM attempts"); err != nil {
		return nil, fmt.Errorf("failed to compute average percent: %v", err)
	}
	return summary, nil
}
