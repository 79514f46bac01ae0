// Package trainer binds the catalog, the progress store and the question
// generator behind the operations a front end drives. The terminal and the
// Telegram front ends share this facade, so they cannot drift apart in how
// levels are scored or progress advances.
package trainer

import (
	"log"
	"sync"
	"time"

	"github.com/example/deutschtrainer/internal/catalog"
	"github.com/example/deutschtrainer/internal/progress"
	"github.com/example/deutschtrainer/internal/quiz"
	"github.com/example/deutschtrainer/pkg/models"
)

// AttemptRecorder stores finished sessions for the statistics view. A nil
// recorder disables history without affecting training.
type AttemptRecorder interface {
	Create(*models.Attempt) error
	GetRecent(limit int) ([]models.Attempt, error)
	Summary() (*models.AttemptSummary, error)
}

// Trainer holds the live progress record for a single learner. The record
// is guarded by a lock because the reminder scheduler reads it from its own
// goroutine.
type Trainer struct {
	catalog  *catalog.Catalog
	store    progress.Store
	gen      *quiz.Generator
	attempts AttemptRecorder

	mu     sync.RWMutex
	record models.ProgressRecord
}

// New loads the learner's progress and returns a ready trainer. Learned
// keys that no longer name catalog entries are dropped, so a shrunk catalog
// cannot produce review questions about vanished words. attempts may be nil.
func New(cat *catalog.Catalog, store progress.Store, gen *quiz.Generator, attempts AttemptRecorder) *Trainer {
	rec := store.Load()
	kept := make([]string, 0, len(rec.LearnedWords))
	for _, key := range rec.LearnedWords {
		if cat.HasEntry(key) {
			kept = append(kept, key)
		}
	}
	rec.LearnedWords = kept
	return &Trainer{catalog: cat, store: store, gen: gen, attempts: attempts, record: rec}
}

// ListLevels returns the highest level the catalog has content for
func (t *Trainer) ListLevels() int {
	return t.catalog.MaxLevel()
}

// CurrentLevel returns the learner's frontier level
func (t *Trainer) CurrentLevel() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.record.CurrentLevel
}

// AllLevelsDone reports whether every catalog level has been passed
func (t *Trainer) AllLevelsDone() bool {
	return t.CurrentLevel() > t.catalog.MaxLevel()
}

// HasLearnedWords reports whether any vocabulary has been learned yet
func (t *Trainer) HasLearnedWords() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.record.LearnedWords) > 0
}

// ReviewedToday reports whether a review was already completed on the day
// of now
func (t *Trainer) ReviewedToday(now time.Time) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.record.ReviewedOn(now)
}

// CurrentProgress returns a snapshot of the live progress record
func (t *Trainer) CurrentProgress() models.ProgressRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.record.Clone()
}

// ContentForLevel returns the vocabulary and grammar introduced at a level
func (t *Trainer) ContentForLevel(level int) ([]models.VocabularyEntry, []models.GrammarTopic) {
	return t.catalog.EntriesForLevel(level), t.catalog.TopicsForLevel(level)
}

// StartLevel opens a quiz session over the given level's content
func (t *Trainer) StartLevel(level int) *quiz.Session {
	entries, topics := t.ContentForLevel(level)
	return quiz.NewSession(t.gen.LevelQuestions(entries, topics))
}

// StartReview opens a review session over the learned vocabulary plus every
// grammar topic up to the current level
func (t *Trainer) StartReview() *quiz.Session {
	rec := t.CurrentProgress()
	entries := t.catalog.EntriesForKeys(rec.LearnedWords)
	topics := t.catalog.TopicsUpToLevel(rec.CurrentLevel)
	return quiz.NewSession(t.gen.ReviewQuestions(entries, topics))
}

// LevelOutcome summarizes a finished level attempt
type LevelOutcome struct {
	Percent      int
	Passed       bool
	CurrentLevel int // frontier level after applying the result
}

// FinishLevel scores a complete session, applies the advancement rule and
// persists the updated record. It fails only when the session is not
// complete; persistence problems are logged as warnings.
func (t *Trainer) FinishLevel(level int, s *quiz.Session) (LevelOutcome, error) {
	percent, err := s.Percentage()
	if err != nil {
		return LevelOutcome{}, err
	}
	passed, err := s.Passed()
	if err != nil {
		return LevelOutcome{}, err
	}

	t.mu.Lock()
	t.record = progress.ApplyLevelResult(t.record, level, percent, t.catalog.EntriesForLevel(level), t.catalog.MaxLevel())
	current := t.record.CurrentLevel
	t.persistLocked()
	t.mu.Unlock()

	t.recordAttempt(&models.Attempt{
		Mode:           models.AttemptModeLevel,
		Level:          level,
		TotalQuestions: s.Total(),
		CorrectAnswers: s.Correct(),
		Percent:        percent,
		Passed:         passed,
	})
	return LevelOutcome{Percent: percent, Passed: passed, CurrentLevel: current}, nil
}

// ReviewOutcome summarizes a finished review session
type ReviewOutcome struct {
	Percent int
}

// FinishReview scores a complete review session, stamps the review date and
// persists the updated record
func (t *Trainer) FinishReview(s *quiz.Session, now time.Time) (ReviewOutcome, error) {
	percent, err := s.Percentage()
	if err != nil {
		return ReviewOutcome{}, err
	}
	passed, err := s.Passed()
	if err != nil {
		return ReviewOutcome{}, err
	}

	t.mu.Lock()
	t.record = progress.ApplyReviewResult(t.record, now)
	t.persistLocked()
	t.mu.Unlock()

	t.recordAttempt(&models.Attempt{
		Mode:           models.AttemptModeReview,
		TotalQuestions: s.Total(),
		CorrectAnswers: s.Correct(),
		Percent:        percent,
		Passed:         passed,
	})
	return ReviewOutcome{Percent: percent}, nil
}

// RecentAttempts returns the latest stored attempts, newest first. Without
// a recorder it returns nothing.
func (t *Trainer) RecentAttempts(limit int) ([]models.Attempt, error) {
	if t.attempts == nil {
		return nil, nil
	}
	return t.attempts.GetRecent(limit)
}

// AttemptStats returns aggregates over the stored history, or nil without a
// recorder
func (t *Trainer) AttemptStats() (*models.AttemptSummary, error) {
	if t.attempts == nil {
		return nil, nil
	}
	return t.attempts.Summary()
}

func (t *Trainer) persistLocked() {
	if err := t.store.Save(t.record); err != nil {
		log.Printf("Warning: failed to save progress: %v", err)
	}
}

func (t *Trainer) recordAttempt(a *models.Attempt) {
	if t.attempts == nil {
		return
	}
	if err := t.attempts.Create(a); err != nil {
		log.Printf("Warning: failed to record attempt: %v", err)
	}
}
