// Package scheduler fires the daily review reminder
package scheduler

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/deutschtrainer/internal/trainer"
	"github.com/example/deutschtrainer/pkg/models"
)

// DefaultReminderHour is when the daily reminder fires (UTC)
const DefaultReminderHour = 9

// Notifier delivers review reminders to the learner
type Notifier interface {
	SendReviewReminder(wordCount int) error
}

// Scheduler reminds the learner once a day when a review is still pending
type Scheduler struct {
	scheduler *gocron.Scheduler
	trainer   *trainer.Trainer
	notifier  Notifier
}

// New creates a scheduler for the given trainer and notifier
func New(t *trainer.Trainer, notifier Notifier) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		trainer:   t,
		notifier:  notifier,
	}
}

// Start schedules the daily reminder and runs it in the background
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Day().At(fmt.Sprintf("%02d:00", ReminderHour())).Do(s.checkAndRemind)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// ReminderHour reads REMINDER_HOUR, falling back to the default
func ReminderHour() int {
	if v := os.Getenv("REMINDER_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return DefaultReminderHour
}

func (s *Scheduler) checkAndRemind() {
	rec := s.trainer.CurrentProgress()
	if !ShouldRemind(rec, time.Now()) {
		return
	}
	if err := s.notifier.SendReviewReminder(len(rec.LearnedWords)); err != nil {
		log.Printf("Error sending review reminder: %v", err)
	}
}

// ShouldRemind reports whether a reminder is due: the learner has
// vocabulary to review and has not reviewed on the day of now
func ShouldRemind(rec models.ProgressRecord, now time.Time) bool {
	if len(rec.LearnedWords) == 0 {
		return false
	}
	return !rec.ReviewedOn(now)
}
