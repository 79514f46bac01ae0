package progress

import (
	"reflect"
	"testing"
	"time"

	"github.com/example/deutschtrainer/pkg/models"
)

var levelOneEntries = []models.VocabularyEntry{
	{Level: 1, Singular: "Kran", Article: "der", Plural: "Kräne", Translation: "gru"},
	{Level: 1, Singular: "Tor", Article: "das", Plural: "Tore", Translation: "portone"},
}

func TestApplyLevelResultPass(t *testing.T) {
	rec := Default()
	got := ApplyLevelResult(rec, 1, 100, levelOneEntries, 3)

	if got.Scores[1] != 100 {
		t.Errorf("expected score 100, got %d", got.Scores[1])
	}
	if !reflect.DeepEqual(got.LearnedWords, []string{"Kran", "Tor"}) {
		t.Errorf("unexpected learned words %v", got.LearnedWords)
	}
	if got.CurrentLevel != 2 {
		t.Errorf("expected level 2, got %d", got.CurrentLevel)
	}
}

func TestApplyLevelResultExactThresholdPasses(t *testing.T) {
	got := ApplyLevelResult(Default(), 1, 80, levelOneEntries, 3)
	if got.CurrentLevel != 2 {
		t.Errorf("expected 80%% to pass, level stayed %d", got.CurrentLevel)
	}
}

func TestApplyLevelResultFail(t *testing.T) {
	got := ApplyLevelResult(Default(), 1, 79, levelOneEntries, 3)

	if got.Scores[1] != 79 {
		t.Errorf("expected score 79 recorded, got %d", got.Scores[1])
	}
	if len(got.LearnedWords) != 0 {
		t.Errorf("expected no learned words, got %v", got.LearnedWords)
	}
	if got.CurrentLevel != 1 {
		t.Errorf("expected level to stay 1, got %d", got.CurrentLevel)
	}
}

func TestApplyLevelResultReplayIsIdempotent(t *testing.T) {
	rec := models.ProgressRecord{
		CurrentLevel: 2,
		LearnedWords: []string{"Kran", "Tor"},
		Scores:       map[int]int{1: 80},
	}
	got := ApplyLevelResult(rec, 1, 100, levelOneEntries, 3)

	if !reflect.DeepEqual(got.LearnedWords, []string{"Kran", "Tor"}) {
		t.Errorf("expected no duplicate learned words, got %v", got.LearnedWords)
	}
	// Replaying a lower level must not skip ahead
	if got.CurrentLevel != 2 {
		t.Errorf("expected level 2, got %d", got.CurrentLevel)
	}
	if got.Scores[1] != 100 {
		t.Errorf("expected replay to overwrite score, got %d", got.Scores[1])
	}
}

func TestApplyLevelResultCapsAboveMaxLevel(t *testing.T) {
	rec := models.ProgressRecord{CurrentLevel: 3, LearnedWords: []string{}, Scores: map[int]int{}}
	got := ApplyLevelResult(rec, 3, 90, nil, 3)
	if got.CurrentLevel != 4 {
		t.Errorf("expected level 4 after passing the last level, got %d", got.CurrentLevel)
	}
	// One past the last level is the ceiling
	got = ApplyLevelResult(got, 4, 90, nil, 3)
	if got.CurrentLevel != 4 {
		t.Errorf("expected level to stay 4, got %d", got.CurrentLevel)
	}
}

func TestApplyLevelResultDoesNotModifyInput(t *testing.T) {
	rec := models.ProgressRecord{
		CurrentLevel: 1,
		LearnedWords: []string{},
		Scores:       map[int]int{},
	}
	ApplyLevelResult(rec, 1, 100, levelOneEntries, 3)

	if rec.CurrentLevel != 1 || len(rec.LearnedWords) != 0 || len(rec.Scores) != 0 {
		t.Errorf("input record was modified: %+v", rec)
	}
}

func TestApplyReviewResult(t *testing.T) {
	rec := Default()
	today := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)
	got := ApplyReviewResult(rec, today)

	if got.LastReviewDate != "2026-08-25" {
		t.Errorf("expected 2026-08-25, got %q", got.LastReviewDate)
	}
	if !got.ReviewedOn(today) {
		t.Errorf("expected ReviewedOn to match the same day")
	}
	if got.ReviewedOn(today.AddDate(0, 0, 1)) {
		t.Errorf("expected ReviewedOn to reject the next day")
	}
	if rec.LastReviewDate != "" {
		t.Errorf("input record was modified: %+v", rec)
	}
}
