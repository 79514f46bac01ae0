package progress

import (
	"time"

	"github.com/example/deutschtrainer/internal/quiz"
	"github.com/example/deutschtrainer/pkg/models"
)

// ApplyLevelResult folds one finished level attempt into the record and
// returns the updated copy; the input is not modified. The level's score is
// always recorded. On a pass the level's vocabulary keys join the learned
// set, and when the learner attempted their frontier level the current
// level advances by one, capped at maxLevel+1.
func ApplyLevelResult(rec models.ProgressRecord, level, percent int, entries []models.VocabularyEntry, maxLevel int) models.ProgressRecord {
	out := rec.Clone()
	out.Scores[level] = percent
	if percent < quiz.PassThreshold {
		return out
	}
	for _, e := range entries {
		if !out.HasLearned(e.Key()) {
			out.LearnedWords = append(out.LearnedWords, e.Key())
		}
	}
	if out.CurrentLevel == level && out.CurrentLevel <= maxLevel {
		out.CurrentLevel++
	}
	return out
}

// ApplyReviewResult stamps the record with the day the review was completed
// and returns the updated copy
func ApplyReviewResult(rec models.ProgressRecord, today time.Time) models.ProgressRecord {
	out := rec.Clone()
	out.LastReviewDate = today.Format(models.ReviewDateLayout)
	return out
}
