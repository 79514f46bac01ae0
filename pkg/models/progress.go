package models

import "time"

// ReviewDateLayout is the format of ProgressRecord.LastReviewDate
const ReviewDateLayout = "2006-01-02"

// ProgressRecord is the learner's persisted state. It marshals to the
// progress JSON file, so field tags are part of the storage format.
type ProgressRecord struct {
	CurrentLevel   int         `json:"current_level"`
	LearnedWords   []string    `json:"learned_words"`
	LastReviewDate string      `json:"last_review_date,omitempty"`
	Scores         map[int]int `json:"scores"`
}

// HasLearned reports whether the vocabulary key is in the learned set
func (r ProgressRecord) HasLearned(key string) bool {
	for _, w := range r.LearnedWords {
		if w == key {
			return true
		}
	}
	return false
}

// ReviewedOn reports whether the last review happened on the same day as t
func (r ProgressRecord) ReviewedOn(t time.Time) bool {
	return r.LastReviewDate != "" && r.LastReviewDate == t.Format(ReviewDateLayout)
}

// Clone returns a deep copy of the record. The copy always carries non-nil
// collections so it marshals as [] and {} rather than null.
func (r ProgressRecord) Clone() ProgressRecord {
	out := r
	out.LearnedWords = make([]string, len(r.LearnedWords))
	copy(out.LearnedWords, r.LearnedWords)
	out.Scores = make(map[int]int, len(r.Scores))
	for level, percent := range r.Scores {
		out.Scores[level] = percent
	}
	return out
}
