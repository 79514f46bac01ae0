// Package progress persists the learner's state and applies quiz results
// to it.
package progress

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/example/deutschtrainer/pkg/models"
)

// Store loads and saves the learner's progress record
type Store interface {
	Load() models.ProgressRecord
	Save(models.ProgressRecord) error
}

// FileStore keeps the progress record in a JSON file, rewritten whole on
// every save
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Default returns the initial record for a new learner
func Default() models.ProgressRecord {
	return models.ProgressRecord{
		CurrentLevel: 1,
		LearnedWords: []string{},
		Scores:       map[int]int{},
	}
}

// Load reads the persisted record. A missing, unreadable or malformed file
// yields the default record; no failure reaches the caller.
func (s *FileStore) Load() models.ProgressRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Default()
	}
	var rec models.ProgressRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Default()
	}
	if rec.CurrentLevel < 1 {
		return Default()
	}
	if rec.LearnedWords == nil {
		rec.LearnedWords = []string{}
	}
	if rec.Scores == nil {
		rec.Scores = map[int]int{}
	}
	return rec
}

// Save replaces the whole file with the record as pretty-printed JSON
func (s *FileStore) Save(rec models.ProgressRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode progress: %v", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write progress file: %v", err)
	}
	return nil
}
