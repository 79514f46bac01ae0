// Package catalog holds the course content: the vocabulary entries and
// grammar topics, each tagged with the level that introduces it.
package catalog

import (
	"fmt"

	"github.com/example/deutschtrainer/pkg/models"
)

// Catalog is an immutable, validated set of course content
type Catalog struct {
	entries  []models.VocabularyEntry
	topics   []models.GrammarTopic
	byKey    map[string]int // singular form -> index into entries
	maxLevel int
}

// New builds a catalog from the given content. It rejects entries with
// invalid levels, empty or duplicate singular forms, and grammar questions
// whose answer is missing from the options.
func New(entries []models.VocabularyEntry, topics []models.GrammarTopic) (*Catalog, error) {
	c := &Catalog{
		entries: entries,
		topics:  topics,
		byKey:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.Singular == "" {
			return nil, fmt.Errorf("vocabulary entry %d has an empty singular form", i)
		}
		if e.Level < 1 {
			return nil, fmt.Errorf("invalid level %d for vocabulary entry %q", e.Level, e.Singular)
		}
		if _, exists := c.byKey[e.Singular]; exists {
			return nil, fmt.Errorf("duplicate vocabulary entry %q", e.Singular)
		}
		c.byKey[e.Singular] = i
		if e.Level > c.maxLevel {
			c.maxLevel = e.Level
		}
	}
	for _, t := range topics {
		if t.Level < 1 {
			return nil, fmt.Errorf("invalid level %d for grammar topic %q", t.Level, t.Name)
		}
		for _, q := range t.Questions {
			if err := validateQuestionSpec(t.Name, q); err != nil {
				return nil, err
			}
		}
		if t.Level > c.maxLevel {
			c.maxLevel = t.Level
		}
	}
	return c, nil
}

func validateQuestionSpec(topic string, q models.GrammarQuestionSpec) error {
	if len(q.Options) == 0 {
		return fmt.Errorf("grammar topic %q: question %q has no options", topic, q.Prompt)
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if seen[opt] {
			return fmt.Errorf("grammar topic %q: question %q has duplicate option %q", topic, q.Prompt, opt)
		}
		seen[opt] = true
	}
	if !seen[q.Answer] {
		return fmt.Errorf("grammar topic %q: answer %q is not among the options of %q", topic, q.Answer, q.Prompt)
	}
	return nil
}

// MaxLevel returns the highest level any content is introduced at
func (c *Catalog) MaxLevel() int {
	return c.maxLevel
}

// HasEntry reports whether key names a vocabulary entry in the catalog
func (c *Catalog) HasEntry(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// EntriesForLevel returns the vocabulary introduced at the given level, in
// catalog order. Levels without vocabulary yield an empty slice.
func (c *Catalog) EntriesForLevel(level int) []models.VocabularyEntry {
	var out []models.VocabularyEntry
	for _, e := range c.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// EntriesForKeys returns the entries named by keys, in catalog order.
// Unknown keys are ignored.
func (c *Catalog) EntriesForKeys(keys []string) []models.VocabularyEntry {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	var out []models.VocabularyEntry
	for _, e := range c.entries {
		if want[e.Key()] {
			out = append(out, e)
		}
	}
	return out
}

// TopicsForLevel returns the grammar topics introduced at the given level,
// in catalog order
func (c *Catalog) TopicsForLevel(level int) []models.GrammarTopic {
	var out []models.GrammarTopic
	for _, t := range c.topics {
		if t.Level == level {
			out = append(out, t)
		}
	}
	return out
}

// TopicsUpToLevel returns every grammar topic introduced at or below the
// given level, in catalog order
func (c *Catalog) TopicsUpToLevel(level int) []models.GrammarTopic {
	var out []models.GrammarTopic
	for _, t := range c.topics {
		if t.Level <= level {
			out = append(out, t)
		}
	}
	return out
}

// MergeEntries appends extra entries to base, skipping any whose key is
// already present. It returns the merged slice and the number skipped.
func MergeEntries(base, extra []models.VocabularyEntry) ([]models.VocabularyEntry, int) {
	seen := make(map[string]bool, len(base))
	for _, e := range base {
		seen[e.Key()] = true
	}
	merged := make([]models.VocabularyEntry, 0, len(base)+len(extra))
	merged = append(merged, base...)
	skipped := 0
	for _, e := range extra {
		if seen[e.Key()] {
			skipped++
			continue
		}
		seen[e.Key()] = true
		merged = append(merged, e)
	}
	return merged, skipped
}
