// Package quiz builds multiple-choice question sets and drives them to
// completion one answer at a time.
package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/example/deutschtrainer/pkg/models"
)

// Generator turns catalog content into shuffled question sets. Every
// generator owns its random source, so tests can inject a fixed seed.
type Generator struct {
	rnd *rand.Rand
}

// New creates a generator seeded from the wall clock
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates a generator using the given random source
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// LevelQuestions builds the question set for one level: a translation
// question and a plural question for every vocabulary entry, plus all
// grammar questions of the level's topics, in shuffled order.
func (g *Generator) LevelQuestions(entries []models.VocabularyEntry, topics []models.GrammarTopic) []models.Question {
	questions := make([]models.Question, 0, 2*len(entries))
	for _, e := range entries {
		questions = append(questions, g.translationQuestion(e, entries))
		questions = append(questions, g.pluralQuestion(e, entries))
	}
	questions = appendGrammarQuestions(questions, topics)
	g.shuffle(questions)
	return questions
}

// ReviewQuestions builds the review set: one question per vocabulary entry,
// translation or plural chosen with equal probability, plus all grammar
// questions of the given topics, in shuffled order.
func (g *Generator) ReviewQuestions(entries []models.VocabularyEntry, topics []models.GrammarTopic) []models.Question {
	questions := make([]models.Question, 0, len(entries))
	for _, e := range entries {
		if g.rnd.Intn(2) == 0 {
			questions = append(questions, g.translationQuestion(e, entries))
		} else {
			questions = append(questions, g.pluralQuestion(e, entries))
		}
	}
	questions = appendGrammarQuestions(questions, topics)
	g.shuffle(questions)
	return questions
}

func (g *Generator) translationQuestion(entry models.VocabularyEntry, pool []models.VocabularyEntry) models.Question {
	distractors := make([]string, 0, len(pool))
	for _, other := range pool {
		if other.Key() != entry.Key() {
			distractors = append(distractors, other.Term())
		}
	}
	return models.Question{
		Prompt:      fmt.Sprintf("Scegli il termine tedesco corretto per '%s':", entry.Translation),
		Options:     g.buildOptions(entry.Term(), distractors),
		Answer:      entry.Term(),
		Explanation: entry.Explanation,
	}
}

func (g *Generator) pluralQuestion(entry models.VocabularyEntry, pool []models.VocabularyEntry) models.Question {
	distractors := make([]string, 0, len(pool))
	for _, other := range pool {
		if other.Key() != entry.Key() {
			distractors = append(distractors, other.PluralTerm())
		}
	}
	return models.Question{
		Prompt:      fmt.Sprintf("Qual è il plurale corretto di '%s'?", entry.Term()),
		Options:     g.buildOptions(entry.PluralTerm(), distractors),
		Answer:      entry.PluralTerm(),
		Explanation: entry.Explanation,
	}
}

// buildOptions picks up to two distractors uniformly at random and shuffles
// them together with the correct answer. When the pool holds fewer than two
// distinct distractor forms, the option list simply comes out shorter.
func (g *Generator) buildOptions(correct string, distractors []string) []string {
	g.rnd.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	options := []string{correct}
	seen := map[string]bool{correct: true}
	for _, d := range distractors {
		if len(options) == 3 {
			break
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		options = append(options, d)
	}
	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// appendGrammarQuestions copies each topic's questions verbatim, keeping the
// authored option order
func appendGrammarQuestions(questions []models.Question, topics []models.GrammarTopic) []models.Question {
	for _, t := range topics {
		for _, q := range t.Questions {
			options := make([]string, len(q.Options))
			copy(options, q.Options)
			questions = append(questions, models.Question{
				Prompt:      q.Prompt,
				Options:     options,
				Answer:      q.Answer,
				Explanation: q.Explanation,
			})
		}
	}
	return questions
}

func (g *Generator) shuffle(questions []models.Question) {
	g.rnd.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}
