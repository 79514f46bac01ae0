package cli

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/example/deutschtrainer/internal/catalog"
	"github.com/example/deutschtrainer/internal/progress"
	"github.com/example/deutschtrainer/internal/quiz"
	"github.com/example/deutschtrainer/internal/trainer"
	"github.com/example/deutschtrainer/pkg/models"
)

// singleWordTrainer builds a trainer over a one-entry catalog. With a single
// entry every generated question has exactly one option, so a scripted "1"
// always answers correctly whatever the shuffle order.
func singleWordTrainer(t *testing.T) (*trainer.Trainer, *progress.FileStore) {
	t.Helper()
	entries := []models.VocabularyEntry{
		{Level: 1, Singular: "Kran", Article: "der", Plural: "Kräne", Translation: "gru", Explanation: "spiegazione"},
	}
	c, err := catalog.New(entries, nil)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	store := progress.NewFileStore(filepath.Join(t.TempDir(), "progress.json"))
	return trainer.New(c, store, quiz.NewWithSource(rand.NewSource(1)), nil), store
}

func TestFullSession(t *testing.T) {
	tr, store := singleWordTrainer(t)

	// Bad menu input, pass level 1, review, decline the repeat review,
	// show statistics, exit.
	input := "9\n" +
		"1\n" + "\n" + "1\n" + "1\n" +
		"2\n" + "1\n" +
		"2\n" + "n\n" +
		"3\n" +
		"4\n"
	var out bytes.Buffer
	app := New(tr, strings.NewReader(input), &out)
	if err := app.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"=== Deutschland – Impara il tedesco ===",
		"Inserisci un numero compreso tra 1 e 4.",
		"*** Inizio del livello 1 ***",
		"Vocaboli introdotti in questo livello:",
		"- der Kran (plurale: Kräne) – gru",
		"Premi INVIO per iniziare gli esercizi...",
		"Domanda 1/2",
		"✔️  Corretto!",
		"Spiegazione: spiegazione",
		"Hai risposto correttamente al 100% delle domande.",
		"Complimenti! Hai superato il livello.",
		"Livello attuale: 2",
		"*** Ripasso ***",
		"Ripasso completato: 100% di risposte corrette.",
		"Hai già eseguito il ripasso oggi. Vuoi ripassare di nuovo? (s/n):",
		"Statistiche non disponibili.",
		"Auf Wiedersehen! Arrivederci!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}

	rec := store.Load()
	if rec.CurrentLevel != 2 {
		t.Errorf("expected saved level 2, got %d", rec.CurrentLevel)
	}
	if len(rec.LearnedWords) != 1 || rec.LearnedWords[0] != "Kran" {
		t.Errorf("expected Kran learned, got %v", rec.LearnedWords)
	}
	if !rec.ReviewedOn(time.Now()) {
		t.Errorf("expected the review stamped today, got %q", rec.LastReviewDate)
	}
	if rec.Scores[1] != 100 {
		t.Errorf("expected score 100 for level 1, got %d", rec.Scores[1])
	}
}

func TestAllLevelsDoneMessage(t *testing.T) {
	tr, _ := singleWordTrainer(t)

	// Pass the only level, then try to start another one
	input := "1\n" + "\n" + "1\n" + "1\n" +
		"1\n" +
		"4\n"
	var out bytes.Buffer
	app := New(tr, strings.NewReader(input), &out)
	if err := app.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Hai completato tutti i livelli disponibili!") {
		t.Errorf("expected the all-levels-done message")
	}
}

func TestReviewWithoutLearnedWords(t *testing.T) {
	tr, _ := singleWordTrainer(t)

	input := "2\n" + "4\n"
	var out bytes.Buffer
	app := New(tr, strings.NewReader(input), &out)
	if err := app.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Non hai ancora vocaboli da ripassare. Completa prima almeno un livello.") {
		t.Errorf("expected the no-vocabulary message")
	}
}

func TestFormatAttempt(t *testing.T) {
	day := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		attempt models.Attempt
		want    string
	}{
		{
			name:    "passed level",
			attempt: models.Attempt{Mode: models.AttemptModeLevel, Level: 2, Percent: 85, Passed: true, AttemptDate: day},
			want:    "25/08/2026 livello 2: 85% (superato)",
		},
		{
			name:    "failed level",
			attempt: models.Attempt{Mode: models.AttemptModeLevel, Level: 1, Percent: 40, AttemptDate: day},
			want:    "25/08/2026 livello 1: 40% (non superato)",
		},
		{
			name:    "review",
			attempt: models.Attempt{Mode: models.AttemptModeReview, Percent: 70, AttemptDate: day},
			want:    "25/08/2026 ripasso: 70%",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAttempt(tt.attempt); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
