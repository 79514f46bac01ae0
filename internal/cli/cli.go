// Package cli is the interactive terminal front end
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/example/deutschtrainer/internal/quiz"
	"github.com/example/deutschtrainer/internal/trainer"
	"github.com/example/deutschtrainer/pkg/models"
)

// App runs the menu loop against injected streams, so tests can script a
// whole session
type App struct {
	trainer *trainer.Trainer
	in      *bufio.Reader
	out     io.Writer
}

// New creates a terminal app reading from in and writing to out
func New(t *trainer.Trainer, in io.Reader, out io.Writer) *App {
	return &App{trainer: t, in: bufio.NewReader(in), out: out}
}

// Run shows the main menu until the learner exits. It returns an error only
// when the input stream fails.
func (a *App) Run() error {
	for {
		a.printMenu()
		choice, err := a.readChoice(4)
		if err != nil {
			return err
		}
		switch choice {
		case 1:
			if err := a.startLevel(); err != nil {
				return err
			}
		case 2:
			if err := a.dailyReview(); err != nil {
				return err
			}
		case 3:
			a.showStatistics()
		case 4:
			fmt.Fprintln(a.out, "Auf Wiedersehen! Arrivederci!")
			return nil
		}
	}
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "=== Deutschland – Impara il tedesco ===")
	fmt.Fprintf(a.out, "Livello attuale: %d\n", a.trainer.CurrentLevel())
	fmt.Fprintln(a.out, "1. Inizia livello")
	fmt.Fprintln(a.out, "2. Ripasso giornaliero")
	fmt.Fprintln(a.out, "3. Statistiche")
	fmt.Fprintln(a.out, "4. Esci")
}

// readChoice prompts for an option number between 1 and max until it gets
// one
func (a *App) readChoice(max int) (int, error) {
	for {
		fmt.Fprint(a.out, "Seleziona un’opzione: ")
		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			return 0, err
		}
		if n, convErr := strconv.Atoi(strings.TrimSpace(line)); convErr == nil && n >= 1 && n <= max {
			return n, nil
		}
		fmt.Fprintf(a.out, "Inserisci un numero compreso tra 1 e %d.\n", max)
		if err != nil {
			return 0, err
		}
	}
}

func (a *App) startLevel() error {
	if a.trainer.AllLevelsDone() {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Hai completato tutti i livelli disponibili! Usa la modalità di ripasso per continuare a esercitarti.")
		return nil
	}
	level := a.trainer.CurrentLevel()
	fmt.Fprintf(a.out, "\n*** Inizio del livello %d ***\n", level)
	entries, topics := a.trainer.ContentForLevel(level)
	if len(entries) > 0 {
		fmt.Fprintln(a.out, "Vocaboli introdotti in questo livello:")
		for _, e := range entries {
			fmt.Fprintf(a.out, "- %s (plurale: %s) – %s\n", e.Term(), e.Plural, e.Translation)
		}
	}
	for _, t := range topics {
		fmt.Fprintf(a.out, "\nRegola: %s\n", t.Name)
		fmt.Fprintln(a.out, t.Explanation)
	}
	fmt.Fprint(a.out, "\nPremi INVIO per iniziare gli esercizi...")
	if _, err := a.in.ReadString('\n'); err != nil {
		return err
	}

	session := a.trainer.StartLevel(level)
	if err := a.runQuestionnaire(session); err != nil {
		return err
	}
	outcome, err := a.trainer.FinishLevel(level, session)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\nHai risposto correttamente al %d%% delle domande.\n", outcome.Percent)
	if outcome.Passed {
		fmt.Fprintln(a.out, "Complimenti! Hai superato il livello.")
	} else {
		fmt.Fprintln(a.out, "Non hai raggiunto l'80% di risposte corrette. Prova di nuovo il livello per superarlo.")
	}
	return nil
}

func (a *App) dailyReview() error {
	if !a.trainer.HasLearnedWords() {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Non hai ancora vocaboli da ripassare. Completa prima almeno un livello.")
		return nil
	}
	if a.trainer.ReviewedToday(time.Now()) {
		fmt.Fprint(a.out, "\nHai già eseguito il ripasso oggi. Vuoi ripassare di nuovo? (s/n): ")
		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			return err
		}
		if strings.ToLower(strings.TrimSpace(line)) != "s" {
			return nil
		}
	}

	session := a.trainer.StartReview()
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "*** Ripasso ***")
	if err := a.runQuestionnaire(session); err != nil {
		return err
	}
	outcome, err := a.trainer.FinishReview(session, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\nRipasso completato: %d%% di risposte corrette.\n", outcome.Percent)
	return nil
}

// runQuestionnaire plays every question of the session in order
func (a *App) runQuestionnaire(s *quiz.Session) error {
	for s.State() == quiz.StateAwaitingAnswer {
		q, err := s.Current()
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "\nDomanda %d/%d\n", s.Index()+1, s.Total())
		fmt.Fprintln(a.out, q.Prompt)
		for i, opt := range q.Options {
			fmt.Fprintf(a.out, "  %d. %s\n", i+1, opt)
		}
		choice, err := a.readChoice(len(q.Options))
		if err != nil {
			return err
		}
		correct, err := s.SubmitAnswer(q.Options[choice-1])
		if err != nil {
			return err
		}
		if correct {
			fmt.Fprintln(a.out, "✔️  Corretto!")
		} else {
			fmt.Fprintf(a.out, "❌  Sbagliato. La risposta corretta era: %s\n", q.Answer)
		}
		fmt.Fprintf(a.out, "Spiegazione: %s\n", q.Explanation)
	}
	return nil
}

func (a *App) showStatistics() {
	summary, err := a.trainer.AttemptStats()
	if err != nil {
		fmt.Fprintf(a.out, "\nErrore nel caricamento delle statistiche: %v\n", err)
		return
	}
	if summary == nil {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Statistiche non disponibili.")
		return
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "*** Statistiche ***")
	fmt.Fprintf(a.out, "Tentativi totali: %d\n", summary.TotalAttempts)
	fmt.Fprintf(a.out, "Tentativi di livello superati: %d\n", summary.PassedLevelAttempts)
	fmt.Fprintf(a.out, "Sessioni di ripasso: %d\n", summary.ReviewSessions)
	fmt.Fprintf(a.out, "Percentuale media: %.0f%%\n", summary.AveragePercent)
	recent, err := a.trainer.RecentAttempts(5)
	if err != nil || len(recent) == 0 {
		return
	}
	fmt.Fprintln(a.out, "Ultimi tentativi:")
	for _, att := range recent {
		fmt.Fprintf(a.out, "- %s\n", formatAttempt(att))
	}
}

// formatAttempt renders one history row for the statistics view
func formatAttempt(a models.Attempt) string {
	day := a.AttemptDate.Format("02/01/2006")
	if a.Mode == models.AttemptModeReview {
		return fmt.Sprintf("%s ripasso: %d%%", day, a.Percent)
	}
	esito := "non superato"
	if a.Passed {
		esito = "superato"
	}
	return fmt.Sprintf("%s livello %d: %d%% (%s)", day, a.Level, a.Percent, esito)
}
