package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/example/deutschtrainer/internal/bot"
	"github.com/example/deutschtrainer/internal/catalog"
	"github.com/example/deutschtrainer/internal/cli"
	"github.com/example/deutschtrainer/internal/database"
	"github.com/example/deutschtrainer/internal/excel"
	"github.com/example/deutschtrainer/internal/progress"
	"github.com/example/deutschtrainer/internal/quiz"
	"github.com/example/deutschtrainer/internal/scheduler"
	"github.com/example/deutschtrainer/internal/trainer"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cat, err := buildCatalog()
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}

	progressPath := os.Getenv("PROGRESS_FILE")
	if progressPath == "" {
		progressPath = "progress.json"
	}
	store := progress.NewFileStore(progressPath)

	// The attempt history is optional: training works without it, only the
	// statistics view goes empty.
	var recorder trainer.AttemptRecorder
	db, err := database.Connect()
	if err != nil {
		log.Printf("Warning: attempt history unavailable: %v", err)
	} else {
		defer db.Close()
		recorder = database.NewAttemptRepository(db)
	}

	t := trainer.New(cat, store, quiz.New(), recorder)

	if os.Getenv("TRAINER_MODE") == "bot" {
		runBot(t)
		return
	}
	if err := cli.New(t, os.Stdin, os.Stdout).Run(); err != nil {
		log.Fatalf("Terminal session failed: %v", err)
	}
}

// buildCatalog combines the built-in content with an optional import file
func buildCatalog() (*catalog.Catalog, error) {
	entries := catalog.BuiltinEntries()
	topics := catalog.BuiltinTopics()
	if path := os.Getenv("CATALOG_FILE"); path != "" {
		imported, result, err := excel.ImportEntries(excel.DefaultImportConfig(path))
		if err != nil {
			return nil, err
		}
		for _, msg := range result.Errors {
			log.Printf("Warning: catalog import: %s", msg)
		}
		var duplicates int
		entries, duplicates = catalog.MergeEntries(entries, imported)
		log.Printf("Imported %d vocabulary entries from %s (%d rows skipped, %d duplicates)",
			result.Imported, path, result.Skipped, duplicates)
	}
	return catalog.New(entries, topics)
}

// runBot starts the Telegram front end with the review reminder scheduler
func runBot(t *trainer.Trainer) {
	config, err := bot.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to configure bot: %v", err)
	}
	b, err := bot.New(config, t)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	sched := scheduler.New(t, b)
	sched.Start()
	defer sched.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		b.Stop()
		cancel()
	}()

	log.Println("Bot started. Press Ctrl+C to stop.")
	if err := b.Start(ctx); err != nil && err != context.Canceled {
		log.Fatalf("Bot error: %v", err)
	}
	log.Println("Bot stopped")
}
