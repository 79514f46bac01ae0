// Package bot is the Telegram front end. It serves exactly one learner,
// identified by TELEGRAM_OWNER_ID, and drives the same trainer facade as
// the terminal front end.
package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/example/deutschtrainer/internal/quiz"
	"github.com/example/deutschtrainer/internal/trainer"
)

// Callback data values for the inline keyboards. Answer buttons carry the
// question index and the option index, so taps on an outdated keyboard can
// be told apart from answers to the current question.
const (
	callbackMenu         = "menu"
	callbackStartLevel   = "start_level"
	callbackStartReview  = "start_review"
	callbackReviewAgain  = "review_again"
	callbackStats        = "stats"
	callbackAnswerPrefix = "answer_"
)

// MenuButton represents a button in an inline keyboard
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// sessionKind tells how the active session will be scored when it completes
type sessionKind int

const (
	kindNone sessionKind = iota
	kindLevel
	kindReview
)

// Bot runs the update loop for the single learner. Updates are handled one
// at a time on the loop goroutine, so the session fields need no lock.
type Bot struct {
	api     *tgbotapi.BotAPI
	config  *Config
	trainer *trainer.Trainer

	session *quiz.Session
	kind    sessionKind
	level   int
}

// New creates the bot and verifies the token against the Telegram API
func New(config *Config, t *trainer.Trainer) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(config.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %v", err)
	}
	return &Bot{api: api, config: config, trainer: t}, nil
}

// Start runs the long-polling update loop until ctx is cancelled or the
// update channel closes
func (b *Bot) Start(ctx context.Context) error {
	log.Printf("Authorized on account %s", b.api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(update)
		}
	}
}

// Stop shuts down the update channel
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		b.handleMessage(update.Message)
	} else if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.Chat.ID != b.config.OwnerChatID {
		b.send(tgbotapi.NewMessage(message.Chat.ID, "Questo allenatore è personale. Imposta TELEGRAM_OWNER_ID per usarlo."))
		return
	}
	if !message.IsCommand() {
		b.send(tgbotapi.NewMessage(message.Chat.ID, "Usa /menu per mostrare il menu principale."))
		return
	}
	switch message.Command() {
	case "start":
		b.sendWelcome(message.Chat.ID)
	case "menu":
		b.sendMenu(message.Chat.ID)
	case "stats":
		b.sendStatistics(message.Chat.ID)
	default:
		b.send(tgbotapi.NewMessage(message.Chat.ID, "Comando sconosciuto. Usa /menu per mostrare il menu principale."))
	}
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	// Answer the callback right away to clear the client's loading state
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.Printf("Warning: failed to answer callback: %v", err)
	}
	chatID := callback.Message.Chat.ID
	if chatID != b.config.OwnerChatID {
		return
	}
	switch {
	case callback.Data == callbackMenu:
		b.sendMenu(chatID)
	case callback.Data == callbackStartLevel:
		b.startLevel(chatID)
	case callback.Data == callbackStartReview:
		b.startReview(chatID, false)
	case callback.Data == callbackReviewAgain:
		b.startReview(chatID, true)
	case callback.Data == callbackStats:
		b.sendStatistics(chatID)
	case strings.HasPrefix(callback.Data, callbackAnswerPrefix):
		b.handleAnswer(chatID, strings.TrimPrefix(callback.Data, callbackAnswerPrefix))
	default:
		b.send(tgbotapi.NewMessage(chatID, "⚠️ Azione sconosciuta. Usa /menu per ricominciare."))
	}
}

func (b *Bot) sendWelcome(chatID int64) {
	text := "Willkommen! 🇩🇪\n\n" +
		"Questo bot ti guida attraverso livelli progressivi di tedesco: vocaboli, plurali e grammatica.\n\n" +
		"Comandi disponibili:\n" +
		"/menu - Menu principale\n" +
		"/stats - Statistiche"
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard(b.menuButtons())
	b.send(msg)
}

func (b *Bot) menuButtons() [][]MenuButton {
	return [][]MenuButton{
		{{Text: "📖 Inizia livello", CallbackData: callbackStartLevel}},
		{{Text: "🔁 Ripasso giornaliero", CallbackData: callbackStartReview}},
		{{Text: "📊 Statistiche", CallbackData: callbackStats}},
	}
}

func (b *Bot) sendMenu(chatID int64) {
	text := fmt.Sprintf("=== Deutschland – Impara il tedesco ===\nLivello attuale: %d", b.trainer.CurrentLevel())
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard(b.menuButtons())
	b.send(msg)
}

func (b *Bot) startLevel(chatID int64) {
	if b.session != nil {
		b.send(tgbotapi.NewMessage(chatID, "Hai già una sessione in corso. Completala prima di iniziarne un’altra."))
		return
	}
	if b.trainer.AllLevelsDone() {
		msg := tgbotapi.NewMessage(chatID, "Hai completato tutti i livelli disponibili! Usa la modalità di ripasso per continuare a esercitarti.")
		msg.ReplyMarkup = createKeyboard(b.menuButtons())
		b.send(msg)
		return
	}
	level := b.trainer.CurrentLevel()
	entries, topics := b.trainer.ContentForLevel(level)

	var sb strings.Builder
	fmt.Fprintf(&sb, "*** Inizio del livello %d ***\n", level)
	if len(entries) > 0 {
		sb.WriteString("\nVocaboli introdotti in questo livello:\n")
		for _, e := range entries {
			fmt.Fprintf(&sb, "- %s (plurale: %s) – %s\n", e.Term(), e.Plural, e.Translation)
		}
	}
	for _, t := range topics {
		fmt.Fprintf(&sb, "\nRegola: %s\n%s\n", t.Name, t.Explanation)
	}
	b.send(tgbotapi.NewMessage(chatID, sb.String()))

	b.session = b.trainer.StartLevel(level)
	b.kind = kindLevel
	b.level = level
	b.sendCurrentQuestion(chatID)
}

func (b *Bot) startReview(chatID int64, force bool) {
	if b.session != nil {
		b.send(tgbotapi.NewMessage(chatID, "Hai già una sessione in corso. Completala prima di iniziarne un’altra."))
		return
	}
	if !b.trainer.HasLearnedWords() {
		msg := tgbotapi.NewMessage(chatID, "Non hai ancora vocaboli da ripassare. Completa prima almeno un livello.")
		msg.ReplyMarkup = createKeyboard(b.menuButtons())
		b.send(msg)
		return
	}
	if !force && b.trainer.ReviewedToday(time.Now()) {
		msg := tgbotapi.NewMessage(chatID, "Hai già eseguito il ripasso oggi. Vuoi ripassare di nuovo?")
		msg.ReplyMarkup = createKeyboard([][]MenuButton{
			{{Text: "Sì", CallbackData: callbackReviewAgain}, {Text: "No", CallbackData: callbackMenu}},
		})
		b.send(msg)
		return
	}

	b.send(tgbotapi.NewMessage(chatID, "*** Ripasso ***"))
	b.session = b.trainer.StartReview()
	b.kind = kindReview
	b.sendCurrentQuestion(chatID)
}

// sendCurrentQuestion shows the session's current question with one button
// per option, or finishes the session when nothing is left
func (b *Bot) sendCurrentQuestion(chatID int64) {
	if b.session.State() == quiz.StateComplete {
		b.finishSession(chatID)
		return
	}
	q, err := b.session.Current()
	if err != nil {
		log.Printf("Warning: no current question: %v", err)
		b.resetSession()
		return
	}
	var rows [][]MenuButton
	for i, opt := range q.Options {
		rows = append(rows, []MenuButton{{
			Text:         opt,
			CallbackData: fmt.Sprintf("%s%d_%d", callbackAnswerPrefix, b.session.Index(), i),
		}})
	}
	text := fmt.Sprintf("Domanda %d/%d\n%s", b.session.Index()+1, b.session.Total(), q.Prompt)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard(rows)
	b.send(msg)
}

// handleAnswer scores a tapped option button. data is "<question>_<option>".
func (b *Bot) handleAnswer(chatID int64, data string) {
	if b.session == nil {
		b.send(tgbotapi.NewMessage(chatID, "Nessuna sessione attiva. Usa /menu per iniziare."))
		return
	}
	parts := strings.SplitN(data, "_", 2)
	if len(parts) != 2 {
		return
	}
	questionIdx, err := strconv.Atoi(parts[0])
	if err != nil || questionIdx != b.session.Index() {
		// Tap on a question that was already answered
		return
	}
	q, err := b.session.Current()
	if err != nil {
		b.resetSession()
		return
	}
	optionIdx, err := strconv.Atoi(parts[1])
	if err != nil || optionIdx < 0 || optionIdx >= len(q.Options) {
		return
	}
	correct, err := b.session.SubmitAnswer(q.Options[optionIdx])
	if err != nil {
		b.resetSession()
		return
	}
	var sb strings.Builder
	if correct {
		sb.WriteString("✔️  Corretto!\n")
	} else {
		fmt.Fprintf(&sb, "❌  Sbagliato. La risposta corretta era: %s\n", q.Answer)
	}
	fmt.Fprintf(&sb, "Spiegazione: %s", q.Explanation)
	b.send(tgbotapi.NewMessage(chatID, sb.String()))
	b.sendCurrentQuestion(chatID)
}

// finishSession scores the completed session and shows the outcome
func (b *Bot) finishSession(chatID int64) {
	session := b.session
	kind := b.kind
	level := b.level
	b.resetSession()

	var text string
	switch kind {
	case kindLevel:
		outcome, err := b.trainer.FinishLevel(level, session)
		if err != nil {
			log.Printf("Error finishing level: %v", err)
			return
		}
		text = fmt.Sprintf("Hai risposto correttamente al %d%% delle domande.", outcome.Percent)
		if outcome.Passed {
			text += "\nComplimenti! Hai superato il livello."
		} else {
			text += "\nNon hai raggiunto l'80% di risposte corrette. Prova di nuovo il livello per superarlo."
		}
	case kindReview:
		outcome, err := b.trainer.FinishReview(session, time.Now())
		if err != nil {
			log.Printf("Error finishing review: %v", err)
			return
		}
		text = fmt.Sprintf("Ripasso completato: %d%% di risposte corrette.", outcome.Percent)
	default:
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createKeyboard(b.menuButtons())
	b.send(msg)
}

func (b *Bot) resetSession() {
	b.session = nil
	b.kind = kindNone
	b.level = 0
}

func (b *Bot) sendStatistics(chatID int64) {
	summary, err := b.trainer.AttemptStats()
	if err != nil {
		log.Printf("Error loading statistics: %v", err)
		b.send(tgbotapi.NewMessage(chatID, "❌ Errore nel caricamento delle statistiche."))
		return
	}
	rec := b.trainer.CurrentProgress()
	var sb strings.Builder
	sb.WriteString("📊 Statistiche\n\n")
	fmt.Fprintf(&sb, "Livello attuale: %d\n", rec.CurrentLevel)
	fmt.Fprintf(&sb, "Vocaboli imparati: %d\n", len(rec.LearnedWords))
	if summary != nil {
		fmt.Fprintf(&sb, "Tentativi totali: %d\n", summary.TotalAttempts)
		fmt.Fprintf(&sb, "Tentativi di livello superati: %d\n", summary.PassedLevelAttempts)
		fmt.Fprintf(&sb, "Sessioni di ripasso: %d\n", summary.ReviewSessions)
		fmt.Fprintf(&sb, "Percentuale media: %.0f%%\n", summary.AveragePercent)
	}
	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ReplyMarkup = createKeyboard(b.menuButtons())
	b.send(msg)
}

// send delivers a message, logging failures instead of propagating them
func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// SendReviewReminder implements the scheduler's Notifier. It runs on the
// scheduler goroutine and only touches the API client and the immutable
// config.
func (b *Bot) SendReviewReminder(wordCount int) error {
	text := fmt.Sprintf("🔔 Hai %d vocaboli da ripassare oggi! Usa /menu e scegli il ripasso giornaliero.", wordCount)
	if wordCount == 1 {
		text = "🔔 Hai 1 vocabolo da ripassare oggi! Usa /menu e scegli il ripasso giornaliero."
	}
	if _, err := b.api.Send(tgbotapi.NewMessage(b.config.OwnerChatID, text)); err != nil {
		return fmt.Errorf("failed to send review reminder: %v", err)
	}
	return nil
}
