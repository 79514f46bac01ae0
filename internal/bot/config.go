package bot

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the Telegram front end settings
type Config struct {
	// Bot API token
	Token string
	// Chat of the single learner the trainer belongs to
	OwnerChatID int64
}

// ConfigFromEnv builds the bot configuration from environment variables
func ConfigFromEnv() (*Config, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}
	ownerStr := os.Getenv("TELEGRAM_OWNER_ID")
	if ownerStr == "" {
		return nil, fmt.Errorf("TELEGRAM_OWNER_ID environment variable is not set")
	}
	owner, err := strconv.ParseInt(ownerStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_OWNER_ID: %v", err)
	}
	return &Config{Token: token, OwnerChatID: owner}, nil
}
