package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
	ServerPort    string
	PollTimeout   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system env")
	}

	return &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		WebhookURL:    getEnv("WEBHOOK_URL", ""),
		WebhookSecret: getEnv("WEBHOOK_SECRET", ""),
		ServerPort:    getEnv("PORT", "8080"),
		PollTimeout:   getEnv("POLL_TIMEOUT", "30"),
	}
}

// PollTimeoutSeconds parses POLL_TIMEOUT, falling back to 30 and
// logging when the value is not a positive integer.
func (c *Config) PollTimeoutSeconds() int {
	n, err := strconv.Atoi(c.PollTimeout)
	if err != nil || n <= 0 {
		log.Printf("invalid POLL_TIMEOUT %q, using default 30", c.PollTimeout)
		return 30
	}
	return n
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
