package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment.
type Config struct {
	BotToken    string
	HTTPAddr    string
	Timezone    string
	DailyPrompt string
	DailyAt     string
	OrderName   string
}

// Load reads .env (outside production) and the environment. Missing
// required vars fail fast.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("missing env var: BOT_TOKEN")
	}

	return &Config{
		BotToken:    token,
		HTTPAddr:    getenv("HTTP_ADDR", ":8080"),
		Timezone:    getenv("TIMEZONE", "Asia/Phnom_Penh"),
		DailyPrompt: getenv("DAILY_PROMPT", "ថ្ងៃនេះបានម្ហូបអ្វី?"),
		DailyAt:     getenv("DAILY_AT", "08:00"),
		OrderName:   getenv("ORDER_NAME", "Seyha"),
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
