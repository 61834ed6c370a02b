package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURI string `env:"DATABASE_URI" env-required:"true"`

	LogMode string `env:"LOG_MODE" env-default:"dev"`

	PollInterval   time.Duration `env:"POLL_INTERVAL" env-default:"1m"`
	MaxConcurrency int           `env:"MAX_CONCURRENCY" env-default:"8"`

	AIAPIKey  string `env:"AI_API_KEY"`
	AIBaseURL string `env:"AI_BASE_URL" env-default:"https://openrouter.ai/api/v1"`
	AIModel   string `env:"AI_MODEL" env-default:"openai/gpt-4o-mini"`

	// Daily AI generation caps, keyed by UTC calendar day.
	UserDailyCap   int `env:"USER_DAILY_CAP" env-default:"1"`
	GlobalDailyCap int `env:"GLOBAL_DAILY_CAP" env-default:"100"`

	// Optional draft-ready notifications over Telegram.
	TelegramToken string `env:"TELEGRAM_TOKEN"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional in production
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
