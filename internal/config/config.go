package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Telegram TelegramConfig
	Ai       AIConfig
	Booking  BookingConfig
	Session  SessionConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type TelegramConfig struct {
	BotToken string
}

type AIConfig struct {
	LLMProvider       string // "ollama" or "openai"
	LLMModel          string // e.g. "llama3", "gpt-4o-mini"
	OllamaBaseURL     string
	OpenAIAPIKey      string
	EmbeddingProvider string // "ollama" or "openai"
	EmbeddingModel    string // e.g. "nomic-embed-text", "text-embedding-3-small"
}

type BookingConfig struct {
	ServicedCity     string  // city the pickup service currently covers
	DefaultWeightKg  float64 // estimated weight when pieces can't be parsed
	ExpressSurcharge float64 // fraction added on express delivery
	MinWeightKg      float64
	MaxWeightKg      float64
}

type SessionConfig struct {
	Store        string        // "memory" or "redis"
	StaleAfter   time.Duration // inactivity before an in-progress booking is discarded
	SweepEvery   time.Duration // memory store purge interval
	RedisKeyBase string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "ollama"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "nomic-embed-text"),
		},
		Booking: BookingConfig{
			ServicedCity:     getEnv("SERVICED_CITY", "pune"),
			DefaultWeightKg:  getEnvAsFloat("DEFAULT_WEIGHT_KG", 3.0),
			ExpressSurcharge: getEnvAsFloat("EXPRESS_SURCHARGE", 0.30),
			MinWeightKg:      getEnvAsFloat("MIN_WEIGHT_KG", 0.5),
			MaxWeightKg:      getEnvAsFloat("MAX_WEIGHT_KG", 100.0),
		},
		Session: SessionConfig{
			Store:        getEnv("SESSION_STORE", "memory"),
			StaleAfter:   getEnvAsDuration("SESSION_STALE_AFTER", 30*time.Minute),
			SweepEvery:   getEnvAsDuration("SESSION_SWEEP_EVERY", 10*time.Minute),
			RedisKeyBase: getEnv("SESSION_REDIS_KEY_BASE", "laundryops:session"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
