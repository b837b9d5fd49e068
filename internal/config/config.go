package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	LogLevel    string
	Environment string
	CORSOrigins string

	// Upstream credentials. YouTubeAPIKey and OpenAIAPIKey are required;
	// Load fails fast when either is missing.
	YouTubeAPIKey string
	OpenAIAPIKey  string
	OpenAIBaseURL string

	CompletionModel string
	EmbeddingModel  string
	MaxTokens       int

	// Pipeline tuning.
	MaxChunkSize      int
	MaxComments       int
	ChannelBatchSize  int
	TranscriptRetries int
	TranscriptBackoff time.Duration
	UpstreamTimeout   time.Duration
	CompletionTimeout time.Duration
}

// Load reads configuration from the environment (a .env file is honored
// when present) and validates required secrets.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("ENVIRONMENT", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),

		CompletionModel: getEnv("COMPLETION_MODEL", "gpt-4o-mini"),
		EmbeddingModel:  getEnv("EMBEDDING_MODEL", "text-embedding-ada-002"),
		MaxTokens:       getEnvInt("MAX_TOKENS", 3500),

		MaxChunkSize:      getEnvInt("MAX_CHUNK_SIZE", 10000),
		MaxComments:       getEnvInt("MAX_COMMENTS", 50),
		ChannelBatchSize:  getEnvInt("CHANNEL_BATCH_SIZE", 5),
		TranscriptRetries: getEnvInt("TRANSCRIPT_RETRIES", 3),
		TranscriptBackoff: getEnvDuration("TRANSCRIPT_BACKOFF", 2*time.Second),
		UpstreamTimeout:   getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		CompletionTimeout: getEnvDuration("COMPLETION_TIMEOUT", 2*time.Minute),
	}

	if cfg.YouTubeAPIKey == "" {
		return nil, fmt.Errorf("YOUTUBE_API_KEY environment variable must be set")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable must be set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
