package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServerPort  string
	CORSOrigins []string

	MongoURI      string
	MongoDatabase string

	ResultsEnabled bool
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string

	RedisAddr     string
	RedisPassword string
	TopicCacheTTL time.Duration

	OpenAIAPIKey    string
	OpenAIAPIURL    string
	OpenAIModel     string
	FeedbackTimeout time.Duration

	SampleSize     int
	SessionIdleTTL time.Duration
	DefaultLocale  string
}

func Load() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),

		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "interview-helper"),

		ResultsEnabled: getEnvBool("RESULTS_ENABLED", true),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "interview_helper"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		TopicCacheTTL: getEnvDuration("TOPIC_CACHE_TTL", 5*time.Minute),

		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIAPIURL:    getEnv("OPENAI_API_URL", "https://api.openai.com/v1"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o"),
		FeedbackTimeout: getEnvDuration("FEEDBACK_TIMEOUT", 60*time.Second),

		SampleSize:     getEnvInt("SAMPLE_SIZE", 10),
		SessionIdleTTL: getEnvDuration("SESSION_IDLE_TTL", 2*time.Hour),
		DefaultLocale:  getEnv("DEFAULT_LOCALE", "en"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return b
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getEnvList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
