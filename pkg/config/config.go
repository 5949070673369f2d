package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	AIProviderService    = "service"
	AIProviderOpenRouter = "openrouter"
	AIProviderOpenAI     = "openai"
)

type Config struct {
	Port        string
	Env         string
	Version     string
	LogLevel    string
	FrontendURL []string

	RateLimitMax    int
	RateLimitWindow time.Duration

	Storage      string
	DatabaseURL  string
	SeedDemoData bool
	SeedFile     string

	PipelineSyncStatus       bool
	OnboardingAutoStatus     bool
	OfferExpiryInterval      time.Duration
	OfferDefaultValidityDays int

	AIProvider        string
	AIServiceURL      string
	AITimeout         time.Duration
	AICacheTTL        time.Duration
	AICacheSize       int
	AIFallbackFile    string
	CompensationTable string

	OpenRouterAPIKey   string
	OpenRouterBase     string
	OpenRouterModel    string
	OpenRouterAppTitle string
	OpenRouterReferer  string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	RedisURL     string
	KafkaBrokers []string
	KafkaTopic   string

	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	AuthRequired  bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "3001"),
		Env:         getEnv("APP_ENV", "development"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnvList("FRONTEND_URL", "http://localhost:5173"),

		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute),

		Storage:      strings.ToLower(getEnv("STORAGE", StorageMemory)),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SeedDemoData: getEnvBool("SEED_DEMO_DATA", true),
		SeedFile:     os.Getenv("SEED_FILE"),

		PipelineSyncStatus:       getEnvBool("PIPELINE_SYNC_STATUS", false),
		OnboardingAutoStatus:     getEnvBool("ONBOARDING_AUTO_STATUS", false),
		OfferExpiryInterval:      getEnvDuration("OFFER_EXPIRY_INTERVAL", time.Hour),
		OfferDefaultValidityDays: getEnvInt("OFFER_DEFAULT_VALIDITY_DAYS", 14),

		AIProvider:        strings.ToLower(getEnv("AI_PROVIDER", AIProviderService)),
		AIServiceURL:      getEnv("AI_SERVICE_URL", "http://localhost:8000"),
		AITimeout:         getEnvDuration("AI_TIMEOUT", 10*time.Second),
		AICacheTTL:        getEnvDuration("AI_CACHE_TTL", time.Hour),
		AICacheSize:       getEnvInt("AI_CACHE_SIZE", 1000),
		AIFallbackFile:    os.Getenv("AI_FALLBACK_FILE"),
		CompensationTable: os.Getenv("COMPENSATION_TABLE"),

		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBase:     getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:    getEnv("OPENROUTER_MODEL", "openai/gpt-4o-mini"),
		OpenRouterAppTitle: getEnv("OPENROUTER_APP_TITLE", "talent"),
		OpenRouterReferer:  os.Getenv("OPENROUTER_REFERER"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),

		RedisURL:     os.Getenv("REDIS_URL"),
		KafkaBrokers: getEnvList("KAFKA_BROKERS", ""),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "talent.pipeline"),

		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "talent-service"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		AuthRequired:  getEnvBool("AUTH_REQUIRED", false),
	}
	return cfg
}

// Development reports whether error details and pretty logs are enabled.
func (c Config) Development() bool { return c.Env == "development" }

// Validate rejects combinations the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORAGE=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE %q", c.Storage))
	}
	switch c.AIProvider {
	case AIProviderService:
	case AIProviderOpenRouter:
		if c.OpenRouterAPIKey == "" {
			errs = append(errs, errors.New("OPENROUTER_API_KEY is required when AI_PROVIDER=openrouter"))
		}
	case AIProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is required when AI_PROVIDER=openai"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown AI_PROVIDER %q", c.AIProvider))
	}
	if c.OfferDefaultValidityDays <= 0 {
		errs = append(errs, errors.New("OFFER_DEFAULT_VALIDITY_DAYS must be positive"))
	}
	if c.RateLimitMax <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_MAX must be positive"))
	}
	if c.Env == "production" && c.JWTSecret == "dev-secret-change" {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("15m") and plain seconds ("900").
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}

func getEnvList(key, def string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, def), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
