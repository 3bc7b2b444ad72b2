package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Generator GeneratorConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig selects the persistence backend at startup. Everything
// downstream of the store interfaces is backend-agnostic.
type StoreConfig struct {
	Backend string // "json" or "postgres"
	DataDir string // json backend only
}

type DatabaseConfig struct {
	URL            string
	MaxConns       int
	MinConns       int
	MigrationsPath string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type GeneratorConfig struct {
	Provider         string // "huggingface", "openai", "anthropic", or "" for none
	FallbackProvider string
	HFAPIKey         string
	HFModel          string
	HFBaseURL        string
	OpenAIKey        string
	OpenAIModel      string
	AnthropicKey     string
	AnthropicModel   string
	Timeout          time.Duration
	CacheTTL         time.Duration
}

func Load() (*Config, error) {
	port, err := getEnvInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	maxConns, err := getEnvInt("DB_MAX_CONNS", 20)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	minConns, err := getEnvInt("DB_MIN_CONNS", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	genTimeout, err := getEnvInt("GENERATOR_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATOR_TIMEOUT_SECONDS: %w", err)
	}

	cacheTTL, err := getEnvInt("GENERATOR_CACHE_TTL_SECONDS", 86400)
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATOR_CACHE_TTL_SECONDS: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", "json"),
			DataDir: getEnv("DATA_DIR", "data"),
		},
		Database: DatabaseConfig{
			URL:            databaseURL(),
			MaxConns:       maxConns,
			MinConns:       minConns,
			MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Generator: GeneratorConfig{
			Provider:         getEnv("GENERATOR_PROVIDER", "huggingface"),
			FallbackProvider: getEnv("GENERATOR_FALLBACK_PROVIDER", ""),
			HFAPIKey:         getEnv("HF_API_KEY", ""),
			HFModel:          getEnv("HF_MODEL", "microsoft/DialoGPT-medium"),
			HFBaseURL:        getEnv("HF_BASE_URL", ""),
			OpenAIKey:        getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:      getEnv("OPENAI_MODEL", ""),
			AnthropicKey:     getEnv("ANTHROPIC_API_KEY", ""),
			AnthropicModel:   getEnv("ANTHROPIC_MODEL", ""),
			Timeout:          time.Duration(genTimeout) * time.Second,
			CacheTTL:         time.Duration(cacheTTL) * time.Second,
		},
	}

	return cfg, nil
}

// databaseURL prefers DATABASE_URL and otherwise assembles a URL from the
// conventional PG* variables, so deployments configured either way keep
// working.
func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getEnv("PGHOST", "")
	if host == "" {
		return ""
	}
	port := getEnv("PGPORT", "5432")
	user := getEnv("PGUSER", "postgres")
	password := getEnv("PGPASSWORD", "")
	database := getEnv("PGDATABASE", "postgres")

	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s", user, password, host, port, database)
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case "json", "postgres":
	default:
		return fmt.Errorf("STORE_BACKEND must be \"json\" or \"postgres\", got %q", c.Store.Backend)
	}

	var missing []string
	if c.Store.Backend == "postgres" && c.Database.URL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
