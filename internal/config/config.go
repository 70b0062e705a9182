package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	LLM      LLMConfig
	Planner  PlannerConfig
	Ingest   IngestConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	URL string
}

// LLMConfig selects the generative model provider. Empty keys are allowed at
// startup; calls fail later with utils.ErrMissingAPIKey.
type LLMConfig struct {
	Provider      string
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
}

type PlannerConfig struct {
	SpotPageSize    int
	MaxDestinations int
	PlanLockTTL     time.Duration
}

type IngestConfig struct {
	Workers   int
	BatchSize int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Database: DatabaseConfig{
			URL: v.GetString("POSTGRES_URL"),
		},
		LLM: LLMConfig{
			Provider:      strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER"))),
			GeminiAPIKey:  v.GetString("GEMINI_API_KEY"),
			GeminiModel:   v.GetString("GEMINI_MODEL"),
			OpenAIAPIKey:  v.GetString("OPENAI_API_KEY"),
			OpenAIModel:   v.GetString("OPENAI_MODEL"),
			OpenAIBaseURL: v.GetString("OPENAI_BASE_URL"),
		},
		Planner: PlannerConfig{
			SpotPageSize:    v.GetInt("SPOT_PAGE_SIZE"),
			MaxDestinations: v.GetInt("MAX_DESTINATIONS"),
			PlanLockTTL:     time.Duration(v.GetInt("PLAN_LOCK_TTL_SECONDS")) * time.Second,
		},
		Ingest: IngestConfig{
			Workers:   v.GetInt("INGEST_WORKERS"),
			BatchSize: v.GetInt("INGEST_BATCH_SIZE"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "prod")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LLM_PROVIDER", "gemini")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("SPOT_PAGE_SIZE", 50)
	v.SetDefault("MAX_DESTINATIONS", 10)
	v.SetDefault("PLAN_LOCK_TTL_SECONDS", 120)
	v.SetDefault("INGEST_WORKERS", 4)
	v.SetDefault("INGEST_BATCH_SIZE", 100)
}

func (c *Config) validate() error {
	switch c.LLM.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q: use 'gemini' or 'openai'", c.LLM.Provider)
	}
	if c.Planner.SpotPageSize < 1 {
		return fmt.Errorf("SPOT_PAGE_SIZE must be positive, got %d", c.Planner.SpotPageSize)
	}
	// The store's IN filter is bounded at 10 operands.
	if c.Planner.MaxDestinations < 1 || c.Planner.MaxDestinations > 10 {
		return fmt.Errorf("MAX_DESTINATIONS must be between 1 and 10, got %d", c.Planner.MaxDestinations)
	}
	if c.Ingest.Workers < 1 {
		c.Ingest.Workers = 1
	}
	if c.Ingest.BatchSize < 1 {
		c.Ingest.BatchSize = 100
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "dev" || c.Server.Env == "development"
}

func (c *Config) ServerAddr() string {
	return ":" + c.Server.Port
}
