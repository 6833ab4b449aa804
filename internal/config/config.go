package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pageforge/landing-backend/internal/entity"
	pkgRetry "github.com/pageforge/landing-backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Database configuration
	DatabaseURL         string        `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// External service configurations
	OpenAICfg OpenAIConfig `envPrefix:"OPENAI_"`
	ImagesCfg ImagesConfig `envPrefix:"IMAGES_"`

	// Wizard session cache configuration
	WizardCfg WizardCacheConfig `envPrefix:"WIZARD_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Pricing plans (loaded from JSON file)
	PricingPlans []entity.PricingPlan

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS,notEmpty"`

	// Environment (set from flag, not from env var)
	Environment string
}

// OpenAIConfig holds the text-generation provider configuration
type OpenAIConfig struct {
	APIKey         string               `env:"API_KEY,notEmpty"`
	Model          string               `env:"MODEL" envDefault:"gpt-4o"`
	RequestTimeout time.Duration        `env:"REQUEST_TIMEOUT" envDefault:"45s"`
	Temperature    float64              `env:"TEMPERATURE" envDefault:"0.7"`
	MaxTokens      int                  `env:"MAX_TOKENS" envDefault:"2500"`
	MaxFieldLength int                  `env:"MAX_FIELD_LENGTH" envDefault:"600"`
	Retry          pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// ImagesConfig holds the image inference provider configuration
type ImagesConfig struct {
	HTTPClientConfig
	Model string               `env:"MODEL" envDefault:"black-forest-labs/FLUX.1-schnell"`
	Retry pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// WizardCacheConfig controls the in-memory wizard session cache
type WizardCacheConfig struct {
	CacheTTL             time.Duration `env:"CACHE_TTL" envDefault:"15m"`
	CacheCleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"5m"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"60s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL,notEmpty"`
}

// pricingPlans represents the structure of pricing_plans.json
type pricingPlans struct {
	Plans []entity.PricingPlan `json:"plans"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Load pricing plans from JSON file
	if err := loadPricingPlans(cfg); err != nil {
		return nil, fmt.Errorf("load pricing plans: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		return fmt.Errorf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns)
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns)
	}

	if cfg.OpenAICfg.Temperature < 0 || cfg.OpenAICfg.Temperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be between 0 and 2, got %f", cfg.OpenAICfg.Temperature)
	}

	if cfg.OpenAICfg.MaxFieldLength < 50 {
		return fmt.Errorf("OPENAI_MAX_FIELD_LENGTH must be at least 50, got %d", cfg.OpenAICfg.MaxFieldLength)
	}

	return nil
}

var defaultPricingPlans = []entity.PricingPlan{
	{Name: "starter", Price: "R$49/mo", Description: "One landing page, basic support"},
	{Name: "professional", Price: "R$99/mo", Description: "Up to five landing pages, custom domain"},
	{Name: "enterprise", Price: "R$249/mo", Description: "Unlimited pages, priority support"},
}

func loadPricingPlans(cfg *Config) error {
	configPath := filepath.Join("internal", "config", "pricing_plans.json")

	// Check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Warning: pricing plans file not found at %s, using default plans\n", configPath)
		cfg.PricingPlans = defaultPricingPlans
		return nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read pricing plans file: %w", err)
	}

	var plansData pricingPlans
	if err := json.Unmarshal(data, &plansData); err != nil {
		return fmt.Errorf("parse pricing plans JSON: %w", err)
	}

	if len(plansData.Plans) == 0 {
		return fmt.Errorf("pricing plans file contains no plans: %s", configPath)
	}

	cfg.PricingPlans = plansData.Plans

	fmt.Printf("Loaded %d pricing plans from %s\n", len(cfg.PricingPlans), configPath)
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
