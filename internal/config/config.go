package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Engine   EngineConfig
	Goals    GoalsConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// EngineConfig tunes the attribution batch engine.
type EngineConfig struct {
	// EstimateWindowStart/End bound the even-spread fallback used when a
	// shift has no usable timestamps (inclusive hours, wall clock).
	EstimateWindowStart int
	EstimateWindowEnd   int

	// MaxParallelUnits caps how many (location, date) units run at once.
	MaxParallelUnits int

	// RecomputeInterval is how often the cron job re-runs yesterday's
	// attribution for every known location.
	RecomputeInterval time.Duration
}

// GoalsConfig holds the productivity goal thresholds. Labor cost values
// are percentages, revenue values are currency per worked hour.
type GoalsConfig struct {
	MaxLaborCostGreat      float64
	MaxLaborCostOK         float64
	MinRevenuePerHourGreat float64
	MinRevenuePerHourOK    float64
}

func Load() (*Config, error) {
	// Optional in production; environments without a .env file rely on
	// real environment variables.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "horeca-productivity"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Engine configuration
	windowStart, err := strconv.Atoi(getEnv("ENGINE_ESTIMATE_WINDOW_START", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid ENGINE_ESTIMATE_WINDOW_START: %w", err)
	}
	windowEnd, err := strconv.Atoi(getEnv("ENGINE_ESTIMATE_WINDOW_END", "17"))
	if err != nil {
		return nil, fmt.Errorf("invalid ENGINE_ESTIMATE_WINDOW_END: %w", err)
	}
	maxParallel, err := strconv.Atoi(getEnv("ENGINE_MAX_PARALLEL_UNITS", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid ENGINE_MAX_PARALLEL_UNITS: %w", err)
	}
	recomputeInterval, err := time.ParseDuration(getEnv("ENGINE_RECOMPUTE_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ENGINE_RECOMPUTE_INTERVAL: %w", err)
	}

	config.Engine = EngineConfig{
		EstimateWindowStart: windowStart,
		EstimateWindowEnd:   windowEnd,
		MaxParallelUnits:    maxParallel,
		RecomputeInterval:   recomputeInterval,
	}

	// Goal thresholds. Business policy values, overridable per deployment.
	maxLaborGreat, err := getEnvFloat("GOAL_MAX_LABOR_COST_GREAT", 30.0)
	if err != nil {
		return nil, err
	}
	maxLaborOK, err := getEnvFloat("GOAL_MAX_LABOR_COST_OK", 32.5)
	if err != nil {
		return nil, err
	}
	minRevenueGreat, err := getEnvFloat("GOAL_MIN_REVENUE_PER_HOUR_GREAT", 65.0)
	if err != nil {
		return nil, err
	}
	minRevenueOK, err := getEnvFloat("GOAL_MIN_REVENUE_PER_HOUR_OK", 50.0)
	if err != nil {
		return nil, err
	}

	config.Goals = GoalsConfig{
		MaxLaborCostGreat:      maxLaborGreat,
		MaxLaborCostOK:         maxLaborOK,
		MinRevenuePerHourGreat: minRevenueGreat,
		MinRevenuePerHourOK:    minRevenueOK,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Engine.EstimateWindowStart < 0 || c.Engine.EstimateWindowStart > 23 {
		return fmt.Errorf("ENGINE_ESTIMATE_WINDOW_START must be an hour between 0 and 23")
	}
	if c.Engine.EstimateWindowEnd < c.Engine.EstimateWindowStart || c.Engine.EstimateWindowEnd > 23 {
		return fmt.Errorf("ENGINE_ESTIMATE_WINDOW_END must be an hour between the window start and 23")
	}
	if c.Engine.MaxParallelUnits < 1 {
		return fmt.Errorf("ENGINE_MAX_PARALLEL_UNITS must be at least 1")
	}
	if c.Goals.MaxLaborCostGreat > c.Goals.MaxLaborCostOK {
		return fmt.Errorf("GOAL_MAX_LABOR_COST_GREAT must not exceed GOAL_MAX_LABOR_COST_OK")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
