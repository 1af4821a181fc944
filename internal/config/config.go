package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Log       LogConfig
	Eastmoney EastmoneyConfig
	Analytics AnalyticsConfig
	Snapshot  SnapshotConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// EastmoneyConfig holds data provider settings
type EastmoneyConfig struct {
	BaseURL    string
	ArchiveURL string
	Timeout    time.Duration
	RateLimit  float64 // requests per second, 0 disables
}

// AnalyticsConfig holds the parameters of the return and risk calculations
type AnalyticsConfig struct {
	NAVWindowDays   int
	RiskFreeRate    float64
	TradingDays     int
	MinObservations int
}

// SnapshotConfig controls the scheduled watchlist snapshot job
type SnapshotConfig struct {
	Enabled     bool
	Schedule    string // cron spec
	Concurrency int
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	p := &parser{}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/fund_analytics.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"http://localhost",
			}),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: p.getBool("LOG_PRETTY", false),
		},
		Eastmoney: EastmoneyConfig{
			BaseURL:    getEnv("EASTMONEY_BASE_URL", "https://fund.eastmoney.com"),
			ArchiveURL: getEnv("EASTMONEY_ARCHIVE_URL", "https://fundf10.eastmoney.com"),
			Timeout:    p.getDuration("EASTMONEY_TIMEOUT", 15*time.Second),
			RateLimit:  p.getFloat("EASTMONEY_RATE_LIMIT", 5),
		},
		Analytics: AnalyticsConfig{
			NAVWindowDays:   p.getInt("NAV_WINDOW_DAYS", 365),
			RiskFreeRate:    p.getFloat("RISK_FREE_RATE", 0.03),
			TradingDays:     p.getInt("TRADING_DAYS_PER_YEAR", 252),
			MinObservations: p.getInt("SHARPE_MIN_OBSERVATIONS", 30),
		},
		Snapshot: SnapshotConfig{
			Enabled:     p.getBool("SNAPSHOT_ENABLED", true),
			Schedule:    getEnv("SNAPSHOT_SCHEDULE", "30 21 * * 1-5"),
			Concurrency: p.getInt("SNAPSHOT_CONCURRENCY", 4),
		},
	}

	if p.err != nil {
		return nil, p.err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

func (c *Config) validate() error {
	if c.Analytics.NAVWindowDays <= 0 {
		return fmt.Errorf("NAV_WINDOW_DAYS must be positive, got %d", c.Analytics.NAVWindowDays)
	}
	if c.Analytics.TradingDays <= 0 {
		return fmt.Errorf("TRADING_DAYS_PER_YEAR must be positive, got %d", c.Analytics.TradingDays)
	}
	if c.Analytics.MinObservations < 2 {
		return fmt.Errorf("SHARPE_MIN_OBSERVATIONS must be at least 2, got %d", c.Analytics.MinObservations)
	}
	if c.Snapshot.Concurrency <= 0 {
		return fmt.Errorf("SNAPSHOT_CONCURRENCY must be positive, got %d", c.Snapshot.Concurrency)
	}
	if c.Snapshot.Enabled {
		if _, err := cron.ParseStandard(c.Snapshot.Schedule); err != nil {
			return fmt.Errorf("invalid SNAPSHOT_SCHEDULE %q: %w", c.Snapshot.Schedule, err)
		}
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvList splits a comma-separated environment variable
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parser reads typed environment variables and keeps the first failure.
type parser struct {
	err error
}

func (p *parser) fail(key, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
}

func (p *parser) getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		p.fail(key, value, err)
		return defaultValue
	}
	return n
}

func (p *parser) getFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		p.fail(key, value, err)
		return defaultValue
	}
	return f
}

func (p *parser) getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		p.fail(key, value, err)
		return defaultValue
	}
	return b
}

func (p *parser) getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		p.fail(key, value, err)
		return defaultValue
	}
	return d
}
