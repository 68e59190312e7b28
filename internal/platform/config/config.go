package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverSQLite = "sqlite"
	DriverPgsql  = "pgsql"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StorageDriver string
	SQLitePath    string
	DatabaseURL   string

	// Rates API
	RatesAPIURL          string
	RatesRefreshInterval time.Duration
	RatesFetchTimeout    time.Duration

	// Fallback country selection for a fresh install
	DefaultHomeCountry       string
	DefaultComparisonCountry string

	CORSAllowedOrigins string
	RateLimit          string

	// Analytics (disabled when the key is empty)
	PosthogAPIKey string
	PosthogHost   string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_DRIVER", DriverSQLite)
	viper.SetDefault("SQLITE_PATH", "fx.db")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("RATES_API_URL", "https://open.er-api.com/v6/latest/USD")
	viper.SetDefault("RATES_REFRESH_INTERVAL", "1h")
	viper.SetDefault("RATES_FETCH_TIMEOUT", "10s")
	viper.SetDefault("HOME_COUNTRY_DEFAULT", "usa")
	viper.SetDefault("COMPARISON_COUNTRY_DEFAULT", "india")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_HOST", "https://us.i.posthog.com")

	// Environment variables override .env values, which override defaults.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.StorageDriver = viper.GetString("STORAGE_DRIVER")
	switch cfg.StorageDriver {
	case DriverSQLite, DriverPgsql:
	default:
		log.Printf("Warning: unknown STORAGE_DRIVER %q. Defaulting to %s.\n", cfg.StorageDriver, DriverSQLite)
		cfg.StorageDriver = DriverSQLite
	}

	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.StorageDriver == DriverPgsql && cfg.DatabaseURL == "" {
		log.Println("Warning: STORAGE_DRIVER is pgsql but PGSQL_URL is not set.")
	}

	cfg.RatesAPIURL = viper.GetString("RATES_API_URL")

	refreshStr := viper.GetString("RATES_REFRESH_INTERVAL")
	refreshInterval, err := time.ParseDuration(refreshStr)
	if err != nil || refreshInterval <= 0 {
		refreshInterval = time.Hour
		log.Printf("Warning: Invalid value for RATES_REFRESH_INTERVAL ('%s'). Defaulting to %s.\n", refreshStr, refreshInterval.String())
	}
	cfg.RatesRefreshInterval = refreshInterval

	timeoutStr := viper.GetString("RATES_FETCH_TIMEOUT")
	fetchTimeout, err := time.ParseDuration(timeoutStr)
	if err != nil || fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for RATES_FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, fetchTimeout.String())
	}
	cfg.RatesFetchTimeout = fetchTimeout

	cfg.DefaultHomeCountry = viper.GetString("HOME_COUNTRY_DEFAULT")
	cfg.DefaultComparisonCountry = viper.GetString("COMPARISON_COUNTRY_DEFAULT")
	cfg.CORSAllowedOrigins = viper.GetString("CORS_ALLOWED_ORIGINS")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogHost = viper.GetString("POSTHOG_HOST")
	if cfg.PosthogAPIKey == "" {
		log.Println("Warning: POSTHOG_API_KEY not set. Analytics events will be dropped.")
	}

	return cfg, nil
}
