package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Database    DatabaseConfig
	CORS        CORSConfig
	Catalog     CatalogConfig
	Cart        CartConfig
	LogLevel    string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	// Schema holds one table per brand collection.
	Schema string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// CatalogConfig points storefront clients at the catalog API.
type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CartConfig selects where a client session persists its cart.
type CartConfig struct {
	Store      string
	Path       string
	StorageKey string
}

// DefaultCORSOrigin is the storefront dev server
const DefaultCORSOrigin = "http://localhost:3000"

const (
	CartStoreFile   = "file"
	CartStoreSQLite = "sqlite"
	CartStoreMemory = "memory"
)

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	timeout, err := time.ParseDuration(getEnvOrViper("CATALOG_API_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_API_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "5000"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "brands"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
			Schema:   getEnvOrViper("DB_SCHEMA", "brands"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnvOrViper("CORS_ALLOWED_ORIGINS", DefaultCORSOrigin)),
		},
		Catalog: CatalogConfig{
			BaseURL: strings.TrimSuffix(getEnvOrViper("CATALOG_API_URL", "http://localhost:5000/api"), "/"),
			Timeout: timeout,
		},
		Cart: CartConfig{
			Store:      getEnvOrViper("CART_STORE", CartStoreFile),
			Path:       getEnvOrViper("CART_STORE_PATH", defaultCartPath()),
			StorageKey: getEnvOrViper("CART_STORAGE_KEY", "fashionhive_cart"),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	switch cfg.Cart.Store {
	case CartStoreFile, CartStoreSQLite, CartStoreMemory:
	default:
		return nil, fmt.Errorf("CART_STORE must be one of file, sqlite, memory (got %q)", cfg.Cart.Store)
	}
	if cfg.Cart.StorageKey == "" {
		return nil, fmt.Errorf("CART_STORAGE_KEY is required")
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS must name at least one origin")
	}
	if cfg.Database.Schema == "" {
		return nil, fmt.Errorf("DB_SCHEMA is required")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func defaultCartPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".fashionhive"
	}
	return dir + string(os.PathSeparator) + "fashionhive"
}
