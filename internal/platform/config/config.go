package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backend identifiers. Both implement the same repository
// facades and are interchangeable; nothing above the adapters layer
// depends on which one is active.
const (
	StorePgsql  = "pgsql"
	StoreMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	StoreBackend      string // pgsql or memory
	StrictCatalogRefs bool   // reject drafts referencing missing catalog products
	RateLimit         string // ulule/limiter format, e.g. "100-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORE_BACKEND", StorePgsql)
	viper.SetDefault("STRICT_CATALOG_REFS", false)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     viper.GetBool("ENABLE_DB_CHECK"),
		StoreBackend:      viper.GetString("STORE_BACKEND"),
		StrictCatalogRefs: viper.GetBool("STRICT_CATALOG_REFS"),
		RateLimit:         viper.GetString("RATE_LIMIT"),
	}

	switch cfg.StoreBackend {
	case StorePgsql, StoreMemory:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: must be %q or %q", cfg.StoreBackend, StorePgsql, StoreMemory)
	}

	if cfg.StoreBackend == StorePgsql && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	return cfg, nil
}
