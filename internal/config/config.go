package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultListenAddr = ":8080"
	defaultImageRoot  = "./public/customers"
	defaultLogLevel   = "info"
)

// Config aggregates application configuration read from the environment.
type Config struct {
	ListenAddr  string
	DatabaseURL string
	JWTSecret   string
	ImageRoot   string
	LogLevel    string
	CORSOrigin  string
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:  valueOrDefault("LISTEN_ADDR", defaultListenAddr),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		ImageRoot:   valueOrDefault("IMAGE_ROOT", defaultImageRoot),
		LogLevel:    valueOrDefault("LOG_LEVEL", defaultLogLevel),
		CORSOrigin:  valueOrDefault("CORS_ORIGIN", "http://localhost:3000"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// InitDB opens the Postgres connection used by every repository.
func InitDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
