// Package config provides startup configuration for the storefront.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the application needs at startup. It is built
// once in main and passed down; handlers never read the environment.
type Config struct {
	Port          string
	DatabaseURL   string // Postgres DSN; empty means embedded SQLite
	SQLitePath    string
	SessionSecret string
	UploadDir     string // destination for admin image uploads
	BaseURL       string // absolute prefix for constructed image URLs
	TemplateGlob  string
}

// Load reads configuration from environment variables, with a .env file
// picked up when present.
func Load() *Config {
	_ = godotenv.Load()

	port := getEnv("PORT", "8080")

	return &Config{
		Port:          port,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SQLitePath:    getEnv("SQLITE_PATH", "site.db"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-change-me"),
		UploadDir:     getEnv("UPLOAD_DIR", "static/images"),
		BaseURL:       getEnv("BASE_URL", fmt.Sprintf("http://localhost:%s", port)),
		TemplateGlob:  getEnv("TEMPLATE_GLOB", "templates/*.html"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
