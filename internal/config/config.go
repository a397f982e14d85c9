package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	Port        string
	Environment string
	DataDir     string // directory holding the SQLite database file
	CORSOrigins string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DataDir:     getEnv("DATA_DIR", defaultDataDir()),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		// Debug defaults to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// defaultDataDir resolves the per-user data directory for the writing store.
// Falls back to a relative directory when the home directory is unknown.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".inkwell"
	}
	return filepath.Join(home, ".inkwell")
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
