// Package config reads runtime settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string
	// ContentPath is an optional YAML profile replacing the built-in content.
	ContentPath string
	// OutDir is where export writes index.html.
	OutDir string
}

// Load reads the environment. A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", gin.ReleaseMode),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		ContentPath: getEnv("PORTFOLIO_CONTENT", ""),
		OutDir:      getEnv("PORTFOLIO_OUT", "dist"),
	}
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	if _, err := strconv.Atoi(c.Port); err == nil {
		return ":" + c.Port
	}
	return c.Port
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
