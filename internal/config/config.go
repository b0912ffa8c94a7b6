// Package config reads the configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spendwise-app/backend/internal/i18n"
)

type Config struct {
	// HTTP server
	Port      string
	GinMode   string
	LogFormat string
	APIURL    string

	// Database
	DataDir    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	CORSAllowOrigins []string
	EnablePprof      bool
	DefaultLocale    string
}

// Load reads the configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "release"),
		LogFormat: getEnv("LOG_FORMAT", ""),
		APIURL:    strings.TrimSuffix(getEnv("API_URL", "http://localhost:8080"), "/"),

		DataDir:    getEnv("DATA_DIR", "data"),
		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "spendwise"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "spendwise"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		CORSAllowOrigins: strings.Fields(getEnv("CORS_ALLOW_ORIGINS", "")),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),
		DefaultLocale:    getEnv("DEFAULT_LOCALE", string(i18n.Default)),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errors = append(errors, fmt.Sprintf("invalid gin mode '%s': must be one of 'debug', 'release', 'test'", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if u, err := url.Parse(c.APIURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s': %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	if c.DBHost == "" && c.DataDir == "" {
		errors = append(errors, "data directory cannot be empty when using sqlite")
	}

	if c.DBHost != "" && c.DBName == "" {
		errors = append(errors, "database name is required when DB_HOST is set")
	}

	if _, err := i18n.ParseLocale(c.DefaultLocale); err != nil {
		errors = append(errors, fmt.Sprintf("invalid default locale '%s': %v", c.DefaultLocale, err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// URL returns the parsed API URL. It must only be called after Validate.
func (c *Config) URL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

// Locale returns the default locale. It must only be called after Validate.
func (c *Config) Locale() i18n.Locale {
	l, err := i18n.ParseLocale(c.DefaultLocale)
	if err != nil {
		return i18n.Default
	}
	return l
}

// UsePostgres reports whether PostgreSQL is configured instead of SQLite.
func (c *Config) UsePostgres() bool {
	return c.DBHost != ""
}

// SQLitePath is the path of the SQLite database file.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "spendwise.db")
}

// PostgresDSN is the connection string for PostgreSQL.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
