// Package config holds service-level configuration sourced from the
// environment. Model provider settings live in internal/llm.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config is the HTTP service configuration.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string

	// MaterialBaseURL is the content service base URL, e.g.
	// "http://localhost:4000/api".
	MaterialBaseURL string

	// AllowedOrigins are the CORS origins permitted to call the API.
	AllowedOrigins []string

	// DBPath is the SQLite file for the request event log. Empty selects
	// the default location.
	DBPath string

	// LogFile is the rotated log file path. Empty disables file logging.
	LogFile string

	// Debug enables debug-level logging.
	Debug bool

	// StrictAudit makes auditor failures reject candidates instead of
	// passing them through unverified.
	StrictAudit bool
}

// Default returns the development configuration.
func Default() Config {
	return Config{
		Addr:            ":8080",
		MaterialBaseURL: "http://localhost:4000/api",
		AllowedOrigins:  []string{"*"},
	}
}

// FromEnv loads configuration from LEARNCHECK_* environment variables,
// starting from the defaults.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("LEARNCHECK_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("LEARNCHECK_MATERIAL_URL"); v != "" {
		cfg.MaterialBaseURL = v
	}
	if v := os.Getenv("LEARNCHECK_CORS_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("LEARNCHECK_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LEARNCHECK_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	cfg.Debug = boolEnv("LEARNCHECK_DEBUG")
	cfg.StrictAudit = boolEnv("LEARNCHECK_STRICT_AUDIT")

	return cfg
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is empty")
	}
	if c.MaterialBaseURL == "" {
		return fmt.Errorf("material base URL is empty")
	}
	if !strings.HasPrefix(c.MaterialBaseURL, "http://") && !strings.HasPrefix(c.MaterialBaseURL, "https://") {
		return fmt.Errorf("material base URL %q must be http or https", c.MaterialBaseURL)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func boolEnv(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
