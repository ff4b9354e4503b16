package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Document served at /spec and /spec.txt
	SpecPath string

	// Auth for upload endpoints. Empty disables auth.
	APIKey string

	// Numbering exclusions (TOML rule file)
	ExcludeFile string

	// Rendering
	DingusURL     string
	StrictNesting bool

	// Upload limits
	MaxUploadBytes int64

	// Render cache
	CacheEntries int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		SpecPath: envOr("SPEC_PATH", "spec/spec.txt"),

		APIKey: os.Getenv("SPECDOC_API_KEY"),

		ExcludeFile: os.Getenv("EXCLUDE_FILE"),

		DingusURL:     envOr("DINGUS_URL", "https://spec.commonmark.org/dingus/"),
		StrictNesting: envBool("STRICT_NESTING", false),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		CacheEntries: envInt("CACHE_ENTRIES", 32),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.CacheEntries <= 0 {
		cfg.CacheEntries = 32
	}

	return cfg
}

func (c Config) Validate() error {
	if c.SpecPath == "" {
		return fmt.Errorf("SPEC_PATH is required")
	}
	if _, err := os.Stat(c.SpecPath); err != nil {
		return fmt.Errorf("SPEC_PATH: %w", err)
	}
	if c.ExcludeFile != "" {
		if _, err := os.Stat(c.ExcludeFile); err != nil {
			return fmt.Errorf("EXCLUDE_FILE: %w", err)
		}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
