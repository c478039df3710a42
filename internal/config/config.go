package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	DefaultRoot         = "."
	DefaultSourceLocale = "en"
	DefaultLogLevel     = "info"
)

type Config struct {
	Root         string
	SourceLocale string
	LogLevel     string
}

// Load reads the configuration from the environment and validates it.
// Every variable is optional; the defaults render the locale folders found
// in the working directory.
func Load() (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	cfg := &Config{
		Root:         os.Getenv("STORESHOTS_ROOT"),
		SourceLocale: os.Getenv("STORESHOTS_SOURCE_LOCALE"),
		LogLevel:     os.Getenv("STORESHOTS_LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fills defaults and checks the loaded values.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Root) == "" {
		c.Root = DefaultRoot
	}

	if strings.TrimSpace(c.SourceLocale) == "" {
		c.SourceLocale = DefaultSourceLocale
	}
	if _, err := language.Parse(c.SourceLocale); err != nil {
		return fmt.Errorf("config: STORESHOTS_SOURCE_LOCALE invalid (%q): %w", c.SourceLocale, err)
	}
	if strings.ContainsAny(c.SourceLocale, `/\`) {
		return fmt.Errorf("config: STORESHOTS_SOURCE_LOCALE invalid (%q): must be a single path segment", c.SourceLocale)
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "":
		c.LogLevel = DefaultLogLevel
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	default:
		return fmt.Errorf("config: STORESHOTS_LOG_LEVEL invalid (%q): expected debug, info, warn or error", c.LogLevel)
	}

	return nil
}
