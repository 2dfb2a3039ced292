package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	VariantExtended = "extended"
	VariantClassic  = "classic"
)

// Config represents the full application configuration surface.
type Config struct {
	Menu    MenuConfig
	Logging LoggingConfig
}

// MenuConfig controls which flavour of the menu is served and how the store starts.
type MenuConfig struct {
	Variant      string
	SeedStudents bool
}

// LoggingConfig holds zap settings. Outputs are zap sink paths ("stderr", a file path, ...).
type LoggingConfig struct {
	Level   string
	Outputs []string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// A missing .env is fine; the environment alone is enough.
		_ = godotenv.Load()
	}

	seed, err := getenvBool("SEED_STUDENTS", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Menu: MenuConfig{
			Variant:      strings.ToLower(getenvWithDefault("MENU_VARIANT", VariantExtended)),
			SeedStudents: seed,
		},
		Logging: LoggingConfig{
			Level:   strings.ToLower(getenvWithDefault("LOG_LEVEL", "warn")),
			Outputs: splitList(getenvWithDefault("LOG_OUTPUT", "stderr")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch c.Menu.Variant {
	case VariantExtended, VariantClassic:
	default:
		return fmt.Errorf("MENU_VARIANT must be %q or %q, got %q", VariantExtended, VariantClassic, c.Menu.Variant)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}

	if len(c.Logging.Outputs) == 0 {
		return errors.New("LOG_OUTPUT must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
