package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"endgame-lab/internal/domain"
)

// Output formats
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatJSON     = "json"
)

// Config holds application configuration
type Config struct {
	Scenario  domain.GameScenario
	Trials    int    // 0 = prompt for the trial count
	Seed      uint64 // 0 = time-derived seed
	Format    string // text | markdown | csv | json
	LogLevel  string
	LogPretty bool

	// MetricsFile receives Prometheus metrics in text format after the run; empty disables.
	MetricsFile string
}

// Load reads configuration from a .env file (if present) and environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	seed, err := getEnvAsUint64("ENDGAME_SEED", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Scenario: domain.GameScenario{
			ClockSeconds:  getEnvAsInt("ENDGAME_CLOCK_SECONDS", domain.DefaultClockSeconds),
			UserScore:     getEnvAsInt("ENDGAME_USER_SCORE", domain.DefaultUserScore),
			OpponentScore: getEnvAsInt("ENDGAME_OPPONENT_SCORE", domain.DefaultOpponentScore),
		},
		Trials:    getEnvAsInt("ENDGAME_TRIALS", 0),
		Seed:      seed,
		Format:    strings.ToLower(getEnv("ENDGAME_FORMAT", FormatText)),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),

		MetricsFile: getEnv("ENDGAME_METRICS_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration values
func (c *Config) Validate() error {
	if err := c.Scenario.Validate(); err != nil {
		return err
	}
	if c.Scenario.UserScore < 0 || c.Scenario.OpponentScore < 0 {
		return fmt.Errorf("scores must not be negative: %s", c.Scenario.ScoreLine())
	}
	if c.Trials < 0 {
		return fmt.Errorf("%w: ENDGAME_TRIALS=%d", domain.ErrInvalidTrialCount, c.Trials)
	}
	switch c.Format {
	case FormatText, FormatMarkdown, FormatCSV, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q: must be text, markdown, csv or json", c.Format)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsUint64(key string, defaultValue uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}
