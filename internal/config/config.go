package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the simulation configuration
type Config struct {
	// Output
	OutputFile string
	PrintTable bool

	// Sweep range: n = 10^MinExponent .. 10^MaxExponent
	MinExponent int
	MaxExponent int

	// Logging
	LogLevel string

	// Metrics, written in Prometheus text format when set
	MetricsTextfile string
}

// LoadConfig loads configuration from environment variables with defaults
func LoadConfig() (*Config, error) {
	// The exponents define the sweep, so a malformed value is an error
	// rather than a silent fallback to the default.
	minExponent, err := getEnvAsInt("MIN_EXPONENT", 2)
	if err != nil {
		return nil, err
	}
	maxExponent, err := getEnvAsInt("MAX_EXPONENT", 9)
	if err != nil {
		return nil, err
	}

	config := &Config{
		// Defaults
		OutputFile:      getEnv("OUTPUT_FILE", "simulate.csv"),
		PrintTable:      getEnvAsBool("PRINT_TABLE", false),
		MinExponent:     minExponent,
		MaxExponent:     maxExponent,
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		MetricsTextfile: getEnv("METRICS_TEXTFILE", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputFile) == "" {
		return fmt.Errorf("invalid output file: must not be empty")
	}

	if c.MinExponent < 0 {
		return fmt.Errorf("invalid min exponent: %d (must be at least 0)", c.MinExponent)
	}

	if c.MaxExponent > 18 {
		return fmt.Errorf("invalid max exponent: %d (must be at most 18)", c.MaxExponent)
	}

	if c.MinExponent > c.MaxExponent {
		return fmt.Errorf("invalid exponent range: min %d exceeds max %d", c.MinExponent, c.MaxExponent)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.MetricsTextfile != "" && c.MetricsTextfile == c.OutputFile {
		return fmt.Errorf("invalid METRICS_TEXTFILE: must differ from OUTPUT_FILE")
	}

	return nil
}

// Helper functions to read environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not an integer", key, valueStr)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
