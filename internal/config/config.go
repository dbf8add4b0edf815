package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the harness. Precedence is flags over
// environment over defaults.
type Config struct {
	// Output settings
	Verbose bool
	NoColor bool

	// Env file consulted by LoadEnv
	EnvFile string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags after parsing.
type Flags struct {
	Filter       string
	Verbose      bool
	NoColor      bool
	FailFast     bool
	OpenFailures bool
}

// New creates a new Config with defaults.
func New() *Config {
	envFile := os.Getenv(EnvFileVar)
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	return &Config{EnvFile: envFile}
}

// LoadEnv overlays settings from the .env file (if present) and the process
// environment. A missing .env file is not an error.
func (c *Config) LoadEnv() {
	if _, err := os.Stat(c.EnvFile); err == nil {
		_ = godotenv.Load(c.EnvFile)
	}
	if truthy(os.Getenv(EnvVerbose)) {
		c.Verbose = true
	}
	if truthy(os.Getenv(EnvNoColor)) {
		c.NoColor = true
	}
}

// ApplyFlags overlays parsed command-line flags; flags win over environment.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Verbose {
		c.Verbose = true
	}
	if flags.NoColor {
		c.NoColor = true
	}
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
