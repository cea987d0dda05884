package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all configuration for a test binary run
type Config struct {
	// Dotenv file loaded before reading the environment
	EnvFile string

	// Output settings
	NoColor  bool
	Progress bool
	Browse   bool

	LogLevel string
	Version  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	List     bool
	Progress bool
	Browse   bool
	NoColor  bool
	LogLevel string
	EnvFile  string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		EnvFile:  DefaultEnvFile,
		LogLevel: DefaultLogLevel,
		Version:  Version,
	}
}

// Load creates a config from defaults, the dotenv file, the environment and
// finally the flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	if flags.EnvFile != "" {
		cfg.EnvFile = flags.EnvFile
	} else if v := os.Getenv(EnvEnvFile); v != "" {
		cfg.EnvFile = v
	}
	if err := godotenv.Load(cfg.EnvFile); err != nil && flags.EnvFile != "" {
		// The default .env might not exist, that's okay; an explicit one must.
		return nil, fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyFlags()

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error
	if c.NoColor, err = envBool(EnvNoColor, c.NoColor); err != nil {
		return err
	}
	if c.Progress, err = envBool(EnvProgress, c.Progress); err != nil {
		return err
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	return nil
}

func (c *Config) applyFlags() {
	if c.Flags.NoColor {
		c.NoColor = true
	}
	if c.Flags.Progress {
		c.Progress = true
	}
	if c.Flags.Browse {
		c.Browse = true
	}
	if c.Flags.LogLevel != "" {
		c.LogLevel = c.Flags.LogLevel
	}
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("invalid value %q for %s: %w", v, key, err)
	}
	return b, nil
}
