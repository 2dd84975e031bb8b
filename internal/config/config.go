package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"earlyreturn/internal/earlyreturn"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where `earlyreturn config init` writes when no path is given.
const DefaultPath = ".earlyreturn/config.yaml"

// Config holds all earlyreturn configuration.
type Config struct {
	Name string `yaml:"name"`

	// Inputs for the no-argument demo run
	Demo DemoConfig `yaml:"demo"`

	// Input bounds
	Limits LimitsConfig `yaml:"limits"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DemoConfig configures the literals used by the default run.
type DemoConfig struct {
	Text           string `yaml:"text"`
	FactorialInput int    `yaml:"factorial_input"`
	Graphemes      bool   `yaml:"graphemes"` // reverse by grapheme cluster instead of code point
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "earlyreturn",
		Demo: DemoConfig{
			Text:           earlyreturn.DemoText,
			FactorialInput: earlyreturn.DemoFactorialInput,
		},
		Limits: LimitsConfig{
			MaxFactorialInput: earlyreturn.MaxFactorialInput,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		cfg.applyEnvOverrides()
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// applyEnvOverrides applies EARLYRETURN_* environment variables.
// Integer values that do not parse are ignored.
func (c *Config) applyEnvOverrides() {
	if text, ok := os.LookupEnv("EARLYRETURN_TEXT"); ok {
		c.Demo.Text = text
	}
	if n, ok := envInt("EARLYRETURN_FACTORIAL_INPUT"); ok {
		c.Demo.FactorialInput = n
	}
	if n, ok := envInt("EARLYRETURN_MAX_FACTORIAL"); ok {
		c.Limits.MaxFactorialInput = n
	}
	if level := os.Getenv("EARLYRETURN_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.ValidateLimits(); err != nil {
		return err
	}
	if c.Demo.FactorialInput > c.Limits.MaxFactorialInput {
		return fmt.Errorf("demo.factorial_input %d exceeds limits.max_factorial_input %d",
			c.Demo.FactorialInput, c.Limits.MaxFactorialInput)
	}
	return nil
}
