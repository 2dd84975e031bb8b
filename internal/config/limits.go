package config

import (
	"fmt"

	"earlyreturn/internal/earlyreturn"
)

// LimitsConfig bounds inputs the unchecked routines would mishandle.
type LimitsConfig struct {
	// Largest n accepted by `earlyreturn factorial` without --strict or --big.
	MaxFactorialInput int `yaml:"max_factorial_input"`
}

// ValidateLimits checks that limits are within acceptable ranges.
func (c *Config) ValidateLimits() error {
	if c.Limits.MaxFactorialInput < 0 {
		return fmt.Errorf("max_factorial_input must be >= 0")
	}
	if c.Limits.MaxFactorialInput > earlyreturn.MaxFactorialInput {
		return fmt.Errorf("max_factorial_input must be <= %d (larger results overflow int)", earlyreturn.MaxFactorialInput)
	}
	return nil
}

// CheckFactorialInput rejects n above the configured bound.
func (c *Config) CheckFactorialInput(n int) error {
	if n > c.Limits.MaxFactorialInput {
		return fmt.Errorf("factorial input %d exceeds max_factorial_input %d (use --strict or --big)", n, c.Limits.MaxFactorialInput)
	}
	return nil
}
