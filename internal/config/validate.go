package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateTranslate(); err != nil {
		return err
	}
	if err := c.validateCheck(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateTranslate() error {
	switch c.Translate.Provider {
	case "gemini", "openai", "anthropic":
	default:
		return fmt.Errorf("translate.provider: unsupported value %q", c.Translate.Provider)
	}
	if c.Translate.Concurrency <= 0 {
		return errors.New("translate.concurrency must be positive")
	}
	if c.Translate.BatchSize <= 0 {
		return errors.New("translate.batch_size must be positive")
	}
	return nil
}

func (c *Config) validateCheck() error {
	if c.Check.MinDurationMS < 0 {
		return errors.New("check.min_duration_ms must not be negative")
	}
	if c.Check.MaxCueDurationMS < 0 {
		return errors.New("check.max_cue_duration_ms must not be negative")
	}
	if c.Check.MaxCueDurationMS > 0 && c.Check.MinDurationMS > c.Check.MaxCueDurationMS {
		return errors.New("check.min_duration_ms must not exceed check.max_cue_duration_ms")
	}
	return nil
}
