package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTable(); err != nil {
		return err
	}
	if err := c.validateAudio(); err != nil {
		return err
	}
	if err := c.validateModels(); err != nil {
		return err
	}
	if err := c.validateSelection(); err != nil {
		return err
	}
	if err := c.validateSimilarity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTable() error {
	if utf8.RuneCountInString(c.Table.Delimiter) != 1 {
		return errors.New("table.delimiter must be a single character")
	}
	if utf8.RuneCountInString(c.Table.Quote) != 1 {
		return errors.New("table.quote must be a single character")
	}
	if c.Table.Delimiter == c.Table.Quote {
		return errors.New("table.delimiter and table.quote must differ")
	}
	return nil
}

func (c *Config) validateAudio() error {
	if c.Audio.SampleRate <= 0 {
		return errors.New("audio.sample_rate must be positive")
	}
	if c.Audio.TargetLoudness >= 0 {
		return errors.New("audio.target_loudness must be negative (dB LUFS)")
	}
	if c.Audio.SilenceThresholdDB >= 0 {
		return errors.New("audio.silence_threshold_db must be negative (dBFS)")
	}
	if c.Audio.MinSilenceMs <= 0 {
		return errors.New("audio.min_silence_ms must be positive")
	}
	if c.Audio.PaddingMs < 0 {
		return errors.New("audio.padding_ms must be >= 0")
	}
	return nil
}

func (c *Config) validateModels() error {
	switch c.Models.Device {
	case "cpu", "cuda":
	default:
		return fmt.Errorf("models.device must be cpu or cuda, got %q", c.Models.Device)
	}
	return nil
}

func (c *Config) validateSelection() error {
	if c.Selection.BudgetMs < 0 {
		return errors.New("selection.budget_ms must be >= 0 (0 means unlimited)")
	}
	return nil
}

func (c *Config) validateSimilarity() error {
	if c.Similarity.ConfidenceLevel <= 0 || c.Similarity.ConfidenceLevel >= 1 {
		return errors.New("similarity.confidence_level must be strictly between 0 and 1")
	}
	if c.Similarity.BootstrapResamples < 100 {
		return errors.New("similarity.bootstrap_resamples must be at least 100")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
