// Package config loads, validates, and normalizes the audiotools TOML
// configuration. Configuration values never change after process start;
// commands receive a *Config and treat it as read-only.
package config
