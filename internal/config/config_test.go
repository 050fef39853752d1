package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"audiotools/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for a missing file")
	}
	if path == "" {
		t.Fatal("expected resolved path even without a file")
	}
	if cfg.Table.Delimiter != "\t" || cfg.Table.Quote != "|" {
		t.Fatalf("unexpected table defaults: %q %q", cfg.Table.Delimiter, cfg.Table.Quote)
	}
	if cfg.Selection.ScoreColumn != "MOS" || cfg.Selection.DurationColumn != "Duration" {
		t.Fatalf("unexpected selection defaults: %+v", cfg.Selection)
	}
	if cfg.Similarity.BootstrapResamples != 1000 {
		t.Fatalf("unexpected bootstrap default: %d", cfg.Similarity.BootstrapResamples)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[audio]",
		"sample_rate = 16000",
		"default_extension = \".FLAC\"",
		"",
		"[selection]",
		"budget_ms = 0",
		"",
		"[models]",
		"device = \"cuda\"",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Audio.SampleRate != 16000 {
		t.Fatalf("sample_rate = %d, want 16000", cfg.Audio.SampleRate)
	}
	if cfg.Audio.DefaultExtension != "flac" {
		t.Fatalf("extension should be normalized, got %q", cfg.Audio.DefaultExtension)
	}
	if cfg.Selection.BudgetMs != 0 {
		t.Fatalf("budget_ms = %d, want 0", cfg.Selection.BudgetMs)
	}
	if cfg.Models.Device != "cuda" {
		t.Fatalf("device = %q, want cuda", cfg.Models.Device)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"positive loudness", "[audio]\ntarget_loudness = 3.0\n"},
		{"bad device", "[models]\ndevice = \"tpu\"\n"},
		{"bad log format", "[logging]\nformat = \"xml\"\n"},
		{"delimiter equals quote", "[table]\ndelimiter = \"|\"\n"},
		{"confidence out of range", "[similarity]\nconfidence_level = 1.5\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config should load cleanly: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.Audio.SampleRate != 22050 {
		t.Fatalf("sample config drifted from defaults: %d", cfg.Audio.SampleRate)
	}
}
