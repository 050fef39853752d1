package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCommand(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("output = %q", out)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[paths]", "[models]", "mos_command"} {
		if !strings.Contains(string(content), want) {
			t.Fatalf("sample config missing %q", want)
		}
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected overwrite refusal")
	}
	if _, err := runCommand(t, "", "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("overwrite should succeed: %v", err)
	}
}
