package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// writeTestConfig writes a config file with its own log directory and
// returns its path.
func writeTestConfig(t *testing.T, extra string) string {
	t.Helper()
	base := t.TempDir()
	content := fmt.Sprintf("[paths]\nlog_dir = %q\n\n[logging]\nformat = \"console\"\nlevel = \"warn\"\n%s",
		filepath.Join(base, "logs"), extra)
	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCommand executes the CLI with a fresh command tree and captured output.
func runCommand(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeLines(t *testing.T, path string, lines ...string) {
	t.Helper()
	var content string
	for _, line := range lines {
		content += line + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
