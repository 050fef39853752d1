package model

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"audiotools/internal/curation"
)

// deviceEnvVar tells the model tool which compute device to use.
const deviceEnvVar = "AUDIOTOOLS_DEVICE"

// CommandModel shells out to a configured command, appending the audio file
// path as the final argument and reading the result from stdout.
type CommandModel struct {
	command []string
	device  string
	timeout time.Duration
}

// NewCommandModel parses the command line and validates it is non-empty.
func NewCommandModel(command, device string, timeout time.Duration) (*CommandModel, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, curation.Wrap(curation.ErrExternalResource, "configure model",
			"model command must not be empty", nil)
	}
	return &CommandModel{command: fields, device: device, timeout: timeout}, nil
}

// Command reports the configured command line, for reconfiguration checks.
func (m *CommandModel) Command() string {
	return strings.Join(m.command, " ")
}

func (m *CommandModel) run(ctx context.Context, path string) (string, error) {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}
	args := make([]string, 0, len(m.command))
	args = append(args, m.command[1:]...)
	args = append(args, path)
	cmd := exec.CommandContext(ctx, m.command[0], args...) //nolint:gosec
	cmd.Env = append(os.Environ(), deviceEnvVar+"="+m.device)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		// A per-file inference failure is an item failure: callers record a
		// sentinel and keep going. Only configuration problems carry the
		// external-resource marker.
		return "", fmt.Errorf("run model: %s: %w: %s",
			path, err, strings.TrimSpace(stderr.String()))
	}
	return string(output), nil
}

// Embed runs the model and parses one whitespace-separated float per
// embedding dimension from stdout.
func (m *CommandModel) Embed(ctx context.Context, path string) ([]float64, error) {
	output, err := m.run(ctx, path)
	if err != nil {
		return nil, err
	}
	vector, err := parseVector(output)
	if err != nil {
		return nil, fmt.Errorf("parse embedding: %s: %w", path, err)
	}
	return vector, nil
}

// Score runs the model and parses a single float from stdout.
func (m *CommandModel) Score(ctx context.Context, path string) (float64, error) {
	output, err := m.run(ctx, path)
	if err != nil {
		return 0, err
	}
	score, err := parseScore(output)
	if err != nil {
		return 0, fmt.Errorf("parse score: %s: %w", path, err)
	}
	return score, nil
}

func parseVector(output string) ([]float64, error) {
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty model output")
	}
	vector := make([]float64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: unparsable value %q", i, field)
		}
		vector[i] = value
	}
	return vector, nil
}

func parseScore(output string) (float64, error) {
	fields := strings.Fields(output)
	if len(fields) != 1 {
		return 0, fmt.Errorf("expected a single score, got %d values", len(fields))
	}
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("unparsable score %q", fields[0])
	}
	return value, nil
}
