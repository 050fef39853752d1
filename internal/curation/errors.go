package curation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks structural input problems: a required path that
	// does not exist or is not a directory. Operations fail fast on it,
	// before any output is written.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSchema marks a required named column missing from a table header.
	ErrSchema = errors.New("schema error")
	// ErrExternalResource marks a scoring or embedding model that failed to
	// initialize. Fatal; no partial processing is attempted.
	ErrExternalResource = errors.New("external resource error")
)

// Wrap builds an error carrying operation context while tagging it with one of
// the exported sentinel errors so callers can classify it with errors.Is.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrInvalidInput
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failure"
	}
	return strings.Join(parts, ": ")
}
