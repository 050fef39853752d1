// Package phonemize converts transcript text to IPA phoneme strings with
// espeak-ng.
package phonemize

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"golang.org/x/text/language"

	"audiotools/internal/curation"
	"audiotools/internal/tabular"
)

// SentinelFailed marks a row whose text could not be phonemized.
const SentinelFailed = "Error: Phonemization failed"

// Output table columns.
const (
	ColumnBasename = "Basename"
	ColumnPhonemes = "Phonemes"
	ColumnLanguage = "Language"
)

// Phonemizer converts one text fragment to a phoneme string.
type Phonemizer interface {
	Phonemize(ctx context.Context, text, lang string) (string, error)
}

// Espeak implements Phonemizer by shelling out to espeak-ng.
type Espeak struct {
	binary string
}

// NewEspeak builds a phonemizer around the configured espeak-ng binary.
func NewEspeak(binary string) *Espeak {
	return &Espeak{binary: binary}
}

// Phonemize runs espeak-ng in quiet IPA mode for the given voice.
func (e *Espeak) Phonemize(ctx context.Context, text, lang string) (string, error) {
	args := []string{"-q", "--ipa", "-v", lang, text}
	cmd := exec.CommandContext(ctx, e.binary, args...) //nolint:gosec
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return "", curation.Wrap(curation.ErrExternalResource, "phonemize",
			lang, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String())))
	}
	return strings.Join(strings.Fields(string(output)), " "), nil
}

// ValidateLanguage rejects language tags espeak-ng would choke on. Tags are
// checked with BCP 47 parsing, which covers the espeak voice names in use
// ("en", "en-us", "de").
func ValidateLanguage(tag string) error {
	if _, err := language.Parse(tag); err != nil {
		return curation.Wrap(curation.ErrInvalidInput, "validate language",
			fmt.Sprintf("unsupported language tag %q", tag), err)
	}
	return nil
}

// Options selects the input columns and voice for ProcessTable.
type Options struct {
	NameColumn string
	TextColumn string
	Language   string
}

// ProcessTable phonemizes one table row at a time, producing a
// Basename/Phonemes/Language table. A row that fails keeps its place with a
// sentinel phoneme cell.
func ProcessTable(ctx context.Context, table *tabular.Table, phonemizer Phonemizer, opts Options, logger *slog.Logger) (*tabular.Table, curation.Summary, error) {
	if err := ValidateLanguage(opts.Language); err != nil {
		return nil, curation.Summary{}, err
	}
	nameCol, err := table.RequireColumn("phonemize table", opts.NameColumn)
	if err != nil {
		return nil, curation.Summary{}, err
	}
	textCol, err := table.RequireColumn("phonemize table", opts.TextColumn)
	if err != nil {
		return nil, curation.Summary{}, err
	}

	out := tabular.New(ColumnBasename, ColumnPhonemes, ColumnLanguage)
	var summary curation.Summary
	for i := 0; i < table.Len(); i++ {
		name := table.Cell(i, nameCol)
		phonemes, err := phonemizer.Phonemize(ctx, table.Cell(i, textCol), opts.Language)
		if err != nil {
			if logger != nil {
				logger.Warn("phonemization failed", "row", i, "basename", name, "error", err)
			}
			phonemes = SentinelFailed
		}
		out.Append(name, phonemes, opts.Language)
		summary.Record(err == nil)
	}
	summary.Log(logger, "phonemize table")
	return out, summary, nil
}
