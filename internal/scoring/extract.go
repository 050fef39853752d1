// Package scoring builds and filters per-file quality score tables.
package scoring

import (
	"context"
	"log/slog"
	"strconv"

	"audiotools/internal/audio"
	"audiotools/internal/corpus"
	"audiotools/internal/curation"
	"audiotools/internal/model"
	"audiotools/internal/tabular"
)

// Sentinel cell values recording a per-file failure. They are distinct so a
// reader can tell a decode problem from a model problem.
const (
	SentinelDurationUnreadable = "Error: Duration unreadable"
	SentinelScoreFailed        = "Error: Calculation failed"
)

// Column names of the extracted score table.
const (
	ColumnPath     = "Path"
	ColumnDuration = "Duration"
	ColumnScore    = "MOS"
)

// Extract scores every matching file under root and returns one row per file.
// A file whose duration or score cannot be computed still gets a row, with
// the failing field set to a sentinel; the batch always runs to completion.
// When no files match, Extract returns a nil table and no error so the caller
// can report the empty corpus without treating it as a failure.
func Extract(ctx context.Context, root, ext string, codec audio.Codec, scorer model.Scorer, logger *slog.Logger) (*tabular.Table, curation.Summary, error) {
	files, err := corpus.ListFiles(root, ext)
	if err != nil {
		return nil, curation.Summary{}, err
	}
	if len(files) == 0 {
		if logger != nil {
			logger.Warn("no matching files found", "root", root, "extension", ext)
		}
		return nil, curation.Summary{}, nil
	}

	table := tabular.New(ColumnPath, ColumnDuration, ColumnScore)
	var summary curation.Summary
	for _, path := range files {
		duration := SentinelDurationUnreadable
		ms, err := codec.DurationMs(ctx, path)
		durationOK := err == nil
		if durationOK {
			duration = strconv.FormatInt(ms, 10)
		} else if logger != nil {
			logger.Warn("duration unreadable", "path", path, "error", err)
		}

		score := SentinelScoreFailed
		value, err := scorer.Score(ctx, path)
		scoreOK := err == nil
		if scoreOK {
			score = strconv.FormatFloat(value, 'f', -1, 64)
		} else if logger != nil {
			logger.Warn("score failed", "path", path, "error", err)
		}

		table.Append(path, duration, score)
		summary.Record(durationOK && scoreOK)
	}
	summary.Log(logger, "extract scores")
	return table, summary, nil
}
