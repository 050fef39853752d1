// Package transform applies per-file audio operations across a whole corpus
// tree, mirroring the source layout under a destination root. A file that
// fails is logged and skipped; the batch keeps going.
package transform

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"audiotools/internal/audio"
	"audiotools/internal/corpus"
	"audiotools/internal/curation"
)

// Options carries the per-file parameters shared by the corpus transforms.
type Options struct {
	// Extension selects which files under the source root are processed,
	// without the leading dot.
	Extension string
	// SampleRate is the target rate for Resample.
	SampleRate int
	// TargetLoudness is the integrated loudness target for Normalize.
	TargetLoudness float64
	// Trim configures silence removal for TrimSilence.
	Trim audio.TrimOptions
}

// NormalizeCorpus loudness-normalizes every matching file under srcRoot into
// the mirrored path under dstRoot.
func NormalizeCorpus(ctx context.Context, codec audio.Codec, srcRoot, dstRoot string, opts Options, logger *slog.Logger) (curation.Summary, error) {
	return overCorpus(ctx, srcRoot, dstRoot, opts.Extension, logger, "normalize corpus",
		func(ctx context.Context, src, dst string) error {
			return codec.Normalize(ctx, src, dst, opts.TargetLoudness)
		})
}

// ResampleCorpus resamples every matching file under srcRoot into the
// mirrored path under dstRoot.
func ResampleCorpus(ctx context.Context, codec audio.Codec, srcRoot, dstRoot string, opts Options, logger *slog.Logger) (curation.Summary, error) {
	return overCorpus(ctx, srcRoot, dstRoot, opts.Extension, logger, "resample corpus",
		func(ctx context.Context, src, dst string) error {
			return codec.Resample(ctx, src, dst, opts.SampleRate, opts.Extension)
		})
}

// ResampleCorpusInPlace resamples every matching file under root, replacing
// each original only after its replacement was written successfully.
func ResampleCorpusInPlace(ctx context.Context, codec audio.Codec, root string, opts Options, logger *slog.Logger) (curation.Summary, error) {
	files, err := corpus.ListFiles(root, opts.Extension)
	if err != nil {
		return curation.Summary{}, err
	}

	var summary curation.Summary
	for _, src := range files {
		tmp := src + ".resample.tmp" + filepath.Ext(src)
		err := codec.Resample(ctx, src, tmp, opts.SampleRate, opts.Extension)
		if err == nil {
			err = os.Rename(tmp, src)
		}
		if err != nil {
			os.Remove(tmp)
			logWarn(logger, "resample failed", src, err)
		}
		summary.Record(err == nil)
	}
	summary.Log(logger, "resample corpus in place")
	return summary, nil
}

// TrimSilenceCorpus removes silence from every matching file under srcRoot
// into the mirrored path under dstRoot and reports how much audio each file
// lost.
func TrimSilenceCorpus(ctx context.Context, codec audio.Codec, srcRoot, dstRoot string, opts Options, logger *slog.Logger) (curation.Summary, []TrimReport, error) {
	files, err := corpus.ListFiles(srcRoot, opts.Extension)
	if err != nil {
		return curation.Summary{}, nil, err
	}

	var summary curation.Summary
	reports := make([]TrimReport, 0, len(files))
	for _, src := range files {
		dst, err := corpus.MirrorPath(srcRoot, dstRoot, src)
		if err == nil {
			err = os.MkdirAll(filepath.Dir(dst), 0o755)
		}
		var result audio.TrimResult
		if err == nil {
			result, err = codec.TrimSilence(ctx, src, dst, opts.Trim)
		}
		if err != nil {
			logWarn(logger, "trim failed", src, err)
		} else {
			reports = append(reports, TrimReport{Path: src, Result: result})
		}
		summary.Record(err == nil)
	}
	summary.Log(logger, "trim silence corpus")
	return summary, reports, nil
}

// TrimReport pairs a source file with its before/after durations.
type TrimReport struct {
	Path   string
	Result audio.TrimResult
}

// String renders the report line written to the trim log.
func (r TrimReport) String() string {
	removed := r.Result.OriginalMs - r.Result.TrimmedMs
	return fmt.Sprintf("%s: %dms -> %dms (removed %dms)",
		r.Path, r.Result.OriginalMs, r.Result.TrimmedMs, removed)
}

// WriteTrimReport writes one report line per trimmed file.
func WriteTrimReport(path string, reports []TrimReport) error {
	var builder strings.Builder
	for _, report := range reports {
		builder.WriteString(report.String())
		builder.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return fmt.Errorf("write trim report: %w", err)
	}
	return nil
}

func overCorpus(ctx context.Context, srcRoot, dstRoot, ext string, logger *slog.Logger, operation string, apply func(ctx context.Context, src, dst string) error) (curation.Summary, error) {
	files, err := corpus.ListFiles(srcRoot, ext)
	if err != nil {
		return curation.Summary{}, err
	}

	var summary curation.Summary
	for _, src := range files {
		dst, err := corpus.MirrorPath(srcRoot, dstRoot, src)
		if err == nil {
			err = os.MkdirAll(filepath.Dir(dst), 0o755)
		}
		if err == nil {
			err = apply(ctx, src, dst)
		}
		if err != nil {
			logWarn(logger, operation+" failed", src, err)
		}
		summary.Record(err == nil)
	}
	summary.Log(logger, operation)
	return summary, nil
}

func logWarn(logger *slog.Logger, msg, path string, err error) {
	if logger == nil {
		return
	}
	logger.Warn(msg, "path", path, "error", err)
}
