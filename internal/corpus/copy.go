package corpus

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"audiotools/internal/curation"
	"audiotools/internal/fileutil"
	"audiotools/internal/tabular"
)

// CopySelected copies every file named in the given table column into a flat
// destination directory, keeping the source basename. Per-row failures
// (missing file, copy error) are logged and counted; they never abort the
// batch. The copy is hash-verified so a truncated dataset copy cannot pass
// silently.
func CopySelected(table *tabular.Table, column, dstDir string, logger *slog.Logger) (curation.Summary, error) {
	var summary curation.Summary

	idx, err := table.RequireColumn("copy selected", column)
	if err != nil {
		return summary, err
	}

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return summary, fmt.Errorf("create destination %q: %w", dstDir, err)
	}

	for i := range table.Rows {
		src := table.Cell(i, idx)
		if src == "" {
			summary.Record(false)
			logWarn(logger, "empty path cell", slog.Int("row", i+1))
			continue
		}
		info, err := os.Stat(src)
		if err != nil {
			summary.Record(false)
			logWarn(logger, "source file missing", slog.String("path", src))
			continue
		}
		if info.IsDir() {
			summary.Record(false)
			logWarn(logger, "source path is a directory", slog.String("path", src))
			continue
		}
		dst := filepath.Join(dstDir, filepath.Base(src))
		if err := fileutil.CopyFileVerified(src, dst); err != nil {
			summary.Record(false)
			logWarn(logger, "copy failed", slog.String("path", src), slog.Any("error", err))
			continue
		}
		summary.Record(true)
	}

	summary.Log(logger, "copy-selected-files")
	return summary, nil
}

func logWarn(logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	args := make([]any, 0, len(attrs))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	logger.Warn(msg, args...)
}
