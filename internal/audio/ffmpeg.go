package audio

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"audiotools/internal/config"
	"audiotools/internal/curation"
)

// FFmpeg implements Codec by shelling out to ffmpeg and ffprobe.
type FFmpeg struct {
	ffmpegBinary  string
	ffprobeBinary string
}

// NewFFmpeg builds a codec from the configured binary names.
func NewFFmpeg(cfg config.Audio) *FFmpeg {
	return &FFmpeg{
		ffmpegBinary:  cfg.FFmpegBinary,
		ffprobeBinary: cfg.FFprobeBinary,
	}
}

// DurationMs probes the container duration with ffprobe.
func (f *FFmpeg) DurationMs(ctx context.Context, path string) (int64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
	cmd := exec.CommandContext(ctx, f.ffprobeBinary, args...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, curation.Wrap(curation.ErrExternalResource, "probe duration",
			path, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output))))
	}
	ms, err := parseProbeDurationMs(string(output))
	if err != nil {
		return 0, curation.Wrap(curation.ErrExternalResource, "probe duration", path, err)
	}
	return ms, nil
}

// parseProbeDurationMs converts ffprobe's fractional-second duration output
// into milliseconds.
func parseProbeDurationMs(output string) (int64, error) {
	text := strings.TrimSpace(output)
	if text == "" || text == "N/A" {
		return 0, fmt.Errorf("no duration in probe output %q", output)
	}
	seconds, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("unparsable duration %q: %w", text, err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("negative duration %q", text)
	}
	return int64(seconds*1000.0 + 0.5), nil
}

// Normalize rewrites src to dst with single-pass loudnorm at the target
// integrated loudness.
func (f *FFmpeg) Normalize(ctx context.Context, src, dst string, targetLoudness float64) error {
	filter := fmt.Sprintf("loudnorm=I=%s:TP=-1.5:LRA=11", formatFilterFloat(targetLoudness))
	args := []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", src,
		"-af", filter,
		dst,
	}
	return f.runFFmpeg(ctx, "normalize", src, args)
}

// Resample rewrites src to dst at the requested sample rate. The container
// format follows the dst extension; format is only used for logging-free
// sanity and may be empty.
func (f *FFmpeg) Resample(ctx context.Context, src, dst string, sampleRate int, format string) error {
	if sampleRate <= 0 {
		return curation.Wrap(curation.ErrInvalidInput, "resample",
			fmt.Sprintf("sample rate must be positive, got %d", sampleRate), nil)
	}
	args := []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", src,
		"-ar", strconv.Itoa(sampleRate),
		dst,
	}
	return f.runFFmpeg(ctx, "resample", src, args)
}

// TrimSilence strips leading, trailing, and interior silence runs longer than
// MinSilenceMs, keeping PaddingMs of silence around retained audio.
func (f *FFmpeg) TrimSilence(ctx context.Context, src, dst string, opts TrimOptions) (TrimResult, error) {
	original, err := f.DurationMs(ctx, src)
	if err != nil {
		return TrimResult{}, err
	}
	args := []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", src,
		"-af", buildTrimFilter(opts),
		dst,
	}
	if err := f.runFFmpeg(ctx, "trim silence", src, args); err != nil {
		return TrimResult{}, err
	}
	trimmed, err := f.DurationMs(ctx, dst)
	if err != nil {
		return TrimResult{}, err
	}
	return TrimResult{OriginalMs: original, TrimmedMs: trimmed}, nil
}

// buildTrimFilter renders the silenceremove filter expression. Interior
// silences are shortened to the padding length rather than removed outright
// so word boundaries stay audible.
func buildTrimFilter(opts TrimOptions) string {
	minSilence := formatFilterFloat(float64(opts.MinSilenceMs) / 1000.0)
	padding := formatFilterFloat(float64(opts.PaddingMs) / 1000.0)
	threshold := formatFilterFloat(opts.ThresholdDB)
	return fmt.Sprintf(
		"silenceremove=start_periods=1:start_duration=%s:start_threshold=%sdB:start_silence=%s:"+
			"stop_periods=-1:stop_duration=%s:stop_threshold=%sdB:stop_silence=%s",
		minSilence, threshold, padding,
		minSilence, threshold, padding,
	)
}

// formatFilterFloat renders a float for ffmpeg filter arguments without
// scientific notation or trailing zeros.
func formatFilterFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (f *FFmpeg) runFFmpeg(ctx context.Context, operation, src string, args []string) error {
	cmd := exec.CommandContext(ctx, f.ffmpegBinary, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return curation.Wrap(curation.ErrExternalResource, operation,
			src, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output))))
	}
	return nil
}
