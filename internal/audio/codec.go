package audio

import "context"

// TrimOptions controls silence removal.
type TrimOptions struct {
	// ThresholdDB is the level below which audio counts as silence (negative dBFS).
	ThresholdDB float64
	// MinSilenceMs is the shortest silence run that gets removed.
	MinSilenceMs int
	// PaddingMs is the silence kept around retained segments.
	PaddingMs int
}

// TrimResult reports durations before and after silence removal.
type TrimResult struct {
	OriginalMs int64
	TrimmedMs  int64
}

// Codec is the audio capability the curation operations consume: duration
// probing plus the three corpus transforms. Implementations must be safe for
// sequential reuse across a whole batch; audiotools runs them one file at a
// time.
type Codec interface {
	// DurationMs reports the duration of an audio file in milliseconds.
	DurationMs(ctx context.Context, path string) (int64, error)
	// Normalize rewrites src to dst at the target loudness in dB LUFS.
	Normalize(ctx context.Context, src, dst string, targetLoudness float64) error
	// Resample rewrites src to dst at the given sample rate and container format.
	Resample(ctx context.Context, src, dst string, sampleRate int, format string) error
	// TrimSilence rewrites src to dst with silence runs removed.
	TrimSilence(ctx context.Context, src, dst string, opts TrimOptions) (TrimResult, error)
}
