package config

import (
	"fmt"
	"strings"
)

// normalize expands path fields and fills in blanks left by a sparse config
// file so the rest of the program never has to re-check them.
func (c *Config) normalize() error {
	expanded, err := expandPath(c.Paths.LogDir)
	if err != nil {
		return fmt.Errorf("normalize log_dir: %w", err)
	}
	c.Paths.LogDir = expanded

	if c.Table.Delimiter == "" {
		c.Table.Delimiter = defaultTableDelimiter
	}
	if c.Table.Quote == "" {
		c.Table.Quote = defaultTableQuote
	}

	c.Audio.FFmpegBinary = fallback(c.Audio.FFmpegBinary, "ffmpeg")
	c.Audio.FFprobeBinary = fallback(c.Audio.FFprobeBinary, "ffprobe")
	c.Audio.DefaultExtension = strings.ToLower(strings.TrimPrefix(fallback(c.Audio.DefaultExtension, defaultAudioExtension), "."))

	c.Models.Device = strings.ToLower(fallback(c.Models.Device, defaultModelDevice))
	if c.Models.TimeoutSeconds <= 0 {
		c.Models.TimeoutSeconds = defaultModelTimeout
	}

	c.Phonemize.EspeakBinary = fallback(c.Phonemize.EspeakBinary, defaultEspeakBinary)
	c.Phonemize.DefaultLanguage = fallback(c.Phonemize.DefaultLanguage, defaultPhonemizeLanguage)

	c.Selection.ScoreColumn = fallback(c.Selection.ScoreColumn, defaultScoreColumn)
	c.Selection.DurationColumn = fallback(c.Selection.DurationColumn, defaultDurationColumn)

	if c.Similarity.BootstrapResamples <= 0 {
		c.Similarity.BootstrapResamples = defaultBootstrapResamples
	}
	if c.Similarity.ConfidenceLevel == 0 {
		c.Similarity.ConfidenceLevel = defaultConfidenceLevel
	}

	c.Logging.Format = strings.ToLower(fallback(c.Logging.Format, defaultLogFormat))
	c.Logging.Level = strings.ToLower(fallback(c.Logging.Level, defaultLogLevel))

	return nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
