package config

const (
	defaultLogDir             = "~/.local/share/audiotools/logs"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultTableDelimiter     = "\t"
	defaultTableQuote         = "|"
	defaultAudioExtension     = "wav"
	defaultSampleRate         = 22050
	defaultTargetLoudness     = -23.0
	defaultSilenceThresholdDB = -40.0
	defaultMinSilenceMs       = 1000
	defaultPaddingMs          = 50
	defaultModelDevice        = "cpu"
	defaultModelTimeout       = 120
	defaultEspeakBinary       = "espeak-ng"
	defaultPhonemizeLanguage  = "en-us"
	defaultScoreColumn        = "MOS"
	defaultDurationColumn     = "Duration"
	defaultBudgetMs           = 600000
	defaultBootstrapResamples = 1000
	defaultConfidenceLevel    = 0.95
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Table: Table{
			Delimiter: defaultTableDelimiter,
			Quote:     defaultTableQuote,
		},
		Audio: Audio{
			FFmpegBinary:       "ffmpeg",
			FFprobeBinary:      "ffprobe",
			DefaultExtension:   defaultAudioExtension,
			SampleRate:         defaultSampleRate,
			TargetLoudness:     defaultTargetLoudness,
			SilenceThresholdDB: defaultSilenceThresholdDB,
			MinSilenceMs:       defaultMinSilenceMs,
			PaddingMs:          defaultPaddingMs,
		},
		Models: Models{
			Device:         defaultModelDevice,
			TimeoutSeconds: defaultModelTimeout,
		},
		Phonemize: Phonemize{
			EspeakBinary:    defaultEspeakBinary,
			DefaultLanguage: defaultPhonemizeLanguage,
		},
		Selection: Selection{
			ScoreColumn:    defaultScoreColumn,
			DurationColumn: defaultDurationColumn,
			BudgetMs:       defaultBudgetMs,
		},
		Similarity: Similarity{
			BootstrapResamples: defaultBootstrapResamples,
			ConfidenceLevel:    defaultConfidenceLevel,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
