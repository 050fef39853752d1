package preflight

import (
	"audiotools/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// minFreeBytes is the free-space floor for the log directory. Corpus outputs
// are checked per command against their own destination.
const minFreeBytes = 256 << 20

// RunAll executes every check that applies to the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
		CheckDiskSpace("Log directory space", cfg.Paths.LogDir, minFreeBytes),
		CheckBinary("FFmpeg", cfg.Audio.FFmpegBinary, false),
		CheckBinary("FFprobe", cfg.Audio.FFprobeBinary, false),
		CheckCommand("Embedding model", cfg.Models.EmbeddingCommand, true),
		CheckCommand("MOS model", cfg.Models.MOSCommand, true),
		CheckBinary("espeak-ng", cfg.Phonemize.EspeakBinary, true),
	}
	return results
}

// Passed reports whether every non-optional check succeeded.
func Passed(results []Result) bool {
	for _, result := range results {
		if !result.Passed && !result.Optional {
			return false
		}
	}
	return true
}
