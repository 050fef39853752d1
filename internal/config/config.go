package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	LogDir string `toml:"log_dir"`
}

// Table contains the delimited-table format contract shared by every tool.
type Table struct {
	Delimiter string `toml:"delimiter"`
	Quote     string `toml:"quote"`
}

// Audio contains external codec tooling and corpus-transform defaults.
type Audio struct {
	FFmpegBinary       string  `toml:"ffmpeg_binary"`
	FFprobeBinary      string  `toml:"ffprobe_binary"`
	DefaultExtension   string  `toml:"default_extension"`
	SampleRate         int     `toml:"sample_rate"`
	TargetLoudness     float64 `toml:"target_loudness"`
	SilenceThresholdDB float64 `toml:"silence_threshold_db"`
	MinSilenceMs       int     `toml:"min_silence_ms"`
	PaddingMs          int     `toml:"padding_ms"`
}

// Models contains the external scoring/embedding model commands. The handles
// built from this section are initialized once per process.
type Models struct {
	EmbeddingCommand string `toml:"embedding_command"`
	MOSCommand       string `toml:"mos_command"`
	Device           string `toml:"device"`
	TimeoutSeconds   int    `toml:"timeout_seconds"`
}

// Phonemize contains phonemic-transcription settings.
type Phonemize struct {
	EspeakBinary    string `toml:"espeak_binary"`
	DefaultLanguage string `toml:"default_language"`
}

// Selection contains budget-selection defaults.
type Selection struct {
	ScoreColumn    string `toml:"score_column"`
	DurationColumn string `toml:"duration_column"`
	BudgetMs       int64  `toml:"budget_ms"`
}

// Similarity contains speaker-similarity aggregation settings.
type Similarity struct {
	BootstrapResamples int     `toml:"bootstrap_resamples"`
	ConfidenceLevel    float64 `toml:"confidence_level"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for audiotools.
//
// Sections by subsystem:
//   - Paths: log directory
//   - Table: delimiter and quote character for every read/written table
//   - Audio: ffmpeg/ffprobe binaries and corpus-transform defaults
//   - Models: external embedding/MOS model commands
//   - Phonemize: espeak-ng binary and fallback language
//   - Selection: score/duration column names and budget default
//   - Similarity: bootstrap interval settings
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Table      Table      `toml:"table"`
	Audio      Audio      `toml:"audio"`
	Models     Models     `toml:"models"`
	Phonemize  Phonemize  `toml:"phonemize"`
	Selection  Selection  `toml:"selection"`
	Similarity Similarity `toml:"similarity"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/audiotools/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized. The boolean reports whether a
// file existed at the resolved path; defaults apply either way.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("audiotools.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a run needs before logging starts.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.LogDir, err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
