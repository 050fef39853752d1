package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"audiotools/internal/config"
	"audiotools/internal/curation"
	"audiotools/internal/logging"
	"audiotools/internal/tabular"
)

// commandContext lazily resolves the configuration and logger shared by every
// subcommand. Each CLI invocation carries a fresh run_id so log lines from
// concurrent runs stay distinguishable.
type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger(component string) (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger.With("run_id", uuid.NewString())
	})
	if c.loggerErr != nil {
		return nil, c.loggerErr
	}
	return logging.WithComponent(c.logger, component), nil
}

// tableFormat returns the configured delimiter/quote pair.
func (c *commandContext) tableFormat() tabular.Format {
	cfg, err := c.ensureConfig()
	if err != nil {
		return tabular.DefaultFormat
	}
	return tabular.FormatFrom(cfg.Table.Delimiter, cfg.Table.Quote)
}

// writeTableLocked writes a table under an advisory lock on the output path
// so two runs pointed at the same file cannot interleave.
func (c *commandContext) writeTableLocked(path string, table *tabular.Table) error {
	lock := curation.NewRunLock(path)
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()
	return tabular.WriteFile(path, table, c.tableFormat())
}
