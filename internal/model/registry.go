package model

import (
	"log/slog"
	"sync"
	"time"

	"audiotools/internal/config"
)

// Registry hands out the process-wide model instances. The first Load wins;
// a later Load with a different command keeps the original model and logs a
// warning, so a batch never mixes scores from two configurations.
type Registry struct {
	mu       sync.Mutex
	embedder *CommandModel
	scorer   *CommandModel
}

var defaultRegistry Registry

// Embedder returns the shared embedding model for the given configuration.
func (r *Registry) Embedder(cfg config.Models, logger *slog.Logger) (Embedder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	loaded, err := r.load(&r.embedder, cfg.EmbeddingCommand, cfg, logger)
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

// Scorer returns the shared quality-scoring model for the given configuration.
func (r *Registry) Scorer(cfg config.Models, logger *slog.Logger) (Scorer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	loaded, err := r.load(&r.scorer, cfg.MOSCommand, cfg, logger)
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

func (r *Registry) load(slot **CommandModel, command string, cfg config.Models, logger *slog.Logger) (*CommandModel, error) {
	if existing := *slot; existing != nil {
		if existing.Command() != command && logger != nil {
			logger.Warn("model already initialized, ignoring new command",
				"active", existing.Command(), "requested", command)
		}
		return existing, nil
	}
	loaded, err := NewCommandModel(command, cfg.Device, time.Duration(cfg.TimeoutSeconds)*time.Second)
	if err != nil {
		return nil, err
	}
	*slot = loaded
	return loaded, nil
}

// SharedEmbedder returns the process-wide embedding model.
func SharedEmbedder(cfg config.Models, logger *slog.Logger) (Embedder, error) {
	return defaultRegistry.Embedder(cfg, logger)
}

// SharedScorer returns the process-wide quality-scoring model.
func SharedScorer(cfg config.Models, logger *slog.Logger) (Scorer, error) {
	return defaultRegistry.Scorer(cfg, logger)
}
