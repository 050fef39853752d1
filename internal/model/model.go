// Package model runs the external embedding and quality-scoring models.
// Both are long-lived command-line tools invoked once per file; the package
// guards against mid-run reconfiguration so every file in a batch is scored
// by the same model.
package model

import "context"

// Embedder produces a fixed-length speaker embedding for an audio file.
type Embedder interface {
	Embed(ctx context.Context, path string) ([]float64, error)
}

// Scorer produces a scalar quality score for an audio file.
type Scorer interface {
	Score(ctx context.Context, path string) (float64, error)
}
