// Package similarity compares cloned speech against reference recordings
// using speaker embeddings, and aggregates the per-file scores into
// per-speaker and per-model statistics with bootstrap confidence intervals.
package similarity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cosine returns the cosine similarity of two embeddings.
func Cosine(a, b []float64) (float64, error) {
	if err := checkVectors(a, b); err != nil {
		return 0, err
	}
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("cosine similarity undefined for zero vector")
	}
	return floats.Dot(a, b) / (normA * normB), nil
}

// Euclidean returns the L2 norm of the difference between two embeddings,
// so identical embeddings score 0.
func Euclidean(a, b []float64) (float64, error) {
	if err := checkVectors(a, b); err != nil {
		return 0, err
	}
	return floats.Distance(a, b, 2), nil
}

func checkVectors(a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return fmt.Errorf("empty embedding")
	}
	if len(a) != len(b) {
		return fmt.Errorf("embedding dimension mismatch: %d vs %d", len(a), len(b))
	}
	for _, v := range a {
		if math.IsNaN(v) {
			return fmt.Errorf("embedding contains NaN")
		}
	}
	for _, v := range b {
		if math.IsNaN(v) {
			return fmt.Errorf("embedding contains NaN")
		}
	}
	return nil
}
