package curation

import "log/slog"

// Summary counts the per-item outcomes of one batch operation. Item failures
// are recorded here and in sentinel cells; they never abort the batch.
type Summary struct {
	Attempted int
	Succeeded int
	Failed    int
}

// Record tallies one item outcome.
func (s *Summary) Record(ok bool) {
	s.Attempted++
	if ok {
		s.Succeeded++
	} else {
		s.Failed++
	}
}

// Log emits the standard end-of-batch summary line.
func (s Summary) Log(logger *slog.Logger, operation string) {
	if logger == nil {
		return
	}
	logger.Info("batch complete",
		slog.String("operation", operation),
		slog.Int("attempted", s.Attempted),
		slog.Int("succeeded", s.Succeeded),
		slog.Int("failed", s.Failed))
}
