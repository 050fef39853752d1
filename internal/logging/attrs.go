package logging

import "log/slog"

// WithComponent returns a child logger tagged with a component name. The
// console handler lifts this attribute into the line prefix.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger.With(slog.String("component", component))
}

// NopLogger returns a logger that discards everything; used by library code
// whose caller passed nil.
func NopLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
