// Package logging builds the process-wide slog logger from configuration.
// Two formats exist: a console handler with a component prefix for interactive
// use, and a JSON handler for machine consumption. Batch operations log to
// stderr so stdout stays reserved for table output.
package logging
