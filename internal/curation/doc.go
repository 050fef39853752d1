// Package curation holds the shared contracts for batch dataset-curation
// operations: the error taxonomy that separates structural failures from
// per-item failures, batch result summaries, and the workspace run lock.
package curation
