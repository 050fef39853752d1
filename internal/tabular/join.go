package tabular

import (
	"log/slog"
)

// JoinStats reports match diagnostics for one join. They are informational
// only; a join with zero matches still succeeds and yields a header-only table.
type JoinStats struct {
	Matched   int
	LeftRows  int
	RightKeys int
}

// Join inner-joins two tables on the named key column. The output header is
// left's columns followed by right's columns minus the key. When right holds
// duplicate keys the first occurrence wins and later ones are ignored; left
// rows without a match are dropped.
func Join(left, right *Table, key string, logger *slog.Logger) (*Table, JoinStats, error) {
	leftIdx, err := left.RequireColumn("join", key)
	if err != nil {
		return nil, JoinStats{}, err
	}
	rightIdx, err := right.RequireColumn("join", key)
	if err != nil {
		return nil, JoinStats{}, err
	}

	header := make([]string, 0, len(left.Header)+len(right.Header)-1)
	header = append(header, left.Header...)
	for i, col := range right.Header {
		if i != rightIdx {
			header = append(header, col)
		}
	}

	lookup := make(map[string][]string, len(right.Rows))
	for _, row := range right.Rows {
		if rightIdx >= len(row) {
			continue
		}
		keyVal := row[rightIdx]
		if _, seen := lookup[keyVal]; seen {
			continue
		}
		rest := make([]string, 0, len(row)-1)
		for i, cell := range row {
			if i != rightIdx {
				rest = append(rest, cell)
			}
		}
		lookup[keyVal] = rest
	}

	out := &Table{Header: header}
	stats := JoinStats{LeftRows: len(left.Rows), RightKeys: len(lookup)}
	for _, row := range left.Rows {
		if leftIdx >= len(row) {
			continue
		}
		rest, ok := lookup[row[leftIdx]]
		if !ok {
			continue
		}
		merged := make([]string, 0, len(header))
		merged = append(merged, row...)
		merged = append(merged, rest...)
		out.Rows = append(out.Rows, merged)
		stats.Matched++
	}

	if logger != nil {
		logger.Info("join complete",
			slog.String("key", key),
			slog.Int("matched", stats.Matched),
			slog.Int("left_rows", stats.LeftRows),
			slog.Int("right_keys", stats.RightKeys))
		if stats.Matched == 0 {
			logger.Warn("no rows matched on join key", slog.String("key", key))
		}
	}

	return out, stats, nil
}
