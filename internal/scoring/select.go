package scoring

import (
	"log/slog"
	"math"
	"sort"
	"strconv"

	"audiotools/internal/tabular"
)

// SelectOptions controls budget selection.
type SelectOptions struct {
	// ScoreColumn is sorted on; rows with unparsable scores sort to the
	// worst end and are effectively never selected under a tight budget.
	ScoreColumn string
	// DurationColumn holds per-row durations in milliseconds.
	DurationColumn string
	// BudgetMs caps the cumulative selected duration. Zero means unlimited.
	BudgetMs int64
	// Descending selects highest scores first. This is the usual direction
	// for quality scores where bigger is better.
	Descending bool
}

// Select returns the best-scoring rows whose durations fit the budget.
// Rows are visited in score order; a row that does not fit is skipped and
// scanning continues, so shorter lower-ranked rows can still use leftover
// budget. Rows with unparsable durations are skipped with a warning.
func Select(table *tabular.Table, opts SelectOptions, logger *slog.Logger) (*tabular.Table, error) {
	scoreCol, err := table.RequireColumn("select rows", opts.ScoreColumn)
	if err != nil {
		return nil, err
	}
	durationCol, err := table.RequireColumn("select rows", opts.DurationColumn)
	if err != nil {
		return nil, err
	}

	order := rankRows(table, scoreCol, opts.Descending)

	selected := tabular.New(table.Header...)
	var total int64
	for _, rowIdx := range order {
		duration, err := strconv.ParseInt(table.Cell(rowIdx, durationCol), 10, 64)
		if err != nil || duration < 0 {
			if logger != nil {
				logger.Warn("skipping row with unparsable duration",
					"row", rowIdx, "value", table.Cell(rowIdx, durationCol))
			}
			continue
		}
		if opts.BudgetMs > 0 && total+duration > opts.BudgetMs {
			continue
		}
		selected.Append(table.Rows[rowIdx]...)
		total += duration
	}

	if logger != nil {
		logger.Info("selection complete",
			"candidates", table.Len(),
			"selected", selected.Len(),
			"total_duration_ms", total,
			"budget_ms", opts.BudgetMs)
	}
	return selected, nil
}

// rankRows returns row indices ordered by score. Unparsable scores rank
// after every parsable one regardless of direction; ties keep input order.
func rankRows(table *tabular.Table, scoreCol int, descending bool) []int {
	order := make([]int, table.Len())
	keys := make([]float64, table.Len())
	for i := range order {
		order[i] = i
		value, err := strconv.ParseFloat(table.Cell(i, scoreCol), 64)
		if err != nil {
			if descending {
				value = math.Inf(-1)
			} else {
				value = math.Inf(1)
			}
		}
		keys[i] = value
	}
	sort.SliceStable(order, func(a, b int) bool {
		if descending {
			return keys[order[a]] > keys[order[b]]
		}
		return keys[order[a]] < keys[order[b]]
	})
	return order
}
