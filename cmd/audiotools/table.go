package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"audiotools/internal/tabular"
)

// renderTable pretty-prints a parsed table for terminal display. Columns
// after the first are right-aligned, which suits the numeric score and
// duration columns.
func renderTable(t *tabular.Table) string {
	if len(t.Header) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(t.Header))
	for i, name := range t.Header {
		header[i] = name
	}
	tw.AppendHeader(header)

	for _, row := range t.Rows {
		r := make(table.Row, len(t.Header))
		for i := range t.Header {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(t.Header))
	for i := range t.Header {
		align := text.AlignLeft
		if i > 0 {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
