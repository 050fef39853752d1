package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"audiotools/internal/scoring"
	"audiotools/internal/tabular"
)

func newSelectBestSamplesCommand(ctx *commandContext) *cobra.Command {
	var (
		budgetMs       int64
		scoreColumn    string
		durationColumn string
		ascending      bool
	)

	cmd := &cobra.Command{
		Use:   "select-best-samples <input_csv> <output_csv>",
		Short: "Select the best-scoring rows that fit a duration budget",
		Long: "Select the best-scoring rows that fit a duration budget.\n\n" +
			"Rows are visited best score first; a row whose duration does not fit the\n" +
			"remaining budget is skipped and scanning continues with the next row.\n" +
			"A budget of 0 selects everything.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger("select-best-samples")
			if err != nil {
				return err
			}

			opts := scoring.SelectOptions{
				ScoreColumn:    scoreColumn,
				DurationColumn: durationColumn,
				BudgetMs:       budgetMs,
				Descending:     !ascending,
			}
			if !cmd.Flags().Changed("budget-ms") {
				opts.BudgetMs = cfg.Selection.BudgetMs
			}
			if opts.ScoreColumn == "" {
				opts.ScoreColumn = cfg.Selection.ScoreColumn
			}
			if opts.DurationColumn == "" {
				opts.DurationColumn = cfg.Selection.DurationColumn
			}

			input, err := tabular.ReadFile(args[0], ctx.tableFormat())
			if err != nil {
				return err
			}
			selected, err := scoring.Select(input, opts, logger)
			if err != nil {
				return err
			}
			if err := ctx.writeTableLocked(args[1], selected); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Selected %d of %d rows, wrote %s\n",
				selected.Len(), input.Len(), args[1])
			return nil
		},
	}

	cmd.Flags().Int64Var(&budgetMs, "budget-ms", 0, "Duration budget in milliseconds (0 = unlimited, defaults to config)")
	cmd.Flags().StringVar(&scoreColumn, "score-column", "", "Column to rank by (defaults to config)")
	cmd.Flags().StringVar(&durationColumn, "duration-column", "", "Column holding durations in ms (defaults to config)")
	cmd.Flags().BoolVar(&ascending, "ascending", false, "Select lowest scores first")
	return cmd
}
