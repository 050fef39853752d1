package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"audiotools/internal/tabular"
)

func newJoinCSVFilesCommand(ctx *commandContext) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "join-csv-files <left_csv> <right_csv> <output_csv>",
		Short: "Inner-join two tables on a shared key column",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger("join-csv-files")
			if err != nil {
				return err
			}

			format := ctx.tableFormat()
			left, err := tabular.ReadFile(args[0], format)
			if err != nil {
				return err
			}
			right, err := tabular.ReadFile(args[1], format)
			if err != nil {
				return err
			}

			joined, stats, err := tabular.Join(left, right, key, logger)
			if err != nil {
				return err
			}
			if err := ctx.writeTableLocked(args[2], joined); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Joined %d of %d rows on %q, wrote %s\n",
				stats.Matched, stats.LeftRows, key, args[2])
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "Basename", "Key column present in both tables")
	return cmd
}
