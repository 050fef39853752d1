package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"audiotools/internal/corpus"
	"audiotools/internal/tabular"
)

func newCopySelectedFilesCommand(ctx *commandContext) *cobra.Command {
	var column string

	cmd := &cobra.Command{
		Use:   "copy-selected-files <input_csv> <dest_dir>",
		Short: "Copy the files listed in a table into a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger("copy-selected-files")
			if err != nil {
				return err
			}

			table, err := tabular.ReadFile(args[0], ctx.tableFormat())
			if err != nil {
				return err
			}
			summary, err := corpus.CopySelected(table, column, args[1], logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d of %d files into %s\n",
				summary.Succeeded, summary.Attempted, args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&column, "column", "Path", "Column holding the file paths to copy")
	return cmd
}
