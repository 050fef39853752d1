package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"audiotools/internal/tabular"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show <csv>",
		Short: "Preview a table file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := tabular.ReadFile(args[0], ctx.tableFormat())
			if err != nil {
				return err
			}

			// Piped output stays machine-readable.
			if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
				return tabular.Write(cmd.OutOrStdout(), table, ctx.tableFormat())
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(table))
			fmt.Fprintf(cmd.OutOrStdout(), "%d rows\n", table.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Emit the raw delimited table instead of a rendered one")
	return cmd
}
