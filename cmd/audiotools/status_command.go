package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"audiotools/internal/preflight"
	"audiotools/internal/tabular"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the external tools and paths the commands depend on",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cfg)
			view := tabular.New("Check", "Status", "Detail")
			for _, result := range results {
				status := "FAIL"
				switch {
				case result.Passed:
					status = "ok"
				case result.Optional:
					status = "missing (optional)"
				}
				view.Append(result.Name, status, result.Detail)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(view))

			if !preflight.Passed(results) {
				return errors.New("one or more required checks failed")
			}
			return nil
		},
	}
}
