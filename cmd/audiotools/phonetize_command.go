package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"audiotools/internal/phonemize"
	"audiotools/internal/tabular"
)

func newPhonetizeCSVCommand(ctx *commandContext) *cobra.Command {
	var (
		nameColumn string
		textColumn string
		lang       string
	)

	cmd := &cobra.Command{
		Use:   "phonetize-csv <input_csv> <output_csv>",
		Short: "Phonemize the transcript column of a table with espeak-ng",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger("phonetize-csv")
			if err != nil {
				return err
			}
			if lang == "" {
				lang = cfg.Phonemize.DefaultLanguage
			}

			input, err := tabular.ReadFile(args[0], ctx.tableFormat())
			if err != nil {
				return err
			}
			output, summary, err := phonemize.ProcessTable(cmd.Context(), input,
				phonemize.NewEspeak(cfg.Phonemize.EspeakBinary),
				phonemize.Options{NameColumn: nameColumn, TextColumn: textColumn, Language: lang},
				logger)
			if err != nil {
				return err
			}
			if err := ctx.writeTableLocked(args[1], output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Phonemized %d of %d rows, wrote %s\n",
				summary.Succeeded, summary.Attempted, args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&nameColumn, "name-column", "Basename", "Column identifying each row")
	cmd.Flags().StringVar(&textColumn, "text-column", "Text", "Column holding the transcript text")
	cmd.Flags().StringVarP(&lang, "language", "l", "", "espeak-ng voice / language tag (defaults to config)")
	return cmd
}
