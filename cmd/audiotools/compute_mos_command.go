package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"audiotools/internal/audio"
	"audiotools/internal/model"
	"audiotools/internal/scoring"
)

func newComputeMOSCommand(ctx *commandContext) *cobra.Command {
	var extension string

	cmd := &cobra.Command{
		Use:   "compute-mos <corpus_dir> <output_csv>",
		Short: "Score every audio file in a corpus and write a MOS table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger("compute-mos")
			if err != nil {
				return err
			}
			if extension == "" {
				extension = cfg.Audio.DefaultExtension
			}

			corpusDir, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve corpus path: %w", err)
			}

			scorer, err := model.SharedScorer(cfg.Models, logger)
			if err != nil {
				return err
			}
			codec := audio.NewFFmpeg(cfg.Audio)

			table, summary, err := scoring.Extract(cmd.Context(), corpusDir, extension, codec, scorer, logger)
			if err != nil {
				return err
			}
			if table == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s files found under %s; nothing written\n", extension, corpusDir)
				return nil
			}
			if err := ctx.writeTableLocked(args[1], table); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scored %d files (%d failed), wrote %s\n",
				summary.Attempted, summary.Failed, args[1])
			return nil
		},
	}

	cmd.Flags().StringVarP(&extension, "extension", "e", "", "Audio file extension to match (defaults to config)")
	return cmd
}
