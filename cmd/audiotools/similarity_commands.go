package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"audiotools/internal/audio"
	"audiotools/internal/model"
	"audiotools/internal/scoring"
	"audiotools/internal/similarity"
)

func newComputeSimilarityCommand(ctx *commandContext) *cobra.Command {
	var extension string

	cmd := &cobra.Command{
		Use:   "compute-similarity <reference_wav> <corpus_dir> <output_csv>",
		Short: "Score a corpus by cosine similarity to one reference recording",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger("compute-similarity")
			if err != nil {
				return err
			}
			if extension == "" {
				extension = cfg.Audio.DefaultExtension
			}

			embedder, err := model.SharedEmbedder(cfg.Models, logger)
			if err != nil {
				return err
			}
			scorer, err := similarity.NewRefScorer(cmd.Context(), embedder, args[0])
			if err != nil {
				return err
			}

			table, summary, err := scoring.Extract(cmd.Context(), args[1], extension,
				audio.NewFFmpeg(cfg.Audio), scorer, logger)
			if err != nil {
				return err
			}
			if table == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s files found under %s; nothing written\n", extension, args[1])
				return nil
			}
			if err := ctx.writeTableLocked(args[2], table); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scored %d files (%d failed), wrote %s\n",
				summary.Attempted, summary.Failed, args[2])
			return nil
		},
	}

	cmd.Flags().StringVarP(&extension, "extension", "e", "", "Audio file extension to match (defaults to config)")
	return cmd
}

func newComputeSimilarityAdvancedCommand(ctx *commandContext) *cobra.Command {
	var (
		extension string
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:   "compute-similarity-advanced <data_dir> <ref_dir> <output_dir>",
		Short: "Evaluate cloned speech against references across models and speakers",
		Long: "Evaluate cloned speech against references across models and speakers.\n\n" +
			"data_dir is laid out as <model>/<speaker>/<cloned files>; references live\n" +
			"under <ref_dir>/<speaker>. Three tables are written to output_dir: the\n" +
			"per-file details, per-speaker statistics, and per-model statistics,\n" +
			"plus a free-form evaluation log.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger("compute-similarity-advanced")
			if err != nil {
				return err
			}
			if extension == "" {
				extension = cfg.Audio.DefaultExtension
			}

			embedder, err := model.SharedEmbedder(cfg.Models, logger)
			if err != nil {
				return err
			}
			opts := similarity.Options{
				Extension:  extension,
				Resamples:  cfg.Similarity.BootstrapResamples,
				Confidence: cfg.Similarity.ConfidenceLevel,
			}
			if cmd.Flags().Changed("seed") {
				opts.Rand = rand.New(rand.NewPCG(seed, seed))
			}

			result, err := similarity.Evaluate(cmd.Context(), args[0], args[1], embedder, opts, logger)
			if err != nil {
				return err
			}

			outputDir := args[2]
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output directory %q: %w", outputDir, err)
			}
			detailPath := filepath.Join(outputDir, "similarity_details.csv")
			if err := ctx.writeTableLocked(detailPath, result.Detail); err != nil {
				return err
			}
			speakerPath := filepath.Join(outputDir, "speaker_stats.csv")
			if err := ctx.writeTableLocked(speakerPath, result.SpeakerStats); err != nil {
				return err
			}
			modelPath := filepath.Join(outputDir, "model_stats.csv")
			if err := ctx.writeTableLocked(modelPath, result.ModelStats); err != nil {
				return err
			}
			logPath := filepath.Join(outputDir, "evaluation.log")
			if err := os.WriteFile(logPath, []byte(result.Log), 0o644); err != nil {
				return fmt.Errorf("write evaluation log %q: %w", logPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Compared %d files (%d failed), wrote %s, %s, %s, %s\n",
				result.Summary.Attempted, result.Summary.Failed, detailPath, speakerPath, modelPath, logPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&extension, "extension", "e", "", "Audio file extension to match (defaults to config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed the bootstrap for reproducible confidence intervals")
	return cmd
}
