package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"audiotools/internal/audio"
	"audiotools/internal/config"
	"audiotools/internal/transform"
)

func transformOptions(cfg *config.Config, extension string) transform.Options {
	if extension == "" {
		extension = cfg.Audio.DefaultExtension
	}
	return transform.Options{
		Extension:      extension,
		SampleRate:     cfg.Audio.SampleRate,
		TargetLoudness: cfg.Audio.TargetLoudness,
		Trim: audio.TrimOptions{
			ThresholdDB:  cfg.Audio.SilenceThresholdDB,
			MinSilenceMs: cfg.Audio.MinSilenceMs,
			PaddingMs:    cfg.Audio.PaddingMs,
		},
	}
}

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	var (
		extension string
		loudness  float64
	)

	cmd := &cobra.Command{
		Use:   "normalize <src_dir> <dst_dir>",
		Short: "Loudness-normalize a corpus into a mirrored directory tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger("normalize")
			if err != nil {
				return err
			}

			opts := transformOptions(cfg, extension)
			if cmd.Flags().Changed("db") {
				opts.TargetLoudness = loudness
			}
			summary, err := transform.NormalizeCorpus(cmd.Context(), audio.NewFFmpeg(cfg.Audio),
				args[0], args[1], opts, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Normalized %d of %d files into %s\n",
				summary.Succeeded, summary.Attempted, args[1])
			return nil
		},
	}

	cmd.Flags().StringVarP(&extension, "extension", "e", "", "Audio file extension to match (defaults to config)")
	cmd.Flags().Float64Var(&loudness, "db", 0, "Target integrated loudness in dB LUFS (defaults to config)")
	return cmd
}

func newResampleCorpusCommand(ctx *commandContext) *cobra.Command {
	var (
		extension  string
		sampleRate int
	)

	cmd := &cobra.Command{
		Use:   "resample-corpus <src_dir> <dst_dir>",
		Short: "Resample a corpus into a mirrored directory tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger("resample-corpus")
			if err != nil {
				return err
			}

			opts := transformOptions(cfg, extension)
			if cmd.Flags().Changed("sample-rate") {
				opts.SampleRate = sampleRate
			}
			summary, err := transform.ResampleCorpus(cmd.Context(), audio.NewFFmpeg(cfg.Audio),
				args[0], args[1], opts, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Resampled %d of %d files to %d Hz into %s\n",
				summary.Succeeded, summary.Attempted, opts.SampleRate, args[1])
			return nil
		},
	}

	cmd.Flags().StringVarP(&extension, "extension", "e", "", "Audio file extension to match (defaults to config)")
	cmd.Flags().IntVar(&sampleRate, "sample-rate", 0, "Target sample rate in Hz (defaults to config)")
	return cmd
}

func newResampleCorpusInplaceCommand(ctx *commandContext) *cobra.Command {
	var (
		extension  string
		sampleRate int
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "resample-corpus-inplace <dir>",
		Short: "Resample a corpus, replacing the original files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger("resample-corpus-inplace")
			if err != nil {
				return err
			}

			if !yes && !confirm(cmd, fmt.Sprintf("This rewrites every matching file under %s. Continue? [y/N] ", args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
				return nil
			}

			opts := transformOptions(cfg, extension)
			if cmd.Flags().Changed("sample-rate") {
				opts.SampleRate = sampleRate
			}
			summary, err := transform.ResampleCorpusInPlace(cmd.Context(), audio.NewFFmpeg(cfg.Audio),
				args[0], opts, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Resampled %d of %d files in place\n",
				summary.Succeeded, summary.Attempted)
			return nil
		},
	}

	cmd.Flags().StringVarP(&extension, "extension", "e", "", "Audio file extension to match (defaults to config)")
	cmd.Flags().IntVar(&sampleRate, "sample-rate", 0, "Target sample rate in Hz (defaults to config)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newTrimSilenceCorpusCommand(ctx *commandContext) *cobra.Command {
	var (
		extension    string
		reportPath   string
		thresholdDB  float64
		minSilenceMs int
		paddingMs    int
	)

	cmd := &cobra.Command{
		Use:   "trim-silence-corpus <src_dir> <dst_dir>",
		Short: "Remove silence from a corpus into a mirrored directory tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger("trim-silence-corpus")
			if err != nil {
				return err
			}

			opts := transformOptions(cfg, extension)
			if cmd.Flags().Changed("db") {
				opts.Trim.ThresholdDB = thresholdDB
			}
			if cmd.Flags().Changed("min-silence-ms") {
				opts.Trim.MinSilenceMs = minSilenceMs
			}
			if cmd.Flags().Changed("padding-ms") {
				opts.Trim.PaddingMs = paddingMs
			}
			summary, reports, err := transform.TrimSilenceCorpus(cmd.Context(), audio.NewFFmpeg(cfg.Audio),
				args[0], args[1], opts, logger)
			if err != nil {
				return err
			}
			if reportPath != "" {
				if err := transform.WriteTrimReport(reportPath, reports); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Trimmed %d of %d files into %s\n",
				summary.Succeeded, summary.Attempted, args[1])
			return nil
		},
	}

	cmd.Flags().StringVarP(&extension, "extension", "e", "", "Audio file extension to match (defaults to config)")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a per-file trim report to this path")
	cmd.Flags().Float64Var(&thresholdDB, "db", 0, "Silence threshold in dBFS (defaults to config)")
	cmd.Flags().IntVar(&minSilenceMs, "min-silence-ms", 0, "Shortest silence run to remove (defaults to config)")
	cmd.Flags().IntVar(&paddingMs, "padding-ms", 0, "Silence kept around retained audio (defaults to config)")
	return cmd
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
