package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "audiotools",
		Short:         "Batch curation toolkit for speech datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newComputeMOSCommand(ctx))
	rootCmd.AddCommand(newSelectBestSamplesCommand(ctx))
	rootCmd.AddCommand(newJoinCSVFilesCommand(ctx))
	rootCmd.AddCommand(newCopySelectedFilesCommand(ctx))
	rootCmd.AddCommand(newComputeSimilarityCommand(ctx))
	rootCmd.AddCommand(newComputeSimilarityAdvancedCommand(ctx))
	rootCmd.AddCommand(newNormalizeCommand(ctx))
	rootCmd.AddCommand(newResampleCorpusCommand(ctx))
	rootCmd.AddCommand(newResampleCorpusInplaceCommand(ctx))
	rootCmd.AddCommand(newTrimSilenceCorpusCommand(ctx))
	rootCmd.AddCommand(newPhonetizeCSVCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
