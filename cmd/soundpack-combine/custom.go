package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var customName string

var customCmd = &cobra.Command{
	Use:   "custom [file...]",
	Short: "Combine a hand-picked list of files",
	Long: `Combine a fixed list of sound files, given as arguments or taken from the
custom_files setting. Every file must exist; if any is missing nothing is run.`,
	RunE: runCustom,
}

func init() {
	customCmd.Flags().StringVar(&customName, "name", "", "Output name (overrides config)")
	customCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")
	customCmd.Flags().StringVarP(&format, "format", "f", "", "Output format (overrides config)")
	rootCmd.AddCommand(customCmd)
}

func runCustom(cmd *cobra.Command, args []string) error {
	if outputDir != "" {
		settings.OutputDir = outputDir
	}
	if format != "" {
		settings.OutputFormat = format
	}
	if customName != "" {
		settings.CustomOutputName = customName
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	files := settings.CustomFiles
	if len(args) > 0 {
		files = args
	}

	out := cmd.OutOrStdout()
	result := newManager(out).RunCurated(cmd.Context(), files, settings.CustomOutputName)

	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	if err := cmd.Context().Err(); err != nil {
		return err
	}
	if !result.Success() {
		return errRunFailed
	}

	fmt.Fprintf(out, "✨ Created %s\n", result.OutputPath)
	if result.Duration > 0 {
		fmt.Fprintf(out, "   Duration: %s\n", result.Duration.Round(time.Millisecond))
	}
	return nil
}
