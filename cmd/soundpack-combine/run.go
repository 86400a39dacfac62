package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	outputDir string
	soundDir  string
	format    string
)

var runCmd = &cobra.Command{
	Use:   "run [soundpack...]",
	Short: "Combine every soundpack of the catalogue",
	Long: `Combine every configured soundpack, or only the named ones.

Each soundpack is processed on its own; a failure is reported and the run
continues with the next soundpack. The exit code is 1 if any soundpack failed.`,
	RunE: runCatalogue,
}

func init() {
	runCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")
	runCmd.Flags().StringVar(&soundDir, "sound-dir", "", "Directory holding the soundpacks (overrides config)")
	runCmd.Flags().StringVarP(&format, "format", "f", "", "Output format, e.g. ogg or mp3 (overrides config)")
	rootCmd.AddCommand(runCmd)
}

func runCatalogue(cmd *cobra.Command, args []string) error {
	if outputDir != "" {
		settings.OutputDir = outputDir
	}
	if soundDir != "" {
		settings.SoundDir = soundDir
	}
	if format != "" {
		settings.OutputFormat = format
	}
	if len(args) > 0 {
		settings.Soundpacks = args
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🔊 Soundpack Combiner")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out)

	manager := newManager(out)
	summary, err := manager.Run(cmd.Context(), settings.Catalogue())

	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "✨ Done! %d successful, %d failed\n", summary.Succeeded, summary.Failed)
	fmt.Fprintf(out, "   Output: %s\n", settings.OutputDir)

	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return errRunFailed
	}
	return nil
}
