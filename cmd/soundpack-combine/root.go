package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handiism/soundpack-combiner/internal/combine"
	"github.com/handiism/soundpack-combiner/internal/config"
)

var (
	cfgFile  string
	verbose  bool
	dryRun   bool
	settings *config.Settings
	logger   *slog.Logger
)

// errRunFailed signals that at least one job failed. Details were already
// reported through progress events.
var errRunFailed = errors.New("one or more soundpacks failed")

var rootCmd = &cobra.Command{
	Use:   "soundpack-combine",
	Short: "Combine soundpack samples into a single track",
	Long: `soundpack-combine picks one sample per sound category from each soundpack
and joins them, separated by a short silence, into <soundpack>_combined.<ext>.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		s, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		settings = s
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (YAML)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Show verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Resolve sounds without running ffmpeg")
}

// Execute runs the root command with a context cancelled on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errRunFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return 130
	}
	return 1
}

// newManager builds a Manager that prints progress to out.
func newManager(out io.Writer) *combine.Manager {
	return combine.NewManager(settings, printProgress(out, verbose),
		combine.WithLogger(logger),
		combine.WithDryRun(dryRun),
	)
}

func printProgress(out io.Writer, verbose bool) func(combine.ProgressEvent) {
	return func(event combine.ProgressEvent) {
		if event.Level == combine.LevelVerbose && !verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case combine.LevelError:
			prefix = "❌ "
		case combine.LevelWarning:
			prefix = "⚠️  "
		case combine.LevelSuccess:
			prefix = "✅ "
		case combine.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Fprintln(out, prefix+event.Message)
	}
}

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
