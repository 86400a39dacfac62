package audio

import (
	"context"
	"fmt"
	"log/slog"

	ioutils "github.com/handiism/soundpack-combiner/internal/io"
	"github.com/handiism/soundpack-combiner/internal/model"
)

// filterScriptPrefix names the transient filter script written per job.
const filterScriptPrefix = "concat-"

// AssemblerConfig holds the ffmpeg settings of an Assembler.
type AssemblerConfig struct {
	// FFmpegPath is the ffmpeg executable. Defaults to "ffmpeg".
	FFmpegPath string

	// Quality is passed to -q:a.
	Quality string

	// WorkDir receives the transient filter script of each job.
	WorkDir string
}

// Assembler concatenates resolved sounds into one output file.
type Assembler struct {
	runner  Runner
	silence *SilenceAsset
	cfg     AssemblerConfig
	logger  *slog.Logger
}

// NewAssembler creates an Assembler. A nil logger uses slog.Default().
func NewAssembler(runner Runner, silence *SilenceAsset, cfg AssemblerConfig, logger *slog.Logger) *Assembler {
	if cfg.FFmpegPath == "" {
		cfg.FFmpegPath = DefaultFFmpegCommand
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		runner:  runner,
		silence: silence,
		cfg:     cfg,
		logger:  logger,
	}
}

// Assemble writes the resolved sounds, separated by silence, to output.
//
// Unresolved sounds are skipped. If none are resolved ErrNothingToAssemble
// is returned before anything is run. The silence asset is only requested
// when at least two sounds are joined. A failed ffmpeg run is returned as
// a *ToolError; there is no retry.
func (a *Assembler) Assemble(ctx context.Context, sounds []model.ResolvedSound, output string) error {
	found := model.CountFound(sounds)
	if found == 0 {
		return ErrNothingToAssemble
	}

	var silencePath string
	if found > 1 {
		path, err := a.silence.Ensure(ctx)
		if err != nil {
			return err
		}
		silencePath = path
	}

	plan, err := BuildPlan(sounds, silencePath, output)
	if err != nil {
		return err
	}
	job := plan.Job(a.cfg.Quality)

	script, err := ioutils.WriteTempFile(a.cfg.WorkDir, filterScriptPrefix, ".txt", []byte(job.Filter))
	if err != nil {
		return fmt.Errorf("write filter script: %w", err)
	}
	defer func() {
		if err := ioutils.RemoveQuietly(script); err != nil {
			a.logger.Warn("failed to remove filter script", slog.String("path", script), slog.Any("error", err))
		}
	}()

	args := ConcatArgs(job, script)
	a.logger.Debug("running ffmpeg",
		slog.String("output", output),
		slog.Int("sounds", plan.SoundCount()),
		slog.Int("silences", plan.SilenceCount()),
		slog.String("command", commandLine(a.cfg.FFmpegPath, args)),
	)

	if _, err := runTool(ctx, a.runner, a.cfg.FFmpegPath, args); err != nil {
		return err
	}
	return nil
}
