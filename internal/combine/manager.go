package combine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/handiism/soundpack-combiner/internal/audio"
	"github.com/handiism/soundpack-combiner/internal/config"
	ioutils "github.com/handiism/soundpack-combiner/internal/io"
	"github.com/handiism/soundpack-combiner/internal/model"
	"github.com/handiism/soundpack-combiner/internal/resolve"
)

// TagArtist and TagAlbum are written to the ID3 tags of mp3 outputs.
const (
	TagArtist = "soundpack-combiner"
	TagAlbum  = "Soundpack samples"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update of a run.
type ProgressEvent struct {
	Message   string
	Level     ProgressLevel
	Soundpack string
}

// Summary aggregates the results of a catalogue run.
type Summary struct {
	Succeeded int
	Failed    int
	Results   []*model.JobResult
}

func (s *Summary) add(result *model.JobResult) {
	s.Results = append(s.Results, result)
	if result.Success() {
		s.Succeeded++
	} else {
		s.Failed++
	}
}

// Manager coordinates soundpack combination.
type Manager struct {
	settings     *config.Settings
	runner       audio.Runner
	resolver     *resolve.Resolver
	assembler    *audio.Assembler
	prober       *audio.Prober
	tagger       *audio.Tagger
	imageService *ioutils.ImageService
	logger       *slog.Logger
	dryRun       bool

	total     int32
	processed int32

	onProgress func(ProgressEvent)
}

// Option configures a Manager.
type Option func(*Manager)

// WithRunner replaces the process runner used for ffmpeg and ffprobe.
func WithRunner(runner audio.Runner) Option {
	return func(m *Manager) {
		m.runner = runner
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithDryRun makes the Manager resolve categories without running ffmpeg.
func WithDryRun(dryRun bool) Option {
	return func(m *Manager) {
		m.dryRun = dryRun
	}
}

// NewManager creates a new Manager from explicit settings.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent), opts ...Option) *Manager {
	m := &Manager{
		settings:     settings,
		runner:       audio.ExecRunner{},
		resolver:     resolve.NewResolver(settings.Extensions),
		tagger:       audio.NewTagger(settings.TagConfig()),
		imageService: ioutils.NewImageService(),
		logger:       slog.Default(),
		onProgress:   onProgress,
	}
	for _, opt := range opts {
		opt(m)
	}

	silence := audio.NewSilenceAsset(settings.OutputDir, settings.SilenceSpec(), settings.FFmpegPath, settings.Quality, m.runner)
	m.assembler = audio.NewAssembler(m.runner, silence, audio.AssemblerConfig{
		FFmpegPath: settings.FFmpegPath,
		Quality:    settings.Quality,
		WorkDir:    settings.OutputDir,
	}, m.logger)
	m.prober = audio.NewProber(m.runner, settings.FFprobePath)

	return m
}

// Run processes every soundpack of the catalogue in order.
//
// Failures are contained per soundpack and counted in the Summary. Run
// only returns an error when the output directory cannot be created or
// ctx is cancelled; the Summary then covers the soundpacks handled so far.
func (m *Manager) Run(ctx context.Context, catalogue []model.Soundpack) (*Summary, error) {
	summary := &Summary{}
	atomic.StoreInt32(&m.total, int32(len(catalogue)))
	atomic.StoreInt32(&m.processed, 0)

	if !m.dryRun {
		if err := ioutils.EnsureDir(m.settings.OutputDir); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating output directory: %v", err), Level: LevelError})
			return summary, fmt.Errorf("create output directory: %w", err)
		}
	}

	for _, pack := range catalogue {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result := m.processSoundpack(ctx, pack)
		summary.add(result)
		atomic.AddInt32(&m.processed, 1)

		// A tool killed by cancellation surfaces as a failed job; the run
		// itself still ends as cancelled.
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		m.logger.Debug("soundpack processed",
			slog.String("soundpack", pack.Name),
			slog.Bool("success", result.Success()),
			slog.Int("missing", len(result.Missing)),
		)
	}

	return summary, nil
}

// RunCurated combines a fixed list of files into OutputDir/<outputName>_combined.<ext>.
//
// Every file is checked before anything runs; if any is missing the whole
// job fails with a *MissingFilesError and ffmpeg is never invoked.
func (m *Manager) RunCurated(ctx context.Context, files []string, outputName string) *model.JobResult {
	result := &model.JobResult{
		Soundpack:  outputName,
		OutputPath: m.settings.OutputPath(outputName),
	}
	atomic.StoreInt32(&m.total, 1)
	atomic.StoreInt32(&m.processed, 0)
	defer atomic.AddInt32(&m.processed, 1)

	m.progress(ProgressEvent{Message: fmt.Sprintf("Creating custom %s combined file...", outputName), Level: LevelInfo, Soundpack: outputName})
	m.progress(ProgressEvent{Message: fmt.Sprintf("Using %d sound files with %gs silence between each", len(files), m.settings.SilenceDuration), Level: LevelInfo, Soundpack: outputName})

	for i, file := range files {
		sound := model.ResolvedSound{Category: m.curatedCategory(i, file), Path: file}
		result.Resolved = append(result.Resolved, sound)

		if !ioutils.FileExists(file) {
			result.Missing = append(result.Missing, file)
			m.progress(ProgressEvent{Message: fmt.Sprintf("  ! File %d NOT FOUND: %s", i+1, filepath.Base(file)), Level: LevelError, Soundpack: outputName})
			continue
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("  + File %d: %s", i+1, filepath.Base(file)), Level: LevelInfo, Soundpack: outputName})
	}

	if len(result.Missing) > 0 {
		result.Err = &MissingFilesError{Files: result.Missing}
		m.progress(ProgressEvent{Message: fmt.Sprintf("ERROR: %d file(s) not found!", len(result.Missing)), Level: LevelError, Soundpack: outputName})
		return result
	}

	if m.dryRun {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Dry run: would create %s", filepath.Base(result.OutputPath)), Level: LevelInfo, Soundpack: outputName})
		return result
	}

	if err := ioutils.EnsureDir(m.settings.OutputDir); err != nil {
		result.Err = fmt.Errorf("create output directory: %w", err)
		m.progress(ProgressEvent{Message: result.Err.Error(), Level: LevelError, Soundpack: outputName})
		return result
	}

	if err := m.assemble(ctx, result); err != nil {
		return result
	}

	m.finishOutput(ctx, result, "", true)
	return result
}

// GetProgress returns how many soundpacks of the current run are done.
func (m *Manager) GetProgress() (processed, total int32) {
	return atomic.LoadInt32(&m.processed), atomic.LoadInt32(&m.total)
}

// curatedCategory names the i-th curated file after the configured category
// at the same position, falling back to the file name.
func (m *Manager) curatedCategory(i int, file string) string {
	if i < len(m.settings.Categories) {
		return m.settings.Categories[i].Name
	}
	return filepath.Base(file)
}

func (m *Manager) processSoundpack(ctx context.Context, pack model.Soundpack) *model.JobResult {
	result := &model.JobResult{
		Soundpack:  pack.Name,
		OutputPath: m.settings.OutputPath(pack.Name),
	}

	if !ioutils.DirExists(pack.Path) {
		result.Err = fmt.Errorf("%w: %s", ErrSoundpackRootMissing, pack.Path)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Soundpack not found: %s", pack.Name), Level: LevelError, Soundpack: pack.Name})
		return result
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Processing %s...", pack.Name), Level: LevelInfo, Soundpack: pack.Name})

	for _, category := range m.settings.Categories {
		sound := m.resolver.Resolve(pack.Path, category)
		result.Resolved = append(result.Resolved, sound)

		if sound.Found() {
			m.progress(ProgressEvent{Message: fmt.Sprintf("  + %s: %s", category.Name, filepath.Base(sound.Path)), Level: LevelInfo, Soundpack: pack.Name})
		} else {
			result.Missing = append(result.Missing, category.Name)
			m.progress(ProgressEvent{Message: fmt.Sprintf("  - %s: NOT FOUND", category.Name), Level: LevelWarning, Soundpack: pack.Name})
		}
	}

	if model.CountFound(result.Resolved) == 0 {
		result.Err = audio.ErrNothingToAssemble
		m.progress(ProgressEvent{Message: fmt.Sprintf("No audio files found for %s", pack.Name), Level: LevelError, Soundpack: pack.Name})
		return result
	}

	if m.dryRun {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Dry run: would create %s", filepath.Base(result.OutputPath)), Level: LevelInfo, Soundpack: pack.Name})
		return result
	}

	if err := m.assemble(ctx, result); err != nil {
		return result
	}

	m.finishOutput(ctx, result, pack.Path, m.settings.ProbeOutput)
	return result
}

// assemble runs the Assembler for result and records a failure on it.
func (m *Manager) assemble(ctx context.Context, result *model.JobResult) error {
	m.progress(ProgressEvent{Message: "Running ffmpeg...", Level: LevelVerbose, Soundpack: result.Soundpack})

	err := m.assembler.Assemble(ctx, result.Resolved, result.OutputPath)
	if err == nil {
		return nil
	}

	result.Err = err
	m.progress(ProgressEvent{Message: fmt.Sprintf("ffmpeg error for %s: %v", result.Soundpack, err), Level: LevelError, Soundpack: result.Soundpack})

	var toolErr *audio.ToolError
	if errors.As(err, &toolErr) && toolErr.Stderr != "" {
		m.logger.Debug("ffmpeg diagnostic", slog.String("soundpack", result.Soundpack), slog.String("stderr", toolErr.Stderr))
	}
	return err
}

// finishOutput tags and probes a successfully written track. Failures here
// are warnings; the track itself exists.
func (m *Manager) finishOutput(ctx context.Context, result *model.JobResult, packRoot string, probe bool) {
	if audio.SupportsTags(result.OutputPath) && (m.settings.ModifyTags || m.settings.EmbedCoverArt) {
		var artwork []byte
		if m.settings.EmbedCoverArt && packRoot != "" {
			artwork = m.loadCoverArt(ctx, packRoot, result.Soundpack)
		}

		meta := audio.TagMeta{
			Title:      result.Soundpack,
			Artist:     TagArtist,
			Album:      TagAlbum,
			Categories: foundCategories(result.Resolved),
		}
		if err := m.tagger.SaveTags(result.OutputPath, meta, artwork); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error tagging %s: %v", filepath.Base(result.OutputPath), err), Level: LevelWarning, Soundpack: result.Soundpack})
		}
	}

	if probe {
		duration, err := m.prober.Duration(ctx, result.OutputPath)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Could not verify %s: %v", filepath.Base(result.OutputPath), err), Level: LevelWarning, Soundpack: result.Soundpack})
		} else {
			result.Duration = duration
			m.progress(ProgressEvent{Message: fmt.Sprintf("  + duration=%.3fs", duration.Seconds()), Level: LevelInfo, Soundpack: result.Soundpack})
		}
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Created %s", filepath.Base(result.OutputPath)), Level: LevelSuccess, Soundpack: result.Soundpack})
}

func (m *Manager) loadCoverArt(ctx context.Context, packRoot, name string) []byte {
	path := ioutils.FindCoverImage(packRoot)
	if path == "" {
		return nil
	}

	artwork, err := m.imageService.LoadCoverArt(ctx, path, m.settings.CoverArtMaxSize)
	if err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error reading cover art for %s: %v", name, err), Level: LevelWarning, Soundpack: name})
		return nil
	}
	return artwork
}

func foundCategories(sounds []model.ResolvedSound) []string {
	var cats []string
	for _, s := range sounds {
		if s.Found() {
			cats = append(cats, s.Category)
		}
	}
	return cats
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
