package audio

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	ioutils "github.com/handiism/soundpack-combiner/internal/io"
)

// SilenceSpec describes the silent spacer inserted between sounds.
type SilenceSpec struct {
	SampleRate    int
	ChannelLayout string
	Duration      time.Duration
}

// DefaultSilenceSpec returns a quarter second of mono silence at 44.1 kHz.
func DefaultSilenceSpec() SilenceSpec {
	return SilenceSpec{
		SampleRate:    44100,
		ChannelLayout: "mono",
		Duration:      250 * time.Millisecond,
	}
}

// seconds formats the duration the way it appears in file names and
// filter expressions, e.g. "0.25".
func (s SilenceSpec) seconds() string {
	return strconv.FormatFloat(s.Duration.Seconds(), 'f', -1, 64)
}

// FileName returns the asset file name, e.g. "silence_0.25s.wav".
func (s SilenceSpec) FileName() string {
	return "silence_" + s.seconds() + "s.wav"
}

// Source returns the lavfi source expression generating the silence.
func (s SilenceSpec) Source() string {
	return fmt.Sprintf("anullsrc=r=%d:cl=%s,atrim=0:%s", s.SampleRate, s.ChannelLayout, s.seconds())
}

// SilenceAsset is the shared silence file of a run.
//
// The file is generated at most once: a file already on disk is reused.
// Ensure is safe for concurrent use; callers racing on a missing file share
// one ffmpeg invocation. The batch driver calls it sequentially.
type SilenceAsset struct {
	path    string
	spec    SilenceSpec
	ffmpeg  string
	quality string
	runner  Runner

	group singleflight.Group
	mu    sync.Mutex
	ready bool
}

// NewSilenceAsset creates a SilenceAsset stored in dir.
func NewSilenceAsset(dir string, spec SilenceSpec, ffmpeg, quality string, runner Runner) *SilenceAsset {
	return &SilenceAsset{
		path:    filepath.Join(dir, spec.FileName()),
		spec:    spec,
		ffmpeg:  ffmpeg,
		quality: quality,
		runner:  runner,
	}
}

// Path returns where the asset lives, whether or not it exists yet.
func (s *SilenceAsset) Path() string {
	return s.path
}

// Ensure makes sure the asset exists on disk and returns its path.
func (s *SilenceAsset) Ensure(ctx context.Context) (string, error) {
	s.mu.Lock()
	ready := s.ready
	s.mu.Unlock()
	if ready {
		return s.path, nil
	}

	_, err, _ := s.group.Do(s.path, func() (any, error) {
		if !ioutils.FileExists(s.path) {
			if _, err := runTool(ctx, s.runner, s.ffmpeg, SilenceArgs(s.spec, s.quality, s.path)); err != nil {
				return nil, err
			}
		}
		s.mu.Lock()
		s.ready = true
		s.mu.Unlock()
		return nil, nil
	})
	if err != nil {
		return "", fmt.Errorf("create silence asset: %w", err)
	}
	return s.path, nil
}
