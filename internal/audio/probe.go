package audio

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Prober reads media information with ffprobe.
type Prober struct {
	runner  Runner
	ffprobe string
}

// NewProber creates a Prober. An empty ffprobe path defaults to "ffprobe".
func NewProber(runner Runner, ffprobe string) *Prober {
	if ffprobe == "" {
		ffprobe = DefaultFFprobeCommand
	}
	return &Prober{runner: runner, ffprobe: ffprobe}
}

// Duration returns the duration of the media file at path.
func (p *Prober) Duration(ctx context.Context, path string) (time.Duration, error) {
	res, err := runTool(ctx, p.runner, p.ffprobe, ProbeDurationArgs(path))
	if err != nil {
		return 0, err
	}

	out := strings.TrimSpace(res.Stdout)
	seconds, err := strconv.ParseFloat(out, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", out, err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
