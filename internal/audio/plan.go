package audio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/handiism/soundpack-combiner/internal/model"
)

// OutputLabel is the filter graph label of the concatenated stream.
const OutputLabel = "[out]"

// SegmentKind tells sound segments and silence spacers apart.
type SegmentKind int

const (
	// SegmentSound is a resolved audio file.
	SegmentSound SegmentKind = iota

	// SegmentSilence is the shared silence asset.
	SegmentSilence
)

// Segment is one input of the concatenation.
type Segment struct {
	Kind SegmentKind

	// Path is the input file.
	Path string

	// Category is the category the sound was resolved for.
	// Empty for silence segments.
	Category string
}

// Plan is the ordered segment list of one combined track.
//
// Silence only ever appears strictly between two sound segments: a plan
// with k sounds holds exactly k-1 silence segments.
type Plan struct {
	Segments []Segment
	Output   string
}

// BuildPlan drops unresolved sounds, keeps the order of the rest and
// inserts silencePath between each pair.
//
// Returns ErrNothingToAssemble if no sound was resolved. silencePath may be
// empty when at most one sound is resolved.
func BuildPlan(sounds []model.ResolvedSound, silencePath, output string) (*Plan, error) {
	found := model.CountFound(sounds)
	if found == 0 {
		return nil, ErrNothingToAssemble
	}
	if found > 1 && silencePath == "" {
		return nil, errors.New("silence path is required to join more than one sound")
	}

	plan := &Plan{
		Segments: make([]Segment, 0, 2*found-1),
		Output:   output,
	}
	for _, sound := range sounds {
		if !sound.Found() {
			continue
		}
		if len(plan.Segments) > 0 {
			plan.Segments = append(plan.Segments, Segment{Kind: SegmentSilence, Path: silencePath})
		}
		plan.Segments = append(plan.Segments, Segment{Kind: SegmentSound, Path: sound.Path, Category: sound.Category})
	}

	return plan, nil
}

// SoundCount returns the number of sound segments.
func (p *Plan) SoundCount() int {
	return p.count(SegmentSound)
}

// SilenceCount returns the number of silence segments.
func (p *Plan) SilenceCount() int {
	return p.count(SegmentSilence)
}

func (p *Plan) count(kind SegmentKind) int {
	n := 0
	for _, s := range p.Segments {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Categories returns the categories included in the plan, in order.
func (p *Plan) Categories() []string {
	var cats []string
	for _, s := range p.Segments {
		if s.Kind == SegmentSound {
			cats = append(cats, s.Category)
		}
	}
	return cats
}

// Job is a tool independent description of one concatenation.
type Job struct {
	// Inputs are the input files, in concatenation order.
	Inputs []string

	// Filter is the filter graph joining all inputs into OutputLabel.
	Filter string

	// OutputLabel is the filter graph label mapped to the output file.
	OutputLabel string

	// Output is the path of the file to write.
	Output string

	// Quality is the encoder quality setting.
	Quality string
}

// Job converts the plan into a Job using the given encoder quality.
func (p *Plan) Job(quality string) Job {
	inputs := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		inputs[i] = s.Path
	}
	return Job{
		Inputs:      inputs,
		Filter:      ConcatFilter(len(inputs)),
		OutputLabel: OutputLabel,
		Output:      p.Output,
		Quality:     quality,
	}
}

// ConcatFilter returns an audio-only concat filter over n inputs.
//
// Example:
//
//	ConcatFilter(3) // "[0][1][2]concat=n=3:v=0:a=1[out]"
func ConcatFilter(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "[%d]", i)
	}
	fmt.Fprintf(&sb, "concat=n=%d:v=0:a=1%s", n, OutputLabel)
	return sb.String()
}
