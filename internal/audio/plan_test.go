package audio

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/handiism/soundpack-combiner/internal/model"
)

func sounds(paths ...string) []model.ResolvedSound {
	out := make([]model.ResolvedSound, len(paths))
	for i, p := range paths {
		out[i] = model.ResolvedSound{Category: fmt.Sprintf("cat%d", i), Path: p}
	}
	return out
}

func TestBuildPlan_NothingResolved(t *testing.T) {
	_, err := BuildPlan(sounds("", ""), "/silence.wav", "/out.ogg")
	assert.ErrorIs(t, err, ErrNothingToAssemble)

	_, err = BuildPlan(nil, "/silence.wav", "/out.ogg")
	assert.ErrorIs(t, err, ErrNothingToAssemble)
}

func TestBuildPlan_SingleSoundHasNoSilence(t *testing.T) {
	plan, err := BuildPlan(sounds("", "/a.ogg", ""), "", "/out.ogg")
	require.NoError(t, err)

	assert.Equal(t, 1, plan.SoundCount())
	assert.Equal(t, 0, plan.SilenceCount())
	assert.Equal(t, []Segment{{Kind: SegmentSound, Path: "/a.ogg", Category: "cat1"}}, plan.Segments)
}

func TestBuildPlan_NoTrailingSilenceWhenLastCategoryMissing(t *testing.T) {
	plan, err := BuildPlan(sounds("/a.ogg", "", "/c.ogg", ""), "/s.wav", "/out.ogg")
	require.NoError(t, err)

	want := []Segment{
		{Kind: SegmentSound, Path: "/a.ogg", Category: "cat0"},
		{Kind: SegmentSilence, Path: "/s.wav"},
		{Kind: SegmentSound, Path: "/c.ogg", Category: "cat2"},
	}
	assert.Equal(t, want, plan.Segments)
	assert.Equal(t, []string{"cat0", "cat2"}, plan.Categories())
	assert.Equal(t, "/out.ogg", plan.Output)
}

func TestBuildPlan_RequiresSilenceForMultipleSounds(t *testing.T) {
	_, err := BuildPlan(sounds("/a.ogg", "/b.ogg"), "", "/out.ogg")
	assert.Error(t, err)
}

func TestBuildPlan_SilenceCountProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		found := rapid.SliceOfN(rapid.Bool(), 1, 20).Draw(t, "found")

		var input []model.ResolvedSound
		k := 0
		for i, f := range found {
			s := model.ResolvedSound{Category: fmt.Sprintf("c%d", i)}
			if f {
				s.Path = fmt.Sprintf("/s%d.ogg", i)
				k++
			}
			input = append(input, s)
		}

		plan, err := BuildPlan(input, "/silence.wav", "/out.ogg")
		if k == 0 {
			if err != ErrNothingToAssemble {
				t.Fatalf("expected ErrNothingToAssemble, got %v", err)
			}
			return
		}
		if err != nil {
			t.Fatalf("BuildPlan() error = %v", err)
		}

		if plan.SoundCount() != k {
			t.Fatalf("sounds = %d, want %d", plan.SoundCount(), k)
		}
		if plan.SilenceCount() != k-1 {
			t.Fatalf("silences = %d, want %d", plan.SilenceCount(), k-1)
		}
		for i, seg := range plan.Segments {
			wantKind := SegmentSound
			if i%2 == 1 {
				wantKind = SegmentSilence
			}
			if seg.Kind != wantKind {
				t.Fatalf("segment %d kind = %v, want %v", i, seg.Kind, wantKind)
			}
		}
	})
}

func TestPlan_Job(t *testing.T) {
	plan, err := BuildPlan(sounds("/a.ogg", "/b.wav"), "/s.wav", "/out.ogg")
	require.NoError(t, err)

	job := plan.Job("9")

	assert.Equal(t, []string{"/a.ogg", "/s.wav", "/b.wav"}, job.Inputs)
	assert.Equal(t, "[0][1][2]concat=n=3:v=0:a=1[out]", job.Filter)
	assert.Equal(t, "[out]", job.OutputLabel)
	assert.Equal(t, "/out.ogg", job.Output)
	assert.Equal(t, "9", job.Quality)
}

func TestConcatFilter(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "[0]concat=n=1:v=0:a=1[out]"},
		{3, "[0][1][2]concat=n=3:v=0:a=1[out]"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ConcatFilter(tt.n))
		})
	}
}

func TestConcatArgs(t *testing.T) {
	job := Job{
		Inputs:      []string{"/a.ogg", "/s.wav", "/b.ogg"},
		Filter:      "[0][1][2]concat=n=3:v=0:a=1[out]",
		OutputLabel: "[out]",
		Output:      "/out.ogg",
		Quality:     "9",
	}

	want := []string{
		"-y",
		"-i", "/a.ogg",
		"-i", "/s.wav",
		"-i", "/b.ogg",
		"-filter_complex_script", "/work/concat.txt",
		"-map", "[out]",
		"-q:a", "9",
		"/out.ogg",
	}
	assert.Equal(t, want, ConcatArgs(job, "/work/concat.txt"))
}

func TestSilenceSpec(t *testing.T) {
	spec := DefaultSilenceSpec()

	assert.Equal(t, "silence_0.25s.wav", spec.FileName())
	assert.Equal(t, "anullsrc=r=44100:cl=mono,atrim=0:0.25", spec.Source())
	assert.Equal(t,
		[]string{"-y", "-f", "lavfi", "-i", "anullsrc=r=44100:cl=mono,atrim=0:0.25", "-q:a", "9", "/out/silence_0.25s.wav"},
		SilenceArgs(spec, "9", "/out/silence_0.25s.wav"),
	)
}

func TestProbeDurationArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"-v", "error", "-show_entries", "format=duration", "-of", "csv=p=0", "/out.ogg"},
		ProbeDurationArgs("/out.ogg"),
	)
}
