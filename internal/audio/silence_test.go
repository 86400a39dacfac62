package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSilenceAsset_CreatedOnce(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{}
	asset := NewSilenceAsset(dir, DefaultSilenceSpec(), "ffmpeg", "9", runner)

	for i := 0; i < 3; i++ {
		path, err := asset.Ensure(context.Background())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "silence_0.25s.wav"), path)
	}

	assert.Len(t, runner.calls, 1)
	assert.FileExists(t, asset.Path())
}

func TestSilenceAsset_ReusesExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "silence_0.25s.wav"), []byte("wav"), 0644))

	runner := &fakeRunner{}
	asset := NewSilenceAsset(dir, DefaultSilenceSpec(), "ffmpeg", "9", runner)

	_, err := asset.Ensure(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runner.calls)
}

func TestSilenceAsset_FailureIsReportedAndRetried(t *testing.T) {
	dir := t.TempDir()
	fail := true
	runner := &fakeRunner{}
	runner.respond = func(name string, args []string) (Result, error) {
		if fail {
			return Result{ExitCode: 1, Stderr: "Unknown input format: 'lavfi'"}, nil
		}
		return Result{}, os.WriteFile(args[len(args)-1], nil, 0644)
	}
	asset := NewSilenceAsset(dir, DefaultSilenceSpec(), "ffmpeg", "9", runner)

	_, err := asset.Ensure(context.Background())
	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, 1, toolErr.ExitCode)
	assert.Contains(t, err.Error(), "lavfi")

	fail = false
	_, err = asset.Ensure(context.Background())
	require.NoError(t, err)
	assert.Len(t, runner.calls, 2)
}
