package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/soundpack-combiner/internal/model"
)

// layout creates the given files (relative, slash separated) under a fresh
// temp directory and returns its path. Names ending in "/" create directories.
func layout(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if f[len(f)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("audio"), 0644))
	}
	return root
}

func TestResolve_FirstPriorityPatternWins(t *testing.T) {
	root := layout(t,
		"fire_gun/handguns/pistol_b.ogg",
		"fire_gun/handguns/pistol_a.ogg",
		"fire_gun/rifle.ogg",
		"guns/zz.ogg",
	)
	cat := model.Category{Name: "9mm shoot", Patterns: []string{"fire_gun/handguns", "fire_gun", "guns"}}

	got := NewResolver(nil).Resolve(root, cat)

	assert.True(t, got.Found())
	assert.Equal(t, "9mm shoot", got.Category)
	assert.Equal(t, filepath.Join(root, "fire_gun", "handguns", "pistol_a.ogg"), got.Path)
}

func TestResolve_ExtensionPriorityBeatsName(t *testing.T) {
	root := layout(t,
		"explosion/a_big.wav",
		"explosion/z_small.ogg",
	)
	cat := model.Category{Name: "explosion", Patterns: []string{"explosion"}}

	got := NewResolver(nil).Resolve(root, cat)

	assert.Equal(t, filepath.Join(root, "explosion", "z_small.ogg"), got.Path)
}

func TestResolve_FallsBackToWavWhenNoOgg(t *testing.T) {
	root := layout(t,
		"explosion/b.wav",
		"explosion/a.wav",
		"explosion/notes.txt",
	)
	cat := model.Category{Name: "explosion", Patterns: []string{"explosion"}}

	got := NewResolver(nil).Resolve(root, cat)

	assert.Equal(t, filepath.Join(root, "explosion", "a.wav"), got.Path)
}

func TestResolve_EmptyPatternDirContinuesToNextPattern(t *testing.T) {
	root := layout(t,
		"smash_success/window/readme.txt",
		"smash/window/glass.ogg",
		"smash_success/other.ogg",
	)
	cat := model.Category{Name: "window shatter", Patterns: []string{"smash_success/window", "smash/window", "smash_success"}}

	got := NewResolver(nil).Resolve(root, cat)

	assert.Equal(t, filepath.Join(root, "smash", "window", "glass.ogg"), got.Path)
}

func TestResolve_PatternThatIsAFileIsSkipped(t *testing.T) {
	root := layout(t,
		"plmove",
		"steps/step1.ogg",
	)
	cat := model.Category{Name: "footstep", Patterns: []string{"plmove", "steps"}}

	got := NewResolver(nil).Resolve(root, cat)

	assert.Equal(t, filepath.Join(root, "steps", "step1.ogg"), got.Path)
}

func TestResolve_KeywordFallback(t *testing.T) {
	root := layout(t,
		"env/ambient/wind.ogg",
		"misc/Explosions_Big/boom.wav",
	)
	cat := model.Category{Name: "explosion", Patterns: []string{"explosion", "explosions"}}

	got := NewResolver(nil).Resolve(root, cat)

	require.True(t, got.Found())
	assert.Equal(t, filepath.Join(root, "misc", "Explosions_Big", "boom.wav"), got.Path)
}

func TestResolve_KeywordFallbackSkipsDirsWithoutAudio(t *testing.T) {
	root := layout(t,
		"a_engine/readme.txt",
		"b_engine/start.ogg",
	)
	cat := model.Category{Name: "car engine start", Patterns: []string{"engine_start"}}

	got := NewResolver(nil).Resolve(root, cat)

	assert.Equal(t, filepath.Join(root, "b_engine", "start.ogg"), got.Path)
}

func TestResolve_FirstKeywordInWordOrderWins(t *testing.T) {
	root := layout(t,
		"aaa_start/s.ogg",
		"zzz_engine/e.ogg",
	)
	cat := model.Category{Name: "car engine start", Patterns: []string{"engine_start"}}

	got := NewResolver(nil).Resolve(root, cat)

	// "engine" comes before "start" in the name, so its directory wins even
	// though "aaa_start" is visited first.
	assert.Equal(t, filepath.Join(root, "zzz_engine", "e.ogg"), got.Path)
}

func TestResolve_ShortTokensAreIgnored(t *testing.T) {
	root := layout(t,
		"hit/h.ogg",
		"car/c.ogg",
	)
	cat := model.Category{Name: "car hit", Patterns: []string{"nothing"}}

	got := NewResolver(nil).Resolve(root, cat)

	assert.False(t, got.Found())
}

func TestResolve_RootDirectoryNameIsNotMatched(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "explosion_pack")
	require.NoError(t, os.MkdirAll(root, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "boom.ogg"), []byte("x"), 0644))

	cat := model.Category{Name: "explosion"}
	got := NewResolver(nil).Resolve(root, cat)

	assert.False(t, got.Found())
}

func TestResolve_NotFoundIsNotAnError(t *testing.T) {
	root := layout(t, "music/theme.mp3", "empty/")
	cat := model.Category{Name: "female hurt", Patterns: []string{"deal_damage/hurt_f", "hurt_f"}}

	got := NewResolver(nil).Resolve(root, cat)

	assert.False(t, got.Found())
	assert.Equal(t, "female hurt", got.Category)
	assert.Empty(t, got.Path)
}

func TestResolve_CustomExtensions(t *testing.T) {
	root := layout(t,
		"drive/loop.ogg",
		"drive/loop.FLAC",
	)
	cat := model.Category{Name: "drive", Patterns: []string{"drive"}}

	got := NewResolver([]string{".flac", ".ogg"}).Resolve(root, cat)

	assert.Equal(t, filepath.Join(root, "drive", "loop.FLAC"), got.Path)
}

func TestFirstAudioFile(t *testing.T) {
	root := layout(t,
		"dir/sub.ogg/",
		"dir/b.ogg",
		"dir/a.txt",
	)
	r := NewResolver(nil)

	path, ok := r.FirstAudioFile(filepath.Join(root, "dir"))
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "dir", "b.ogg"), path)

	_, ok = r.FirstAudioFile(filepath.Join(root, "missing"))
	assert.False(t, ok)
}

func TestFirstAudioFile_MemoizedPerResolver(t *testing.T) {
	root := layout(t, "dir/a.wav")
	dir := filepath.Join(root, "dir")
	r := NewResolver(nil)

	first, ok := r.FirstAudioFile(dir)
	require.True(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.ogg"), []byte("audio"), 0644))

	again, _ := r.FirstAudioFile(dir)
	assert.Equal(t, first, again)

	fresh, _ := NewResolver(nil).FirstAudioFile(dir)
	assert.Equal(t, filepath.Join(dir, "b.ogg"), fresh)
}
