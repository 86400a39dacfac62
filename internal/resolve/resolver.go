package resolve

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/handiism/soundpack-combiner/internal/model"
)

// DefaultExtensions is the allowed audio extension list in priority order.
var DefaultExtensions = []string{".ogg", ".wav"}

// Resolver finds the representative audio file of a category in a soundpack.
//
// Directory lookups are memoized for the lifetime of the Resolver, since the
// keyword fallback revisits the same directories for every category. Use a
// fresh Resolver per run so files added between runs are seen.
type Resolver struct {
	extensions []string
	dirs       *cache.Cache
}

// dirLookup is the memoized result of FirstAudioFile.
type dirLookup struct {
	path string
	ok   bool
}

// NewResolver creates a Resolver accepting the given extensions in priority
// order. Extensions are compared case-insensitively and should include the
// leading dot. If extensions is empty, DefaultExtensions is used.
func NewResolver(extensions []string) *Resolver {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	normalized := make([]string, len(extensions))
	for i, ext := range extensions {
		normalized[i] = strings.ToLower(ext)
	}
	return &Resolver{
		extensions: normalized,
		dirs:       cache.New(cache.NoExpiration, 0),
	}
}

// Resolve returns the first audio file for category under root.
//
// The root is assumed to exist; callers check it before resolving.
// The returned ResolvedSound has an empty Path when nothing matched.
func (r *Resolver) Resolve(root string, category model.Category) model.ResolvedSound {
	result := model.ResolvedSound{Category: category.Name}

	if path, ok := r.resolvePatterns(root, category.Patterns); ok {
		result.Path = path
		return result
	}

	for _, keyword := range category.Keywords() {
		if path, ok := r.resolveKeyword(root, keyword); ok {
			result.Path = path
			return result
		}
	}

	return result
}

// resolvePatterns tries each pattern directory in priority order.
// A pattern directory without audio files falls through to the next one.
func (r *Resolver) resolvePatterns(root string, patterns []string) (string, bool) {
	for _, pattern := range patterns {
		dir := filepath.Join(root, filepath.FromSlash(pattern))
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		if path, ok := r.FirstAudioFile(dir); ok {
			return path, true
		}
	}
	return "", false
}

// resolveKeyword walks every directory below root in lexical order and
// returns the first audio file of the first directory whose name contains
// keyword, ignoring case.
func (r *Resolver) resolveKeyword(root, keyword string) (string, bool) {
	keyword = strings.ToLower(keyword)

	var found string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped; the walk itself keeps going.
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() || path == root {
			return nil
		}
		if !strings.Contains(strings.ToLower(d.Name()), keyword) {
			return nil
		}
		if file, ok := r.FirstAudioFile(path); ok {
			found = file
			return fs.SkipAll
		}
		return nil
	})

	return found, found != ""
}

// FirstAudioFile returns the first file in dir with an allowed extension.
//
// Extensions are tried in priority order; within one extension the
// lexicographically smallest file name wins. Sub-directories are ignored.
func (r *Resolver) FirstAudioFile(dir string) (string, bool) {
	if cached, ok := r.dirs.Get(dir); ok {
		lookup := cached.(dirLookup)
		return lookup.path, lookup.ok
	}

	path, ok := r.scanDir(dir)
	r.dirs.Set(dir, dirLookup{path: path, ok: ok}, cache.NoExpiration)
	return path, ok
}

func (r *Resolver) scanDir(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	// os.ReadDir returns entries sorted by file name.
	for _, ext := range r.extensions {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.ToLower(filepath.Ext(entry.Name())) == ext {
				return filepath.Join(dir, entry.Name()), true
			}
		}
	}
	return "", false
}
