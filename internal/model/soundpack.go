package model

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// CombinedSuffix is appended to the soundpack name to build the output file name.
const CombinedSuffix = "_combined"

// Soundpack represents a named collection of audio assets in a directory tree.
type Soundpack struct {
	// Name is the display name, also used to name the output file.
	Name string

	// Path is the root directory of the soundpack.
	Path string
}

// NewSoundpack creates a Soundpack rooted at soundDir/name.
func NewSoundpack(soundDir, name string) Soundpack {
	return Soundpack{
		Name: name,
		Path: filepath.Join(soundDir, name),
	}
}

// OutputFileName returns the file name of the combined track for a soundpack.
//
// The extension is given without the leading dot:
//
//	OutputFileName("CC-Sounds", "ogg") // "CC-Sounds_combined.ogg"
func OutputFileName(name, ext string) string {
	return sanitizeFileName(name) + CombinedSuffix + "." + strings.TrimPrefix(ext, ".")
}

// JobResult is the outcome of combining a single soundpack.
//
// Results are independent: one soundpack failing never changes the result
// of another.
type JobResult struct {
	// Soundpack is the name of the processed soundpack.
	Soundpack string

	// OutputPath is where the combined track was (or would have been) written.
	OutputPath string

	// Resolved holds one entry per category, in category order.
	Resolved []ResolvedSound

	// Missing lists category names (or curated file paths) that were not found.
	Missing []string

	// Duration is the probed length of the output file.
	// Zero when probing was disabled or failed.
	Duration time.Duration

	// Err is nil on success and carries the diagnostic otherwise.
	Err error
}

// Success returns true if the combined track was written.
func (r *JobResult) Success() bool {
	return r.Err == nil
}

var (
	invalidFileNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots         = regexp.MustCompile(`\.+$`)
	repeatedWhitespace   = regexp.MustCompile(`\s+`)
)

// sanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
//
// Example:
//
//	sanitizeFileName("Pack: Part 1/2") // Returns "Pack_ Part 1_2"
func sanitizeFileName(name string) string {
	name = invalidFileNameChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = repeatedWhitespace.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}
