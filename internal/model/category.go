package model

import (
	"strings"
	"unicode/utf8"
)

// minKeywordLength is the shortest category token used for the recursive
// fallback scan. Shorter tokens ("9mm", "hit", "car") match too many folders.
const minKeywordLength = 4

// Category represents a logical sound role within the combined track.
//
// Categories are immutable configuration data. Their position in the
// configured category list decides their position in the output.
type Category struct {
	// Name is the human readable role, e.g. "window shatter".
	Name string `mapstructure:"name" yaml:"name"`

	// Patterns are sub-paths relative to a soundpack root, in priority
	// order. Forward slashes are used regardless of platform.
	Patterns []string `mapstructure:"patterns" yaml:"patterns"`
}

// Keywords returns the whitespace separated tokens of the category name that
// are long enough to search for, in their original word order.
//
// Example:
//
//	Category{Name: "car engine start"}.Keywords() // ["engine", "start"]
func (c Category) Keywords() []string {
	var keywords []string
	for _, token := range strings.Fields(c.Name) {
		if utf8.RuneCountInString(token) >= minKeywordLength {
			keywords = append(keywords, token)
		}
	}
	return keywords
}

// ResolvedSound is the outcome of resolving one Category against one Soundpack.
type ResolvedSound struct {
	// Category is the name of the resolved category.
	Category string

	// Path is the audio file chosen for the category.
	// Empty string means the category was not found.
	Path string
}

// Found returns true if a file was resolved for the category.
func (r ResolvedSound) Found() bool {
	return r.Path != ""
}

// CountFound returns how many of the given sounds were resolved.
func CountFound(sounds []ResolvedSound) int {
	n := 0
	for _, s := range sounds {
		if s.Found() {
			n++
		}
	}
	return n
}
