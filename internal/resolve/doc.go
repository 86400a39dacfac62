// Package resolve maps logical sound categories to concrete audio files
// inside a soundpack directory tree.
//
// Resolution is a two stage, first-match-wins evaluation:
//
//  1. Each configured pattern is tried in priority order. A pattern names a
//     sub-directory of the soundpack root; its first audio file wins.
//  2. If no pattern matches, every directory below the root is scanned for
//     names containing one of the category keywords.
//
// A category that is not present in a soundpack resolves to an empty
// ResolvedSound. That is an expected outcome, not an error.
//
//	r := resolve.NewResolver(nil) // .ogg before .wav
//	sound := r.Resolve("/sound/CC-Sounds", category)
//	if !sound.Found() {
//	    fmt.Println("NOT FOUND")
//	}
package resolve
