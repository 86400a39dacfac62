// Package model defines the core data structures used throughout
// the soundpack-combiner application.
//
// # Category
//
// Category is a logical sound role with an ordered list of candidate
// sub-paths to look in, highest priority first:
//
//	cat := model.Category{
//	    Name:     "9mm shoot",
//	    Patterns: []string{"fire_gun/handguns", "fire_gun", "guns"},
//	}
//	cat.Keywords() // ["shoot"], used by the recursive fallback scan
//
// # Soundpack
//
// Soundpack is a named root directory holding audio assets:
//
//	pack := model.NewSoundpack("/userdata/sound", "CC-Sounds")
//	fmt.Println(pack.Path) // /userdata/sound/CC-Sounds
//
// # ResolvedSound and JobResult
//
// ResolvedSound is the outcome of resolving one Category in one Soundpack.
// An empty Path means the category is not represented; that is recorded,
// never treated as an error. JobResult is the per-soundpack outcome of a run.
package model
