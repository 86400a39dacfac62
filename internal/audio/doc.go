// Package audio builds and runs the ffmpeg jobs that turn a list of resolved
// sounds into one combined track, and post-processes the result.
//
// # Assembling
//
// The Assembler drops unresolved categories, places one silence segment
// between each pair of remaining sounds and concatenates everything:
//
//	runner := audio.ExecRunner{}
//	silence := audio.NewSilenceAsset(outDir, audio.DefaultSilenceSpec(), "ffmpeg", "9", runner)
//	asm := audio.NewAssembler(runner, silence, audio.AssemblerConfig{FFmpegPath: "ffmpeg", Quality: "9", WorkDir: outDir}, logger)
//	err := asm.Assemble(ctx, sounds, "/out/CC-Sounds_combined.ogg")
//
// Planning is pure: BuildPlan produces a Plan, Plan.Job produces a
// structured Job, and ConcatArgs is the only place that knows ffmpeg's
// command-line syntax.
//
// # Silence
//
// SilenceAsset generates the shared silence file once per run and reuses an
// existing file without invoking ffmpeg again.
//
// # Probing and Tagging
//
// Prober reads the duration of an output file with ffprobe. Tagger writes
// ID3 tags (and optional cover art) when the output format is MP3.
package audio
