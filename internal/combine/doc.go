// Package combine provides the batch logic that turns soundpacks into
// combined sample tracks.
//
// # Manager
//
// The Manager coordinates a run:
//
//  1. Check that the soundpack root exists
//  2. Resolve every configured category, in order
//  3. Assemble the resolved sounds with silence in between
//  4. Tag the output and embed cover art (mp3 only)
//  5. Probe the output duration (optional)
//
// # Basic Usage
//
//	manager := combine.NewManager(settings, func(event combine.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	summary, err := manager.Run(ctx, settings.Catalogue())
//	fmt.Printf("%d successful, %d failed\n", summary.Succeeded, summary.Failed)
//
// # Failure Isolation
//
// Every soundpack is processed independently. A missing root, an empty
// resolution or an ffmpeg failure marks that soundpack failed and the run
// moves on to the next one.
//
// # Curated Mode
//
// RunCurated combines a fixed list of files. It is all-or-nothing: if any
// listed file is missing, nothing is run.
package combine
