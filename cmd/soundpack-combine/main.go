// Command soundpack-combine combines soundpack samples into one track per
// soundpack using ffmpeg.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
