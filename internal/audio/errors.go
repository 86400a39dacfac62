package audio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNothingToAssemble is returned when none of the sounds were resolved.
// No external tool is invoked in that case.
var ErrNothingToAssemble = errors.New("nothing to assemble: no sounds resolved")

// stderrTailLines is how many trailing stderr lines Error() includes.
const stderrTailLines = 5

// ToolError reports a failed ffmpeg or ffprobe invocation.
//
// Err is set when the tool could not be launched (or was cancelled);
// otherwise ExitCode holds the nonzero exit status and Stderr the captured
// diagnostic output.
type ToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Tool, e.Err)
	}
	tail := tailLines(e.Stderr, stderrTailLines)
	if tail == "" {
		return fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Tool, e.ExitCode, tail)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// tailLines returns the last n non-empty lines of s joined by " | ".
func tailLines(s string, n int) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, " | ")
}
