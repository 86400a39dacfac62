package audio

import "fmt"

// ffmpeg and ffprobe argument constants.
const (
	DefaultFFmpegCommand  = "ffmpeg"
	DefaultFFprobeCommand = "ffprobe"
	DefaultQuality        = "9"

	overwriteFlag       = "-y"
	ffprobeLogLevel     = "error"
	ffprobeShowEntries  = "format=duration"
	ffprobeOutputFormat = "csv=p=0"
)

// ConcatArgs translates a Job into ffmpeg arguments. The filter expression
// is read from filterScript, a file holding Job.Filter.
//
// -filter_complex_script works on every ffmpeg from 4.x on. FFmpeg 7.1
// deprecates it in favour of -/filter_complex but still accepts it; switch
// once ffmpeg 7 is the oldest supported release.
func ConcatArgs(job Job, filterScript string) []string {
	args := []string{overwriteFlag}
	for _, in := range job.Inputs {
		args = append(args, "-i", in)
	}
	args = append(args,
		"-filter_complex_script", filterScript,
		"-map", job.OutputLabel,
	)
	if job.Quality != "" {
		args = append(args, "-q:a", job.Quality)
	}
	return append(args, job.Output)
}

// SilenceArgs returns the ffmpeg arguments that synthesize the silence asset.
func SilenceArgs(spec SilenceSpec, quality, output string) []string {
	args := []string{overwriteFlag, "-f", "lavfi", "-i", spec.Source()}
	if quality != "" {
		args = append(args, "-q:a", quality)
	}
	return append(args, output)
}

// ProbeDurationArgs returns the ffprobe arguments printing a file's duration
// in seconds.
func ProbeDurationArgs(path string) []string {
	return []string{
		"-v", ffprobeLogLevel,
		"-show_entries", ffprobeShowEntries,
		"-of", ffprobeOutputFormat,
		path,
	}
}

// commandLine renders a command for debug logging.
func commandLine(name string, args []string) string {
	return fmt.Sprintf("%s %q", name, args)
}
