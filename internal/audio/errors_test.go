package audio

import (
	"errors"
	"testing"
)

func TestToolError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ToolError
		want string
	}{
		{
			name: "exit status without stderr",
			err:  &ToolError{Tool: "ffmpeg", ExitCode: 1},
			want: "ffmpeg exited with status 1",
		},
		{
			name: "keeps last lines of stderr",
			err:  &ToolError{Tool: "ffmpeg", ExitCode: 2, Stderr: "1\n2\n\n3\n4\n5\n6\n"},
			want: "ffmpeg exited with status 2: 2 | 3 | 4 | 5 | 6",
		},
		{
			name: "launch error",
			err:  &ToolError{Tool: "ffprobe", ExitCode: -1, Err: errors.New("not found")},
			want: "ffprobe: not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
