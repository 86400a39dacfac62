package audio

import (
	"context"
	"os"
)

// fakeRunner records invocations. Unless respond overrides it, every call
// succeeds and writes the last argument as if it were the tool's output.
type fakeRunner struct {
	calls   [][]string
	respond func(name string, args []string) (Result, error)
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (Result, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.respond != nil {
		return f.respond(name, args)
	}
	if len(args) > 0 {
		if err := os.WriteFile(args[len(args)-1], []byte("audio"), 0644); err != nil {
			return Result{}, err
		}
	}
	return Result{}, nil
}

func (f *fakeRunner) callsContaining(arg string) int {
	n := 0
	for _, call := range f.calls {
		for _, a := range call {
			if a == arg {
				n++
				break
			}
		}
	}
	return n
}
