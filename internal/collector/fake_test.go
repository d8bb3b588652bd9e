package collector

import (
	"context"
	"strings"
	"time"

	"github.com/Guliveer/machealth/internal/command"
)

// fakeRunner returns canned results keyed by the space-joined argv. Unknown
// commands behave like a missing binary.
type fakeRunner struct {
	results  map[string]command.Result
	calls    []string
	timeouts map[string]time.Duration
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		results:  make(map[string]command.Result),
		timeouts: make(map[string]time.Duration),
	}
}

// ok registers a successful invocation.
func (f *fakeRunner) ok(argv, output string) *fakeRunner {
	f.results[argv] = command.Result{Output: output, OK: true}
	return f
}

// fail registers a non-zero exit that still printed output.
func (f *fakeRunner) fail(argv, output string) *fakeRunner {
	f.results[argv] = command.Result{Output: output}
	return f
}

func (f *fakeRunner) Run(_ context.Context, timeout time.Duration, name string, args ...string) command.Result {
	key := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, key)
	f.timeouts[key] = timeout
	return f.results[key]
}
