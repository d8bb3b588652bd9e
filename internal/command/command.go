// Package command runs the external diagnostic utilities the collectors parse.
// A Runner never returns an error: a missing binary, a timeout and a failed
// start all collapse into a Result with OK set to false.
package command

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultExtraPaths are prepended to PATH so Homebrew-installed tools
// (smartctl in particular) are found without a login shell.
var DefaultExtraPaths = []string{"/opt/homebrew/bin", "/usr/local/bin"}

const waitDelay = 500 * time.Millisecond

// Result is the captured stdout of a command and whether it exited cleanly.
type Result struct {
	Output string
	OK     bool
}

// Runner executes a command with a bounded timeout.
type Runner interface {
	Run(ctx context.Context, timeout time.Duration, name string, args ...string) Result
}

// Exec is the os/exec backed Runner.
type Exec struct {
	extraPaths []string
}

// NewExec creates a Runner that prepends extraPaths to the inherited PATH.
// A nil slice falls back to DefaultExtraPaths.
func NewExec(extraPaths []string) *Exec {
	if extraPaths == nil {
		extraPaths = DefaultExtraPaths
	}
	return &Exec{extraPaths: extraPaths}
}

// Run executes name with args and waits for it to finish or for timeout to
// expire. On a non-zero exit the captured stdout is still returned.
func (e *Exec) Run(ctx context.Context, timeout time.Duration, name string, args ...string) Result {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	env := e.environ()

	// exec.LookPath consults the parent's PATH, so resolve against ours.
	path, err := lookPath(name, env)
	if err != nil {
		return Result{}
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Args[0] = name
	cmd.Env = env

	// Children that outlive a killed parent (sudo) must not hold Wait open.
	cmd.WaitDelay = waitDelay

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	err = cmd.Run()
	if ctx.Err() != nil {
		return Result{}
	}
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return Result{Output: stdout.String()}
		}
		return Result{}
	}
	return Result{Output: stdout.String(), OK: true}
}

// environ returns the current environment with PATH rewritten.
func (e *Exec) environ() []string {
	env := os.Environ()
	path := BuildPath(e.extraPaths, os.Getenv("PATH"))
	for i, kv := range env {
		if strings.HasPrefix(kv, "PATH=") {
			env[i] = "PATH=" + path
			return env
		}
	}
	return append(env, "PATH="+path)
}

// BuildPath joins extra directories ahead of the inherited PATH value.
func BuildPath(extra []string, inherited string) string {
	parts := make([]string, 0, len(extra)+1)
	for _, dir := range extra {
		if dir != "" {
			parts = append(parts, dir)
		}
	}
	parts = append(parts, inherited)
	return strings.Join(parts, string(os.PathListSeparator))
}
