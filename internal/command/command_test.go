package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops an executable shell script named name into dir.
func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
}

func TestBuildPath(t *testing.T) {
	got := BuildPath([]string{"/opt/homebrew/bin", "", "/usr/local/bin"}, "/usr/bin:/bin")
	assert.Equal(t, "/opt/homebrew/bin:/usr/local/bin:/usr/bin:/bin", got)
}

func TestExec_Run(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "hello", `echo "CPU usage: $1"`)
	writeScript(t, dir, "advisory", "echo partial data\nexit 4")
	writeScript(t, dir, "slow", "exec sleep 5")

	r := NewExec([]string{dir})
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		res := r.Run(ctx, 5*time.Second, "hello", "12%")
		assert.True(t, res.OK)
		assert.Equal(t, "CPU usage: 12%\n", res.Output)
	})

	t.Run("non-zero exit keeps stdout", func(t *testing.T) {
		res := r.Run(ctx, 5*time.Second, "advisory")
		assert.False(t, res.OK)
		assert.Equal(t, "partial data\n", res.Output)
	})

	t.Run("not found", func(t *testing.T) {
		res := r.Run(ctx, 5*time.Second, "definitely-not-installed-tool")
		assert.Equal(t, Result{}, res)
	})

	t.Run("timeout", func(t *testing.T) {
		start := time.Now()
		res := r.Run(ctx, 100*time.Millisecond, "slow")
		assert.Equal(t, Result{}, res)
		assert.Less(t, time.Since(start), 3*time.Second)
	})
}

type countingRunner struct {
	calls int
}

func (c *countingRunner) Run(_ context.Context, _ time.Duration, name string, args ...string) Result {
	c.calls++
	return Result{Output: name, OK: true}
}

func TestCaching_Run(t *testing.T) {
	next := &countingRunner{}
	r := NewCaching(next)
	ctx := context.Background()

	first := r.Run(ctx, time.Second, "smartctl", "-a", "/dev/disk0")
	second := r.Run(ctx, time.Second, "smartctl", "-a", "/dev/disk0")
	r.Run(ctx, time.Second, "smartctl", "-a", "/dev/disk2")

	assert.Equal(t, first, second)
	assert.Equal(t, 2, next.calls)
}
