//go:build !windows

package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsElevated(t *testing.T) {
	orig := geteuid
	t.Cleanup(func() { geteuid = orig })

	geteuid = func() int { return 0 }
	assert.True(t, IsElevated())

	geteuid = func() int { return 501 }
	assert.False(t, IsElevated())
}

func TestName(t *testing.T) {
	assert.Equal(t, runtime.GOOS, Name())
	assert.Equal(t, runtime.GOOS == "darwin", Supported())
}
