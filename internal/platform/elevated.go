//go:build !windows

package platform

import "golang.org/x/sys/unix"

// geteuid is swapped in tests.
var geteuid = unix.Geteuid

// IsElevated reports whether the process runs with an effective uid of 0.
// powermetrics needs this; without it the deep collectors depend on sudo
// succeeding non-interactively.
func IsElevated() bool {
	return geteuid() == 0
}
