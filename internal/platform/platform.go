// Package platform answers questions about the host process that the
// collectors cannot ask through a command: which OS the binary runs on and
// whether it holds root privileges.
package platform

import "runtime"

// Name returns the operating system identifier (darwin, linux, ...).
func Name() string { return runtime.GOOS }

// Supported reports whether the collectors' tools exist on this OS.
// Every collector still runs elsewhere; it just reports an error fragment.
func Supported() bool { return runtime.GOOS == "darwin" }
