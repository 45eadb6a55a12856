//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// flushStdinBuffer discards any data left in stdin by prior terminal queries.
//
// termenv reads OSC responses up to the ESC byte of the String Terminator
// (ESC \) but leaves the trailing '\' in the canonical line buffer, where
// TIOCFLUSH cannot reach it. Disabling ICANON makes the pending bytes
// readable so they can be drained before the terminal is restored.
func flushStdinBuffer() {
	//nolint:gosec // Stdin fd is always a small non-negative int.
	fd := int(os.Stdin.Fd())

	old, err := unix.IoctlGetTermios(fd, unix.TIOCGETA)
	if err != nil {
		return
	}

	raw := *old
	raw.Lflag &^= unix.ECHO | unix.ICANON
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, unix.TIOCSETA, &raw); err != nil {
		return
	}
	defer func() { _ = unix.IoctlSetTermios(fd, unix.TIOCSETA, old) }()

	// The runtime keeps fd 0 non-blocking, so Read returns EAGAIN once the
	// buffer is empty.
	buf := make([]byte, 256)
	for {
		n, err := unix.Read(fd, buf)
		if n <= 0 || err != nil {
			break
		}
	}
}
