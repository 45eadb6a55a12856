//go:build linux

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// flushStdinBuffer discards pending terminal input. Linux supports TCFLSH on
// the canonical buffer, so no termios juggling is needed.
func flushStdinBuffer() {
	//nolint:gosec // Stdin fd is always a small non-negative int.
	_ = unix.IoctlSetInt(int(os.Stdin.Fd()), unix.TCFLSH, unix.TCIFLUSH)
}
