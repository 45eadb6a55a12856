//go:build !(darwin || dragonfly || freebsd || netbsd || openbsd || linux)

package main

// flushStdinBuffer is a no-op on platforms without termios.
func flushStdinBuffer() {}
