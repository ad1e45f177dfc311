//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package xlogger

func isTerminalFd(_ int) bool {
	return false
}
