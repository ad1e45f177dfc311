//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package xlogger

import "golang.org/x/sys/unix"

func isTerminalFd(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TIOCGETA)
	return err == nil
}
