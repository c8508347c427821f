//go:build unix

package guard

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// lockFile takes an advisory, exclusive, non-blocking flock on f, held
// for as long as the guard is held. Acquire does not probe this lock on
// an existing pidfile: whether an existing file is stale is decided
// only from the PID recorded in it.
func lockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
}

func unlockFile(f *os.File) {
	_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
}

// processRunning reports whether pid names a live process, using the
// conventional signal-0 probe: no signal is delivered, only existence
// and permission are checked.
func processRunning(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
