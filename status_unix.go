//go:build !windows

package supervise

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// statusFromState converts the state reaped by the monitor's waiter into a
// Status.
func statusFromState(ps *os.ProcessState) *Status {
	st := &Status{Code: ps.ExitCode()}

	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		st.Signaled = true
		st.Sig = int(ws.Signal())
	}

	return st
}

// Killed reports whether the process died from SIGKILL, the signal the
// supervisor issues for timeout and cancellation kills.
func (s *Status) Killed() bool {
	return s != nil && s.Signaled && unix.Signal(s.Sig) == unix.SIGKILL
}

// Interrupted reports whether the process died from SIGINT.
func (s *Status) Interrupted() bool {
	return s != nil && s.Signaled && unix.Signal(s.Sig) == unix.SIGINT
}

func signalName(sig int) string {
	if name := unix.SignalName(unix.Signal(sig)); name != "" {
		return name
	}

	return unix.Signal(sig).String()
}
