//go:build windows

package supervise

import (
	"fmt"
	"os"
)

func statusFromState(ps *os.ProcessState) *Status {
	return &Status{Code: ps.ExitCode()}
}

// Killed reports whether the process was terminated by a signal. Windows has
// no signal numbers, so a supervisor kill is indistinguishable from other
// forced terminations.
func (s *Status) Killed() bool {
	return s != nil && s.Signaled
}

// Interrupted always reports false on Windows.
func (s *Status) Interrupted() bool {
	return false
}

func signalName(sig int) string {
	return fmt.Sprintf("signal %d", sig)
}
