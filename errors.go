package supervise

import (
	"errors"
	"fmt"
)

// ErrNotSupported indicates that the requested feature (e.g., TTY) is not
// supported on this OS.
var ErrNotSupported = errors.New("operation not supported")

// SpawnError indicates that the OS could not create the process. It is fatal:
// no monitor or drainer was started and no partial result exists.
type SpawnError struct {
	Command *Command
	Err     error
}

func (e *SpawnError) Error() string {
	if e.Command == nil {
		return fmt.Sprintf("spawn failed: %v", e.Err)
	}

	return fmt.Sprintf("spawn failed for %q: %v", e.Command.String(), e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// IOError indicates that a stream read failed while draining the child's
// output. The run is aborted; bytes captured before the failure are dropped.
type IOError struct {
	Op  string // "stdout", "stderr" or "tty"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("draining %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// CmdError represents a process that ran but terminated abnormally: a nonzero
// exit status, a kill by timeout/cancel, or bytes present on the error stream.
// It carries the same three fields as the Terminal Result so the caller can
// inspect what happened.
type CmdError struct {
	Status *Status
	Stdout []byte
	Stderr []byte
}

func (e *CmdError) Error() string {
	return fmt.Sprintf("status:%v, stdout:%q, stderr:%q", e.Status, e.Stdout, e.Stderr)
}

// ExitCode returns the exit code carried by the error, or -1 when the process
// was signaled or no status was recorded.
func (e *CmdError) ExitCode() int {
	if e.Status == nil {
		return -1
	}

	return e.Status.ExitCode()
}

// Killed reports whether the process was forcibly killed by the supervisor.
func (e *CmdError) Killed() bool {
	return e.Status.Killed()
}
