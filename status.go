package supervise

import "fmt"

// Status is the OS-reported termination status of a supervised child. A nil
// *Status means no status was available, which only happens for detached runs
// polled before the child exited.
type Status struct {
	// Code is the exit code, or -1 when the process was terminated by a
	// signal before reporting one.
	Code int

	// Signaled is true when the process was terminated by a signal. Sig
	// holds the signal number and is only meaningful on Unix.
	Signaled bool
	Sig      int
}

// Success reports whether the process exited normally with code zero.
func (s *Status) Success() bool {
	return s != nil && !s.Signaled && s.Code == 0
}

// ExitCode returns the exit code, or -1 for a signaled termination.
func (s *Status) ExitCode() int {
	if s == nil || s.Signaled {
		return -1
	}

	return s.Code
}

func (s *Status) String() string {
	if s == nil {
		return "unknown"
	}

	if s.Signaled {
		return fmt.Sprintf("signal: %s", signalName(s.Sig))
	}

	return fmt.Sprintf("exit status %d", s.Code)
}

// Output is the Terminal Result of one supervised run: the exit status from
// the monitor joined with the bytes captured by the drainer. It is immutable
// and produced exactly once per run.
type Output struct {
	Status *Status
	Stdout []byte
	Stderr []byte
}

// Success reports whether the process exited normally with code zero.
func (o *Output) Success() bool {
	return o.Status.Success()
}

// Failed reports whether the process terminated abnormally.
func (o *Output) Failed() bool {
	return !o.Success()
}

// HasStdout reports whether any stdout bytes were captured.
func (o *Output) HasStdout() bool {
	return len(o.Stdout) > 0
}

// Killed reports whether the process was forcibly killed by the supervisor.
func (o *Output) Killed() bool {
	return o.Status.Killed()
}

// Interrupted reports whether the process died from SIGINT.
func (o *Output) Interrupted() bool {
	return o.Status.Interrupted()
}

// Result converts the Output into the caller's useful bytes. A clean exit
// with an empty error stream yields the captured stdout; anything else yields
// a *CmdError carrying the same status and bytes.
func (o *Output) Result() ([]byte, error) {
	if o.Success() && len(o.Stderr) == 0 {
		return o.Stdout, nil
	}

	return nil, &CmdError{
		Status: o.Status,
		Stdout: o.Stdout,
		Stderr: o.Stderr,
	}
}
