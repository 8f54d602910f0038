package supervise

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// ioAbandonDelay bounds how long an exited child's unfinished stdin copy may
// hold up the reap. A child that exits without consuming its stdin leaves the
// copy goroutine blocked on the reader; Wait abandons it after this delay
// instead of waiting forever.
const ioAbandonDelay = 250 * time.Millisecond

// proc is the supervisor's handle for one spawned child: the OS process plus
// the capture pipes' read ends, detached from the child handle so the drainer
// can consume them independently of status polling.
type proc struct {
	cmd     *Command
	execCmd *exec.Cmd

	stdout *os.File
	stderr *os.File

	// cell carries the terminal status. Only supervised runs install one;
	// detached runs and a pipeline's upstream half have no reader for it.
	cell *statusCell
}

func (c *Command) buildExec() *exec.Cmd {
	execCmd := exec.Command(c.Path, c.Args...)
	execCmd.Dir = c.Dir
	execCmd.WaitDelay = ioAbandonDelay

	if len(c.Env) > 0 {
		execCmd.Env = append(os.Environ(), c.Env...)
	}

	return execCmd
}

// spawn launches the child with the configured stream wiring. On return the
// parent holds only the read ends of the capture pipes; the write ends belong
// to the child alone so the drainer observes EOF when it exits.
func (c *Command) spawn() (*proc, error) {
	if err := c.Validate(); err != nil {
		return nil, &SpawnError{Command: c, Err: err}
	}

	execCmd := c.buildExec()
	execCmd.Stdin = c.Stdin

	p := &proc{cmd: c, execCmd: execCmd}

	var childEnds []*os.File

	cleanup := func() {
		for _, f := range childEnds {
			_ = f.Close()
		}

		if p.stdout != nil {
			_ = p.stdout.Close()
		}

		if p.stderr != nil {
			_ = p.stderr.Close()
		}
	}

	switch c.Stdout {
	case StreamCapture:
		pr, pw, err := os.Pipe()
		if err != nil {
			return nil, &SpawnError{Command: c, Err: err}
		}

		execCmd.Stdout = pw
		p.stdout = pr
		childEnds = append(childEnds, pw)
	case StreamInherit:
		execCmd.Stdout = os.Stdout
	case StreamDiscard:
		// os/exec connects nil to the null device.
	}

	switch c.Stderr {
	case StreamCapture:
		pr, pw, err := os.Pipe()
		if err != nil {
			cleanup()

			return nil, &SpawnError{Command: c, Err: err}
		}

		execCmd.Stderr = pw
		p.stderr = pr
		childEnds = append(childEnds, pw)
	case StreamInherit:
		execCmd.Stderr = os.Stderr
	case StreamDiscard:
	}

	if c.Verbose {
		slog.Debug("spawning", "cmd", c.String(), "dir", c.Dir, "timeout", c.Timeout)
	}

	if err := execCmd.Start(); err != nil {
		cleanup()

		return nil, &SpawnError{Command: c, Err: err}
	}

	// Drop the parent's duplicates of the write ends.
	for _, f := range childEnds {
		_ = f.Close()
	}

	return p, nil
}

// kill forcibly terminates the child. Killing a child that has already exited
// is a no-op; the race against natural exit is deliberate and benign.
func (p *proc) kill() {
	if err := p.execCmd.Process.Kill(); err != nil {
		slog.Debug("kill ignored", "cmd", p.cmd.Path, "err", err)
	}
}

// reap blocks until the child exits and converts the reaped state. It runs on
// the monitor's waiter goroutine; nothing else waits on the child.
func (p *proc) reap() *Status {
	err := p.execCmd.Wait()

	if errors.Is(err, exec.ErrWaitDelay) {
		slog.Debug("stdin copy abandoned after exit", "cmd", p.cmd.Path)
	}

	ps := p.execCmd.ProcessState
	if ps == nil {
		slog.Error("no process state after wait", "cmd", p.cmd.Path, "err", err)

		return nil
	}

	return statusFromState(ps)
}

// drain consumes the capture pipes to completion.
func (p *proc) drain() ([]byte, []byte, error) {
	var stdout, stderr io.ReadCloser

	if p.stdout != nil {
		stdout = p.stdout
	}

	if p.stderr != nil {
		stderr = p.stderr
	}

	return drainStreams(stdout, stderr)
}

// takeStdout transfers ownership of the stdout capture pipe's read end out of
// the handle, leaving nothing behind for the drainer. The caller becomes
// responsible for the descriptor, which from here on is only usable as the
// next process's input.
func (p *proc) takeStdout() *os.File {
	f := p.stdout
	p.stdout = nil

	return f
}

// Output runs the command to completion under supervision: it spawns the
// child, races natural exit against the configured timeout and cancellation
// signal on a dedicated monitor goroutine, drains the captured streams on the
// calling goroutine, and joins both before assembling the Terminal Result.
//
// The returned error is a *SpawnError or *IOError; an abnormal exit is not an
// error here. Use Output.Result to convert the captured bytes into a typed
// *CmdError.
func (c *Command) Output() (*Output, error) {
	if c.Tty {
		return c.outputTty()
	}

	p, err := c.spawn()
	if err != nil {
		return nil, err
	}

	p.cell = newStatusCell()

	go p.monitor()

	stdout, stderr, derr := p.drain()

	status := p.cell.wait()

	if derr != nil {
		return nil, derr
	}

	return &Output{Status: status, Stdout: stdout, Stderr: stderr}, nil
}

// Run spawns the command detached and returns immediately with whatever
// status is available without waiting, which for anything but an instantly
// exiting program is none. Capture modes are treated as inherit, since
// nothing will drain a detached child. The child is reaped in the background.
func (c *Command) Run() (*Status, error) {
	detached := *c
	if detached.Stdout == StreamCapture {
		detached.Stdout = StreamInherit
	}

	if detached.Stderr == StreamCapture {
		detached.Stderr = StreamInherit
	}

	p, err := detached.spawn()
	if err != nil {
		return nil, err
	}

	st, err := p.poll()
	if err != nil {
		slog.Warn("poll after spawn failed", "cmd", c.Path, "err", err)
	}

	if st == nil {
		go func() { _ = p.execCmd.Wait() }()
	}

	return st, nil
}
