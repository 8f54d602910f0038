//go:build !windows

package supervise

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"syscall"

	"github.com/creack/pty"
)

// outputTty runs the command attached to a PTY, supervised by the same
// monitor as a plain run. The combined output read from the master side is
// captured as stdout; the PTY has no separate error stream.
func (c *Command) outputTty() (*Output, error) {
	if err := c.Validate(); err != nil {
		return nil, &SpawnError{Command: c, Err: err}
	}

	execCmd := c.buildExec()

	if c.Verbose {
		slog.Debug("spawning on pty", "cmd", c.String(), "timeout", c.Timeout)
	}

	master, err := pty.Start(execCmd)
	if err != nil {
		return nil, &SpawnError{Command: c, Err: err}
	}

	p := &proc{cmd: c, execCmd: execCmd, cell: newStatusCell()}

	go p.monitor()

	if c.Stdin != nil {
		go func() { _, _ = io.Copy(master, c.Stdin) }()
	}

	var buf bytes.Buffer

	_, rerr := io.Copy(&buf, master)
	_ = master.Close()

	status := p.cell.wait()

	// Reading the master after the child exits fails with EIO on Linux;
	// that is the PTY's end-of-stream, not a drain failure.
	if rerr != nil && !errors.Is(rerr, syscall.EIO) {
		return nil, &IOError{Op: "tty", Err: rerr}
	}

	return &Output{Status: status, Stdout: buf.Bytes()}, nil
}
