package supervise

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/shlex"
)

// StreamMode selects how one of the child's output streams is wired up.
type StreamMode int

const (
	// StreamCapture pipes the stream into the run's buffer. The drainer
	// reads it to completion while the monitor supervises the child.
	StreamCapture StreamMode = iota
	// StreamInherit attaches the stream to the parent's own stream.
	StreamInherit
	// StreamDiscard throws the stream away.
	StreamDiscard
)

func (m StreamMode) String() string {
	switch m {
	case StreamCapture:
		return "capture"
	case StreamInherit:
		return "inherit"
	case StreamDiscard:
		return "discard"
	default:
		return "unknown"
	}
}

// Command describes one supervised process execution. The caller owns the
// Command until it is passed to Output, Run or Pipe, which take ownership for
// the duration of the run. A Command must not be mutated once execution
// begins.
type Command struct {
	Path string   // Binary name or path to executable
	Args []string // Arguments to pass to the binary
	Env  []string // Environment variables in "KEY=VALUE" format
	Dir  string   // Working directory for execution

	// Stdin feeds the child's standard input. If nil, the child reads
	// from the null device.
	Stdin io.Reader

	// Stdout and Stderr select per-stream redirection. The zero value
	// captures both streams into the Terminal Result.
	Stdout StreamMode
	Stderr StreamMode

	// Timeout forcibly kills the child once elapsed, measured from spawn
	// time. Zero means no timeout.
	Timeout time.Duration

	// Cancel is an optional one-shot cancellation receiver. The channel
	// may be shared between concurrently supervised commands; a run only
	// ever consumes the signal, never produces it. A signal delivered
	// after the run has completed is ignored.
	Cancel <-chan struct{}

	// Tty allocates a PTY and runs the child attached to it. Combined
	// output is captured as stdout. Not supported on Windows.
	Tty bool

	// Verbose logs the resolved command line before spawning.
	Verbose bool
}

// NewCommand creates a new Command with the given binary and arguments,
// capturing both output streams.
func NewCommand(binary string, args ...string) *Command {
	return &Command{
		Path: binary,
		Args: args,
	}
}

// Validate checks that the command is well-formed.
// Returns an error if the command is nil or has an empty binary.
func (c *Command) Validate() error {
	if c == nil {
		return errors.New("command cannot be nil")
	}

	if strings.TrimSpace(c.Path) == "" {
		return errors.New("command binary cannot be empty")
	}

	return nil
}

// String returns a simplified, shell-quoted string representation of the command.
func (c *Command) String() string {
	if len(c.Args) == 0 {
		return c.Path
	}

	var b strings.Builder
	b.WriteString(c.Path)

	for _, arg := range c.Args {
		b.WriteString(" ")

		if strings.Contains(arg, " ") {
			fmt.Fprintf(&b, "%q", arg)
		} else {
			b.WriteString(arg)
		}
	}

	return b.String()
}

// ParseCommand parses a shell command string into a Command struct using shlex.
// It handles quoted arguments correctly.
func ParseCommand(cmdStr string) (*Command, error) {
	parts, err := shlex.Split(cmdStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command: %w", err)
	}

	if len(parts) == 0 {
		return nil, errors.New("empty command")
	}

	return &Command{
		Path: parts[0],
		Args: parts[1:],
	}, nil
}
