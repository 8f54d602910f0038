package supervise

import (
	"io"
	"strings"
	"time"
)

// Builder provides a fluent API for constructing Commands.
type Builder struct {
	cmd *Command
}

// New creates a new Builder for a command with the given name/path.
func New(binary string) *Builder {
	return &Builder{
		cmd: &Command{
			Path: binary,
		},
	}
}

// Arg adds a single argument.
func (b *Builder) Arg(arg string) *Builder {
	b.cmd.Args = append(b.cmd.Args, arg)
	return b
}

// Args adds multiple arguments.
func (b *Builder) Args(args ...string) *Builder {
	b.cmd.Args = append(b.cmd.Args, args...)
	return b
}

// Env adds an environment variable in "KEY=VALUE" format.
func (b *Builder) Env(key, value string) *Builder {
	b.cmd.Env = append(b.cmd.Env, key+"="+value)
	return b
}

// Dir sets the working directory.
func (b *Builder) Dir(dir string) *Builder {
	b.cmd.Dir = dir
	return b
}

// Stdin sets the standard input stream.
func (b *Builder) Stdin(r io.Reader) *Builder {
	b.cmd.Stdin = r
	return b
}

// Input sets the standard input from a string.
func (b *Builder) Input(s string) *Builder {
	b.cmd.Stdin = strings.NewReader(s)
	return b
}

// Stdout sets the redirection mode for standard output.
func (b *Builder) Stdout(m StreamMode) *Builder {
	b.cmd.Stdout = m
	return b
}

// Stderr sets the redirection mode for standard error.
func (b *Builder) Stderr(m StreamMode) *Builder {
	b.cmd.Stderr = m
	return b
}

// Timeout kills the child once d has elapsed from spawn time.
func (b *Builder) Timeout(d time.Duration) *Builder {
	b.cmd.Timeout = d
	return b
}

// Cancel attaches a one-shot cancellation receiver.
func (b *Builder) Cancel(ch <-chan struct{}) *Builder {
	b.cmd.Cancel = ch
	return b
}

// Tty enables PTY allocation.
func (b *Builder) Tty() *Builder {
	b.cmd.Tty = true
	return b
}

// Verbose logs the resolved command line before spawning.
func (b *Builder) Verbose() *Builder {
	b.cmd.Verbose = true
	return b
}

// Build returns the constructed Command.
func (b *Builder) Build() *Command {
	return b.cmd
}
