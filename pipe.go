package supervise

import (
	"log/slog"
	"time"
)

// Pipe runs the receiver and next as a two-stage pipeline: the receiver's
// stdout file descriptor becomes next's stdin directly, with no intermediate
// buffering, and both children are supervised jointly under the receiver's
// timeout and cancellation signal; next's own Timeout and Cancel are not
// consulted. The Terminal Result is the downstream process's; the upstream's
// stdout is consumed entirely by the kernel pipe.
func (c *Command) Pipe(next *Command) (*Output, error) {
	if err := next.Validate(); err != nil {
		return nil, &SpawnError{Command: next, Err: err}
	}

	// The pipe is the only consumer of the upstream's stdout, and nothing
	// drains its stderr.
	up := *c
	up.Stdout = StreamCapture

	if up.Stderr == StreamCapture {
		up.Stderr = StreamDiscard
	}

	a, err := up.spawn()
	if err != nil {
		return nil, err
	}

	// Transfer ownership of the pipe's read end into the downstream
	// child's stdin.
	pipeRd := a.takeStdout()

	down := *next
	down.Stdin = pipeRd

	b, err := down.spawn()

	// The downstream child holds its own copy of the descriptor; drop
	// ours so EOF propagates when the upstream exits.
	_ = pipeRd.Close()

	if err != nil {
		a.kill()
		_ = a.execCmd.Wait()

		return nil, err
	}

	b.cell = newStatusCell()

	go jointMonitor(a, b, c.Timeout, c.Cancel)

	stdout, stderr, derr := b.drain()

	status := b.cell.wait()

	if derr != nil {
		return nil, derr
	}

	return &Output{Status: status, Stdout: stdout, Stderr: stderr}, nil
}

// jointMonitor supervises a pipeline pair. The downstream exit is the
// pipeline's terminal condition; timeout and cancellation kill both children.
// An upstream exiting first simply closes the pipe, letting the downstream
// drain to EOF and finish naturally; an upstream still running when the
// downstream exits is killed so no producer outlives its consumer.
func jointMonitor(a, b *proc, timeout time.Duration, cancel <-chan struct{}) {
	upExited := make(chan *Status, 1)

	go func() { upExited <- a.reap() }()

	downExited := make(chan *Status, 1)

	go func() { downExited <- b.reap() }()

	var tick <-chan time.Time

	if timeout > 0 {
		ticker := time.NewTicker(timeout)
		defer ticker.Stop()

		tick = ticker.C
	}

	upCh := upExited
	killed := false
	upDone := false

	for {
		select {
		case st := <-downExited:
			slog.Debug("downstream exit observed", "cmd", b.cmd.Path, "status", st)

			if !upDone {
				a.kill()
				<-upExited
			}

			b.cell.put(st)

			return

		case st := <-upCh:
			slog.Debug("upstream exit observed", "cmd", a.cmd.Path, "status", st)

			upDone = true
			upCh = nil

		case <-tick:
			if !killed {
				slog.Debug("timeout elapsed, killing pipeline", "up", a.cmd.Path, "down", b.cmd.Path)
				a.kill()
				b.kill()

				killed = true
			}

		case <-cancel:
			cancel = nil

			if !killed {
				slog.Debug("cancel received, killing pipeline", "up", a.cmd.Path, "down", b.cmd.Path)
				a.kill()
				b.kill()

				killed = true
			}
		}
	}
}
