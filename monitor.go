package supervise

import (
	"log/slog"
	"sync"
	"time"
)

// recheckInterval bounds the caller's wait on the status cell so a missed
// notification cannot block the join forever.
const recheckInterval = time.Second

// statusCell is a single-writer-once slot for the run's terminal status. The
// monitor writes it exactly once; the caller reads it after notification.
type statusCell struct {
	mu     sync.Mutex
	status *Status
	set    bool
	done   chan struct{}
}

func newStatusCell() *statusCell {
	return &statusCell{done: make(chan struct{})}
}

// put records the terminal status. Only the first write counts.
func (c *statusCell) put(st *Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.set {
		return
	}

	c.status = st
	c.set = true
	close(c.done)
}

func (c *statusCell) get() (*Status, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.status, c.set
}

// wait blocks until a terminal status has been recorded, re-checking at a
// bounded interval rather than trusting a single notification.
func (c *statusCell) wait() *Status {
	tick := time.NewTicker(recheckInterval)
	defer tick.Stop()

	for {
		select {
		case <-c.done:
			st, _ := c.get()

			return st
		case <-tick.C:
			if st, ok := c.get(); ok {
				return st
			}
		}
	}
}

// monitor races the child's natural exit against the timeout tick and the
// cancellation receiver, without priority between the two kill sources. It is
// the only goroutine that kills or reaps the child, and the only writer of
// the status cell.
//
// Killing is asynchronous, so after issuing a kill the monitor keeps waiting
// for the exit event; a second kill source firing afterwards is a no-op.
func (p *proc) monitor() {
	exited := make(chan *Status, 1)

	go func() { exited <- p.reap() }()

	var tick <-chan time.Time

	if p.cmd.Timeout > 0 {
		ticker := time.NewTicker(p.cmd.Timeout)
		defer ticker.Stop()

		tick = ticker.C
	}

	cancel := p.cmd.Cancel
	killed := false

	for {
		select {
		case st := <-exited:
			slog.Debug("exit status observed", "cmd", p.cmd.Path, "status", st)
			p.cell.put(st)

			return

		case <-tick:
			if !killed {
				slog.Debug("timeout elapsed, killing", "cmd", p.cmd.Path, "timeout", p.cmd.Timeout)
				p.kill()

				killed = true
			}

		case <-cancel:
			// One-shot: stop selecting on the receiver either way.
			cancel = nil

			if !killed {
				slog.Debug("cancel received, killing", "cmd", p.cmd.Path)
				p.kill()

				killed = true
			}
		}
	}
}
