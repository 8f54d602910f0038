//go:build !windows

package supervise

import "golang.org/x/sys/unix"

// poll performs one non-blocking check for the child's exit. It is the
// detached run's only status source; a supervised run never polls, its
// monitor reaps the child instead.
func (p *proc) poll() (*Status, error) {
	var ws unix.WaitStatus

	for {
		pid, err := unix.Wait4(p.execCmd.Process.Pid, &ws, unix.WNOHANG, nil)
		if err == unix.EINTR {
			continue
		}

		if err != nil {
			return nil, &IOError{Op: "wait", Err: err}
		}

		if pid == 0 {
			return nil, nil // still running
		}

		st := &Status{Code: ws.ExitStatus()}
		if ws.Signaled() {
			st.Signaled = true
			st.Sig = int(ws.Signal())
		}

		return st, nil
	}
}
