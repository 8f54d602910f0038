//go:build windows

package supervise

// poll has no non-blocking wait on Windows; a detached run reports no status.
func (p *proc) poll() (*Status, error) {
	return nil, nil
}
