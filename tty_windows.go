//go:build windows

package supervise

func (c *Command) outputTty() (*Output, error) {
	return nil, &SpawnError{Command: c, Err: ErrNotSupported}
}
