package supervise

import (
	"bufio"
	"bytes"
	"io"
	"sync"
)

// streamSink accumulates one stream. Reads are line-chunked purely as a
// buffering convenience; delimiters and any unterminated tail are preserved
// byte-for-byte.
type streamSink struct {
	name string
	buf  bytes.Buffer
	err  error
}

func (s *streamSink) consume(r io.ReadCloser) {
	defer func() { _ = r.Close() }()

	br := bufio.NewReader(r)

	for {
		chunk, err := br.ReadBytes('\n')
		s.buf.Write(chunk)

		if err == io.EOF {
			return
		}

		if err != nil {
			s.err = &IOError{Op: s.name, Err: err}

			return
		}
	}
}

// drainStreams reads both streams to completion, each on its own goroutine so
// that neither stream can back-pressure the child while the other is still
// being read. Either stream may be nil. A read failure on either stream
// aborts the run; bytes captured before the failure are dropped.
func drainStreams(stdout, stderr io.ReadCloser) ([]byte, []byte, error) {
	outSink := &streamSink{name: "stdout"}
	errSink := &streamSink{name: "stderr"}

	var wg sync.WaitGroup

	if stdout != nil {
		wg.Add(1)

		go func() {
			defer wg.Done()
			outSink.consume(stdout)
		}()
	}

	if stderr != nil {
		wg.Add(1)

		go func() {
			defer wg.Done()
			errSink.consume(stderr)
		}()
	}

	wg.Wait()

	if outSink.err != nil {
		return nil, nil, outSink.err
	}

	if errSink.err != nil {
		return nil, nil, errSink.err
	}

	return outSink.buf.Bytes(), errSink.buf.Bytes(), nil
}
