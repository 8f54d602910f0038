package supervise

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct {
	data string
	read bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true

		return copy(p, r.data), nil
	}

	return 0, assert.AnError
}

func (r *failingReader) Close() error {
	return nil
}

func TestDrainStreams_BothStreams(t *testing.T) {
	t.Parallel()

	stdout := io.NopCloser(strings.NewReader("line one\nline two\n"))
	stderr := io.NopCloser(strings.NewReader("oops\n"))

	out, errOut, err := drainStreams(stdout, stderr)
	require.NoError(t, err)

	assert.Equal(t, "line one\nline two\n", string(out))
	assert.Equal(t, "oops\n", string(errOut))
}

func TestDrainStreams_PreservesUnterminatedTail(t *testing.T) {
	t.Parallel()

	stdout := io.NopCloser(strings.NewReader("complete line\npartial"))

	out, _, err := drainStreams(stdout, nil)
	require.NoError(t, err)

	assert.Equal(t, "complete line\npartial", string(out))
}

func TestDrainStreams_PreservesEmptyLines(t *testing.T) {
	t.Parallel()

	stdout := io.NopCloser(strings.NewReader("\n\n\nx\n\n"))

	out, _, err := drainStreams(stdout, nil)
	require.NoError(t, err)

	assert.Equal(t, "\n\n\nx\n\n", string(out))
}

func TestDrainStreams_AbsentStreams(t *testing.T) {
	t.Parallel()

	out, errOut, err := drainStreams(nil, nil)
	require.NoError(t, err)

	assert.Empty(t, out)
	assert.Empty(t, errOut)
}

func TestDrainStreams_ReadFailure(t *testing.T) {
	t.Parallel()

	stdout := io.NopCloser(strings.NewReader("fine\n"))
	stderr := &failingReader{data: "before the failure\n"}

	_, _, err := drainStreams(stdout, stderr)
	require.Error(t, err)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "stderr", ioErr.Op)
	assert.ErrorIs(t, err, assert.AnError)
}
