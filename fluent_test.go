package supervise

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_New(t *testing.T) {
	t.Parallel()

	cancel := make(chan struct{})

	cmd := New("ls").
		Arg("-l").
		Arg("-a").
		Dir("/tmp").
		Env("FOO", "bar").
		Input("some input").
		Timeout(time.Second).
		Cancel(cancel).
		Tty().
		Verbose().
		Build()

	assert.Equal(t, "ls", cmd.Path)
	assert.Equal(t, []string{"-l", "-a"}, cmd.Args)
	assert.Equal(t, "/tmp", cmd.Dir)
	assert.Equal(t, []string{"FOO=bar"}, cmd.Env)
	assert.Equal(t, time.Second, cmd.Timeout)
	assert.NotNil(t, cmd.Cancel)
	assert.True(t, cmd.Tty)
	assert.True(t, cmd.Verbose)

	// Verify input
	inputBytes, err := io.ReadAll(cmd.Stdin)
	require.NoError(t, err)
	assert.Equal(t, "some input", string(inputBytes))
}

func TestBuilder_Args(t *testing.T) {
	t.Parallel()

	cmd := New("echo").
		Args("hello", "world").
		Build()

	assert.Equal(t, "echo", cmd.Path)
	assert.Equal(t, []string{"hello", "world"}, cmd.Args)
}

func TestBuilder_Streams(t *testing.T) {
	t.Parallel()

	cmd := New("sh").
		Stdout(StreamInherit).
		Stderr(StreamDiscard).
		Build()

	assert.Equal(t, StreamInherit, cmd.Stdout)
	assert.Equal(t, StreamDiscard, cmd.Stderr)
}
