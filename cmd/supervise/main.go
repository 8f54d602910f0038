// supervise - run a command under timeout/cancel supervision
//
// Usage:
//
//	supervise [flags] -- command [args...]
//
// The command's captured stdout and stderr are replayed on the corresponding
// streams once it terminates. Ctrl+C cancels the supervised run instead of
// the supervisor itself.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/cmdkit/supervise"
)

var (
	timeoutFlag       time.Duration
	dirFlag           string
	pipeFlag          string
	ttyFlag           bool
	verboseFlag       bool
	discardStderrFlag bool
)

func main() {
	flag.DurationVar(&timeoutFlag, "timeout", 0, "kill the command after this duration (0 = none)")
	flag.StringVar(&dirFlag, "dir", "", "working directory")
	flag.StringVar(&pipeFlag, "pipe", "", "pipe the command's stdout into this shell-quoted command")
	flag.BoolVar(&ttyFlag, "tty", false, "run the command attached to a PTY")
	flag.BoolVarP(&verboseFlag, "verbose", "v", false, "log supervision events")
	flag.BoolVar(&discardStderrFlag, "discard-stderr", false, "discard the command's stderr")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: supervise [flags] -- command [args...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if verboseFlag {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	args := flag.Args()

	cmd := supervise.NewCommand(args[0], args[1:]...)
	cmd.Dir = dirFlag
	cmd.Timeout = timeoutFlag
	cmd.Cancel = interruptChannel()
	cmd.Tty = ttyFlag
	cmd.Verbose = verboseFlag

	if discardStderrFlag {
		cmd.Stderr = supervise.StreamDiscard
	}

	out, err := execute(cmd)
	if err != nil {
		var spawnErr *supervise.SpawnError
		if errors.As(err, &spawnErr) {
			slog.Error("spawn failed", "cmd", spawnErr.Command.String(), "err", spawnErr.Unwrap())
			os.Exit(127)
		}

		slog.Error("run failed", "err", err)
		os.Exit(1)
	}

	_, _ = os.Stdout.Write(out.Stdout)
	_, _ = os.Stderr.Write(out.Stderr)

	if out.Killed() {
		slog.Warn("command killed", "status", out.Status)
		os.Exit(137)
	}

	if code := out.Status.ExitCode(); code > 0 {
		os.Exit(code)
	}

	if !out.Success() {
		os.Exit(1)
	}
}

func execute(cmd *supervise.Command) (*supervise.Output, error) {
	if pipeFlag == "" {
		return cmd.Output()
	}

	next, err := supervise.ParseCommand(pipeFlag)
	if err != nil {
		return nil, err
	}

	return cmd.Pipe(next)
}

// interruptChannel converts the first SIGINT/SIGTERM into a one-shot
// cancellation signal for the supervised run.
func interruptChannel() <-chan struct{} {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	cancel := make(chan struct{}, 1)

	go func() {
		<-sigc
		cancel <- struct{}{}
	}()

	return cancel
}
