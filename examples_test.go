package supervise_test

import (
	"fmt"
	"time"

	"github.com/cmdkit/supervise"
)

func ExampleCommand_Output() {
	cmd := supervise.NewCommand("echo", "hello", "world")

	out, err := cmd.Output()
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s", out.Stdout)
	// Output: hello world
}

func ExampleCommand_Output_timeout() {
	cmd := supervise.New("sleep").
		Arg("10").
		Timeout(100 * time.Millisecond).
		Build()

	out, err := cmd.Output()
	if err != nil {
		panic(err)
	}

	fmt.Println(out.Killed())
	// Output: true
}

func ExampleCommand_Pipe() {
	emit := supervise.NewCommand("sh", "-c", `printf 'one\ntwo\nthree\n'`)

	filter, err := supervise.ParseCommand("grep t")
	if err != nil {
		panic(err)
	}

	out, err := emit.Pipe(filter)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s", out.Stdout)
	// Output:
	// two
	// three
}

func ExampleOutput_Result() {
	out, err := supervise.NewCommand("sh", "-c", "echo broken >&2; exit 1").Output()
	if err != nil {
		panic(err)
	}

	if _, rerr := out.Result(); rerr != nil {
		cmdErr := rerr.(*supervise.CmdError)
		fmt.Printf("exit %d: %s", cmdErr.ExitCode(), cmdErr.Stderr)
	}
	// Output: exit 1: broken
}
