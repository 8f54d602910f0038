// Package supervise provides a supervised external-process execution
// primitive.
//
// # Model
//
// A run spawns a child process and races three events on a dedicated monitor
// goroutine: the child's natural exit, an optional timeout tick, and an
// optional external cancellation signal. Whichever kill source fires first
// kills the child exactly once; the monitor keeps waiting for the exit event
// afterwards, since killing is asynchronous. Meanwhile the drainer reads the
// child's captured stdout and stderr to completion, each stream
// independently, so a full OS pipe buffer can never stall the child. The
// caller joins both before a single Terminal Result is assembled: status from
// the monitor, bytes from the drainer.
//
// # Operations
//
// Exactly three operations are exposed:
//
//   - Command.Run: spawn detached and return immediately with whatever
//     status is available without waiting.
//   - Command.Output: spawn, supervise, drain, and return the Terminal
//     Result.
//   - Command.Pipe: supervise two commands joined by an OS pipe and return
//     one Terminal Result for the downstream process.
//
// # Errors
//
// Failures are typed: *SpawnError (the OS could not create the process),
// *IOError (a stream read failed while draining), and *CmdError (the process
// ran but terminated abnormally, carrying the captured status, stdout and
// stderr for diagnostics). A kill issued by the supervisor is always
// recoverable from the result's status classification.
package supervise
