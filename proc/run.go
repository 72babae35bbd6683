package proc

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// StatusError reports a process that finished unsuccessfully. Output holds
// whatever was captured for the error message; it may be empty for
// pass-through runs.
type StatusError struct {
	// Code is the exit status, or -1 if the process died on a signal.
	Code   int
	Output []byte
}

func (e *StatusError) Error() string {
	msg := strings.TrimRight(string(e.Output), "\n")
	if e.Code < 0 {
		if msg == "" {
			return "process was aborted"
		}
		return fmt.Sprintf("process was aborted; errors:\n%s", msg)
	}
	if msg == "" {
		return fmt.Sprintf("process exited with status code: %d", e.Code)
	}
	return fmt.Sprintf("process exited with status code: %d; errors:\n%s", e.Code, msg)
}

// Silent runs the command capturing stdout and stderr together. On a
// non-zero exit the captured output becomes part of the returned
// StatusError; on success nothing is printed.
func Silent(cmd *exec.Cmd) error {
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	code, err := run(cmd)
	if err != nil {
		return err
	}
	if code != 0 {
		return &StatusError{Code: code, Output: buf.Bytes()}
	}
	return nil
}

// PassThrough runs the command with stdin, stdout and stderr connected to
// the current process. A non-zero exit is returned as a StatusError carrying
// the code; the output already went to the terminal.
func PassThrough(cmd *exec.Cmd) error {
	connectStdio(cmd)

	code, err := run(cmd)
	if err != nil {
		return err
	}
	if code != 0 {
		return &StatusError{Code: code}
	}
	return nil
}

// RunWithStatus runs the command with pass-through output and returns its
// exit code. A process that finishes without an exit code (killed by a
// signal) is an error.
func RunWithStatus(cmd *exec.Cmd) (int, error) {
	connectStdio(cmd)

	code, err := run(cmd)
	if err != nil {
		return 0, err
	}
	if code < 0 {
		return 0, &StatusError{Code: code}
	}
	return code, nil
}

// ReadWithStatus runs the command capturing stdout, with stderr passed
// through, and returns the captured output together with the exit code. A
// signal-killed process is an error.
func ReadWithStatus(cmd *exec.Cmd) (string, int, error) {
	var buf bytes.Buffer
	cmd.Stdout = &buf
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	code, err := run(cmd)
	if err != nil {
		return "", 0, err
	}
	if code < 0 {
		return "", 0, &StatusError{Code: code}
	}
	return buf.String(), code, nil
}

// run starts and waits for the command, translating a normal unsuccessful
// exit into its code. Only failures to run the program at all (not found,
// permissions) are returned as errors.
func run(cmd *exec.Cmd) (int, error) {
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ProcessState.ExitCode(), nil
		}
		return 0, fmt.Errorf("while executing command %q: %w", cmd.Path, err)
	}
	return cmd.ProcessState.ExitCode(), nil
}

func connectStdio(cmd *exec.Cmd) {
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
}
