package proc

import (
	"fmt"
	"os/exec"
)

// Args builds an argument vector incrementally, useful when flags are
// collected from several places before the command is finally run.
type Args struct {
	v []string
}

// NewArgs returns a builder seeded with the given arguments.
func NewArgs(args ...string) *Args {
	return &Args{v: append([]string(nil), args...)}
}

// With appends one argument and returns the builder for chaining.
func (a *Args) With(arg string) *Args {
	a.v = append(a.v, arg)
	return a
}

// WithAll appends several arguments and returns the builder for chaining.
func (a *Args) WithAll(args ...string) *Args {
	a.v = append(a.v, args...)
	return a
}

// Append moves the other builder's arguments onto this one.
func (a *Args) Append(other *Args) *Args {
	a.v = append(a.v, other.v...)
	return a
}

// Slice returns a copy of the accumulated argument vector.
func (a *Args) Slice() []string {
	return append([]string(nil), a.v...)
}

// Command builds an exec.Cmd running the named program with the accumulated
// arguments.
func (a *Args) Command(name string) *exec.Cmd {
	return exec.Command(name, a.v...)
}

func (a *Args) String() string {
	return fmt.Sprintf("%q", a.v)
}
