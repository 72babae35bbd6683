// Command burlapcheck validates the capability catalog and shows which
// capabilities a group selection resolves to on a target platform.
//
//	burlapcheck                  # default group on the current platform
//	burlapcheck hashing process  # a custom selection
//	burlapcheck -t windows       # what a windows build would get
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"github.com/burlapkit/burlap"
	"github.com/burlapkit/burlap/args"
	"github.com/burlapkit/burlap/logging"
	"github.com/burlapkit/burlap/term"
)

// ExitError carries a specific process exit code alongside the message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command logic for easier testing and error handling.
func run(outW io.Writer, argv []string) error {
	fs := args.NewFlagSet("burlapcheck", pflag.ContinueOnError)
	fs.SetOutput(outW)
	fs.Usage = func() {
		fmt.Fprint(outW, `burlapcheck - inspect the capability catalog.

Usage:
  burlapcheck [options] [GROUP...]

Arguments:
  GROUP
    Group names to resolve. Defaults to the "default" group.

Options:
`)
		fmt.Fprint(outW, fs.FlagUsages())
	}

	var verbosity args.VerbosityFlags
	verbosity.Install(fs)
	target := fs.StringP("target", "t", runtime.GOOS, "GOOS to resolve the selection for")
	listGroups := fs.BoolP("list", "l", false, "list the declared groups and exit")

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	logger := logging.Setup(verbosity.Verbosity(), verbosity.ForceColors())
	defer logger.Sync()

	if err := burlap.Check(); err != nil {
		return &ExitError{Code: 1, Message: fmt.Sprintf("catalog is invalid:\n%v", err)}
	}
	logger.Debug("catalog validated")

	if *listGroups {
		printGroups(outW)
		return nil
	}

	selection := fs.Args()
	resolved, err := burlap.Resolve(selection...)
	if err != nil {
		var unknown *burlap.UnknownGroupError
		if errors.As(err, &unknown) {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		return err
	}

	active := burlap.ActiveOn(*target, resolved)
	printSelection(outW, selection, *target, resolved, active)
	return nil
}

func printGroups(outW io.Writer) {
	for _, group := range burlap.Groups() {
		members := append(group.Groups, group.Capabilities...)
		fmt.Fprintf(outW, "%-10s %s\n", group.Name, strings.Join(members, " "))
	}
}

func printSelection(outW io.Writer, selection []string, goos string, resolved, active []burlap.Capability) {
	if len(selection) == 0 {
		selection = []string{burlap.DefaultGroup}
	}
	fmt.Fprintf(outW, "selection %s on %s: %d of %d capabilities\n\n",
		strings.Join(selection, "+"), goos, len(active), len(resolved))

	name := term.NewStyle().Bold(true)
	for _, capability := range active {
		fmt.Fprintf(outW, "  %s %s (package %s)\n",
			name.Render(fmt.Sprintf("%-8s", capability.Name)),
			capability.Description, capability.Package)
	}

	for _, capability := range resolved {
		if !capability.AvailableOn(goos) {
			fmt.Fprintf(outW, "\n  %-8s unavailable on %s\n", capability.Name, goos)
		}
	}
}
