// Package args provides command line argument handling: cobra commands,
// pflag flag sets, and reusable flag groups for verbosity and dry-run
// behavior that most tools end up needing.
package args

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Command is a cobra command.
type Command = cobra.Command

// FlagSet is a set of defined flags.
type FlagSet = pflag.FlagSet

// Flag is a single defined flag.
type Flag = pflag.Flag

// NewFlagSet returns a new flag set with the given name and error handling.
func NewFlagSet(name string, errorHandling pflag.ErrorHandling) *FlagSet {
	return pflag.NewFlagSet(name, errorHandling)
}

// VerbosityFlags is a flag group controlling log output. Each -v raises the
// verbosity and each -q lowers it; the two counts cancel out.
type VerbosityFlags struct {
	verbose     int
	quiet       int
	forceColors bool
}

// Install registers the verbosity flags on the flag set.
func (v *VerbosityFlags) Install(fs *FlagSet) {
	fs.CountVarP(&v.verbose, "verbose", "v", "increase log verbosity, repeatable")
	fs.CountVarP(&v.quiet, "quiet", "q", "decrease log verbosity, repeatable")
	fs.BoolVar(&v.forceColors, "force-colors", false, "color output even when not a terminal")
}

// Verbosity returns the net verbosity: verbose count minus quiet count.
func (v *VerbosityFlags) Verbosity() int {
	return v.verbose - v.quiet
}

// ForceColors reports whether colored output was requested explicitly.
func (v *VerbosityFlags) ForceColors() bool {
	return v.forceColors
}

// DryRunFlags is a flag group for tools that can describe their side effects
// instead of performing them.
type DryRunFlags struct {
	dryRun bool
}

// Install registers the dry-run flag on the flag set.
func (d *DryRunFlags) Install(fs *FlagSet) {
	fs.BoolVarP(&d.dryRun, "dry-run", "d", false, "describe side effects instead of performing them")
}

// DryRun reports whether --dry-run was given.
func (d *DryRunFlags) DryRun() bool {
	return d.dryRun
}

// Run logs msg at info level and executes fn, unless dry-run is active, in
// which case the message is logged with a "[dry run]" prefix and fn is
// skipped.
func (d *DryRunFlags) Run(msg string, fn func() error) error {
	if d.dryRun {
		zap.S().Infof("[dry run]: %s", msg)
		return nil
	}
	zap.S().Info(msg)
	return fn()
}
