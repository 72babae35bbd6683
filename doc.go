// Package burlap is a batteries-included toolkit for shell-script-grade Go
// programs: small tools that parse a few flags, log to stderr, run other
// programs and touch the filesystem. It gathers a fixed set of independently
// developed libraries behind one module, organized into feature groups, and
// adds nothing of its own on top of them: every capability is a thin
// forwarding layer over the library that owns it.
//
// Each capability lives in its own package; importing the package is what
// activates it. The process-replacement capability is only compiled on
// unix-like targets, so referencing its symbols on other platforms fails at
// compile time with an ordinary "undefined" error.
//
//	Capability  Package   Underlying libraries
//	regex       regex     standard library regexp
//	args        args      spf13/cobra, spf13/pflag
//	logging     logging   uber-go/zap, mattn/go-isatty
//	time        clock     ncruces/go-strftime, dustin/go-humanize
//	term        term      muesli/termenv, charmbracelet/lipgloss,
//	                      mattn/go-isatty, mattn/go-runewidth, x/term
//	hashing     hashing   crypto/sha256, encoding/hex, x/crypto (blake2b)
//	files       files     os, fsnotify/fsnotify, x/sys
//	signals     signals   os/signal, x/sys
//	errors      errs      pkg/errors, uber-go/multierr
//	app         appdir    os (user config and cache directories)
//	process     proc      mattn/go-shellwords, os/exec
//	exec        proc      x/sys (unix-like targets only)
//
// The feature groups bundling these capabilities, the default group and the
// platform constraints are declared in an embedded catalog. This package
// exposes that catalog read-only: Capabilities, Groups, Resolve and Default
// answer "what would be active for this selection" without importing any of
// the capability packages. The catalog is authored once, validated strictly
// (see cmd/burlapcheck) and immutable at runtime.
//
// burlap deliberately contains no data-format, network or plugin machinery.
package burlap
