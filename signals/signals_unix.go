//go:build unix

package signals

import (
	"os"

	"golang.org/x/sys/unix"
)

// TermSignals are the signals conventionally asking the process to stop.
var TermSignals = []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGQUIT}
