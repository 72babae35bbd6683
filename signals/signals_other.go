//go:build !unix

package signals

import "os"

// TermSignals are the signals conventionally asking the process to stop. On
// non-unix targets only the interrupt signal is portable.
var TermSignals = []os.Signal{os.Interrupt}
