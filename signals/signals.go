// Package signals provides signal registration and a guard for sections of
// code that must not be interrupted by termination signals.
//
// Registration forwards to os/signal. TermSignals is the conventional
// "please stop" set for the target platform.
package signals

import (
	"os"
	"os/signal"
)

// Notify relays incoming signals to c.
var Notify = signal.Notify

// NotifyContext returns a context cancelled on the first of the listed
// signals.
var NotifyContext = signal.NotifyContext

// Stop cancels the effect of prior Notify calls for c.
var Stop = signal.Stop

// Reset undoes the effect of any prior Notify for the given signals.
var Reset = signal.Reset

// Uninterruptible holds delivery of the given signals (TermSignals when none
// are listed) until the returned release function is called. A signal that
// arrived while held is re-delivered to the process on release, so the
// program still terminates, just not in the middle of the critical section:
//
//	release := signals.Uninterruptible()
//	defer release()
//	// move files around ...
func Uninterruptible(sigs ...os.Signal) (release func()) {
	if len(sigs) == 0 {
		sigs = TermSignals
	}

	ch := make(chan os.Signal, len(sigs))
	signal.Notify(ch, sigs...)

	return func() {
		signal.Stop(ch)
		select {
		case sig := <-ch:
			if p, err := os.FindProcess(os.Getpid()); err == nil {
				p.Signal(sig)
			}
		default:
		}
	}
}
