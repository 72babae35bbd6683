package errs

// Guard collects cleanup functions to run if a multi-step operation does not
// reach its success point. Typical use:
//
//	g := NewGuard()
//	defer g.Release()
//
//	f, err := os.Create(path)
//	if err != nil { return err }
//	g.Defer(func() { os.Remove(path) })
//
//	// more fallible steps ...
//
//	g.Dismiss() // success: keep everything
//
// Release runs the collected functions in reverse order unless Dismiss was
// called first. Guard is not safe for concurrent use.
type Guard struct {
	fns       []func()
	dismissed bool
}

// NewGuard returns an empty guard.
func NewGuard() *Guard {
	return &Guard{}
}

// Defer schedules fn to run on Release.
func (g *Guard) Defer(fn func()) {
	g.fns = append(g.fns, fn)
}

// Dismiss marks the operation successful; Release becomes a no-op.
func (g *Guard) Dismiss() {
	g.dismissed = true
}

// Release runs the scheduled functions last-in first-out unless the guard
// was dismissed. It is idempotent.
func (g *Guard) Release() {
	if g.dismissed {
		return
	}
	fns := g.fns
	g.fns = nil
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
