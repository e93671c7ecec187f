package clip

// PreExecFunc is a function that may run right before a dispatched [Command]
// executes. It receives the same [Stdio] the command will.
type PreExecFunc func(s *Stdio) error

// PreExec registers a function that runs immediately before every dispatched
// command, in registration order, inside the same failure boundary as the
// command itself. A non-nil error aborts execution and is reported exactly
// like an execution fault. Hooks never run for the bare listing.
//
// Passing a nil function panics.
func (c *Console) PreExec(fn PreExecFunc) *Console {
	if fn == nil {
		panic("nil pre-exec function")
	}
	c.preExec = append(c.preExec, fn)
	return c
}
