package clip

import (
	"fmt"
)

// Command is a named, independently executable unit in a CLI.
// It should be registered with a [Console] to make it reachable by name.
type Command interface {
	// Name returns the name used to invoke this command.
	// Matching is case-sensitive and exact.
	Name() string
	// Description returns a one-line summary shown in the command listing.
	Description() string
	// Execute runs the command against a parsed invocation, returning the
	// process exit code. A non-nil error is reported by [Console.Run] on the
	// error stream and forces exit code 1 regardless of the returned code.
	Execute(stdio *Stdio) (int, error)
}

// CommandFactory is a deferred command reference that may be registered with
// [Console.Command] in place of an instance.
// A factory is invoked anew on every lookup that considers it.
type CommandFactory = func() Command

// Container is the service locator contract a [Command] may consume.
// This package never implements one beyond test doubles; supply your own
// through [Console.WithContainer].
type Container interface {
	// Get resolves the service registered under id, or fails when it can't.
	Get(id string) (any, error)
	// Has reports whether id can be resolved. It never fails.
	Has(id string) bool
}

// ContainerReceiver is the optional capability a [Command] implements to
// receive the [Container] supplied to its [Console].
// Injection happens at resolution time and is best-effort: commands without
// this capability are silently left alone.
type ContainerReceiver interface {
	SetContainer(container Container)
}

var _ ContainerReceiver = (*ContainerAware)(nil)

// ContainerAware satisfies [ContainerReceiver] and may be embedded in a
// command type to proxy [Container] access without nil checks at call sites.
type ContainerAware struct {
	container Container
}

// SetContainer stores the injected [Container].
func (a *ContainerAware) SetContainer(container Container) {
	a.container = container
}

// Get resolves id through the injected [Container].
// Calling Get before a container was injected fails with [ErrNoContainer].
func (a *ContainerAware) Get(id string) (any, error) {
	if a.container == nil {
		return nil, fmt.Errorf("%w: cannot get %q", ErrNoContainer, id)
	}
	return a.container.Get(id)
}

// Has reports whether id can be resolved through the injected [Container].
// Unlike [ContainerAware.Get], calling Has before injection simply reports
// false.
func (a *ContainerAware) Has(id string) bool {
	if a.container == nil {
		return false
	}
	return a.container.Has(id)
}
