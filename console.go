package clip

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Console holds an ordered registry of command references and dispatches to
// the one matching the invoked name.
//
// References are resolved lazily: registration never validates anything, and
// names are only compared when a lookup or listing actually reaches them.
// Duplicate names are therefore legal, with the first registered match
// winning.
//
// A Console's registry should be mutated only between [Console.Run] calls by
// the owning caller. There is no internal locking.
type Console struct {
	refs      []any
	container Container
	preExec   []PreExecFunc
	logger    *slog.Logger

	out    io.Writer
	errOut io.Writer
	in     io.Reader
}

// NewConsole returns an empty Console bound to the process standard streams.
func NewConsole() *Console {
	return &Console{}
}

// Command appends a command reference to the registry, preserving insertion
// order, and returns the Console for chained registration.
// The reference must be a [Command] instance or a [CommandFactory]; anything
// else is reported as [ErrInvalidReference] once a lookup reaches it.
func (c *Console) Command(ref any) *Console {
	c.refs = append(c.refs, ref)
	return c
}

// WithContainer supplies the [Container] injected into resolved commands
// implementing [ContainerReceiver].
func (c *Console) WithContainer(container Container) *Console {
	c.container = container
	return c
}

// WithLogger attaches a logger for debug traces at lookup and dispatch
// milestones. Without one the Console stays silent.
func (c *Console) WithLogger(logger *slog.Logger) *Console {
	c.logger = logger
	return c
}

// Redirect overrides the streams bound to the [Stdio] each [Console.Run]
// call creates. A nil handle keeps the corresponding process stream.
func (c *Console) Redirect(out, errOut io.Writer, in io.Reader) *Console {
	c.out = out
	c.errOut = errOut
	c.in = in
	return c
}

func (c *Console) trace(msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, args...)
}

// resolveCommand turns a registered reference into a runnable [Command],
// injecting the container where the instance accepts one.
func (c *Console) resolveCommand(ref any) (Command, error) {
	var cmd Command
	switch v := ref.(type) {
	case Command:
		cmd = v
	case CommandFactory:
		cmd = v()
		if cmd == nil {
			return nil, ErrNilCommand
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidReference, ref)
	}
	if c.container != nil {
		if receiver, ok := cmd.(ContainerReceiver); ok {
			receiver.SetContainer(c.container)
		}
	}
	return cmd, nil
}

// GetCommand resolves registered references in insertion order and returns
// the first whose name equals name. Matching is case-sensitive.
// An unresolvable reference fails the lookup with its resolution error; no
// match at all fails with [ErrUnknownCommand].
func (c *Console) GetCommand(name string) (Command, error) {
	for _, ref := range c.refs {
		cmd, err := c.resolveCommand(ref)
		if err != nil {
			return nil, err
		}
		if cmd.Name() == name {
			return cmd, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

// List writes the command listing to s.
// Every reference is resolved in insertion order; one that fails to resolve
// is skipped so the listing itself never fails.
func (c *Console) List(s *Stdio) {
	if len(c.refs) == 0 {
		s.Writeln("No commands available.")
		return
	}
	s.Writeln("Available commands:")
	s.Writeln("")
	for _, ref := range c.refs {
		cmd, err := c.resolveCommand(ref)
		if err != nil {
			c.trace("skipping unresolvable reference", "error", err)
			continue
		}
		s.Writef("  %s\t%s\n", cmd.Name(), cmd.Description())
	}
}

// Run parses argv into a fresh [Stdio], dispatches to the named command, and
// returns the process exit code. Passing nil argv parses [os.Args].
//
// No command name prints the listing and returns 0. An unknown name reports
// "Command '...' not found." with the listing and returns 1. A resolution
// failure reports "Error: ..." and returns 1. Otherwise the matched command
// executes inside a boundary that converts returned errors and panics into
// an "Error: ..." line and exit code 1; on success the command's own exit
// code is returned verbatim.
func (c *Console) Run(argv []string) int {
	if argv == nil {
		argv = os.Args
	}
	s := NewStdioWith(argv, c.out, c.errOut, c.in)
	name := s.Command()
	if name == "" {
		c.trace("no command given, listing")
		c.List(s)
		return 0
	}
	c.trace("looking up command", "command", name)
	cmd, err := c.GetCommand(name)
	if err != nil {
		if errors.Is(err, ErrUnknownCommand) {
			s.Errorf("Command '%s' not found.", name)
			s.Writeln("")
			c.List(s)
			return 1
		}
		s.Error("Error: " + err.Error())
		return 1
	}
	c.trace("dispatching", "command", name, "arguments", len(s.Arguments()), "options", len(s.Options()))
	return c.dispatch(cmd, s)
}

// dispatch executes cmd inside the failure boundary. Command code is
// third-party from the Console's point of view, so panics are recovered
// here rather than crashing the dispatcher.
func (c *Console) dispatch(cmd Command, s *Stdio) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c.trace("recovered panic", "command", cmd.Name(), "panic", r)
			s.Errorf("Error: %v", r)
			code = 1
		}
	}()
	for _, fn := range c.preExec {
		if err := fn(s); err != nil {
			s.Error("Error: " + err.Error())
			return 1
		}
	}
	exit, err := cmd.Execute(s)
	if err != nil {
		s.Error("Error: " + err.Error())
		return 1
	}
	return exit
}
