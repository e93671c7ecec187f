package clip

import "errors"

var (
	// ErrUnknownCommand is returned from [Console.GetCommand] when no registered reference resolves to the requested name.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidReference is returned when a registered reference is neither a [Command] nor a factory for one.
	ErrInvalidReference = errors.New("invalid command reference")
	// ErrNilCommand is returned when a command factory produces a nil [Command].
	ErrNilCommand = errors.New("factory returned a nil command")
	// ErrNoChoices is returned from [Stdio.Choice] when the choice list is empty.
	ErrNoChoices = errors.New("no choices to select from")
	// ErrNoContainer is returned from [ContainerAware.Get] before a [Container] has been injected.
	ErrNoContainer = errors.New("container not available")
	// ErrArgMap is returned from [Stdio.MapArguments] when the positional arguments can't satisfy the targets.
	ErrArgMap = errors.New("failed to map argument(s)")
)
