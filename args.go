package clip

import (
	"fmt"
)

// MustGet is used with a pflag FlagSet getter to panic if the flag is not
// defined, or is not the right type. The developer usually knows whether a
// get call will fail, so this function makes it easier to avoid global flag
// state inside a [Command].
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MapArguments is an easy way to map positional arguments to variables
// (targets), and require a certain amount. This will return an error if
// there are not enough arguments and/or targets to satisfy the amount
// required by minArgs. Targets elements should not be nil.
//
// Surplus arguments beyond the targets remain accessible through
// [Stdio.Argument]; no coercion is applied.
func (s *Stdio) MapArguments(minArgs int, targets ...*string) error {
	if len(s.arguments) < minArgs {
		return fmt.Errorf("%w: not enough arguments (%d) to satisfy minArgs (%d)", ErrArgMap, len(s.arguments), minArgs)
	}
	if len(targets) < minArgs {
		return fmt.Errorf("%w: not enough targets (%d) to satisfy minArgs (%d)", ErrArgMap, len(targets), minArgs)
	}
	for i := 0; i < len(s.arguments) && i < len(targets); i++ {
		if targets[i] == nil {
			return fmt.Errorf("%w: target %d is nil", ErrArgMap, i)
		}
		*targets[i] = s.arguments[i]
	}
	return nil
}
