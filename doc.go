/*
Package clip is a minimal toolkit for command-line tools that want named
commands, schema-free options, and interactive prompts without pulling in a
full framework.

There are a few deliberate policies behind how this package operates.

  - Parsing is purely syntactic. A token starting with "--" is an option,
    everything else is a positional argument, and no schema is consulted.
    Malformed tokens are stored literally rather than rejected. Commands that
    want typed or short flags can run [pflag] over [Stdio.Arguments].
  - Regular output goes to STDOUT, errors to STDERR. Both handles (and the
    input handle) are constructor parameters with process-stream defaults,
    so tests never need to redirect process-wide state.
  - Color support is detected once per [Stdio], and the NO_COLOR convention
    wins over every other signal, including an empty value.
  - A dispatched command may fail however it likes. [Console.Run] converts
    returned errors and panics alike into a single "Error: ..." line and exit
    code 1, so a misbehaving command never crashes the dispatcher.

# Invocation

A tool built with this package is always invoked in this form:

	TOOL_NAME COMMAND [ARGS...] [--OPTION[=VALUE]...]

Calling TOOL_NAME with no command prints the list of registered commands.
Option values may contain '=' characters; only the first one splits the key
from the value. An option with no value is stored as the boolean true.

# Commands

A command is anything implementing [Command]: a name, a description, and an
Execute method returning a process exit code. Register commands on a
[Console] either as ready-made instances or as [CommandFactory] functions,
then hand control to [Console.Run]:

	console := clip.NewConsole().
		Command(&buildCommand{}).
		Command(func() clip.Command { return &deployCommand{} })
	os.Exit(console.Run(nil))

Factories are re-invoked on every lookup that considers them, so a factory
registered command should not hold state between runs. Instances are reused
object-for-object.

Commands that need services can embed [ContainerAware] and receive a
[Container] injected by the [Console] at resolution time. Injection is
best-effort: commands that don't implement [ContainerReceiver] are left
alone.

# Prompts

[Stdio.Ask], [Stdio.Confirm], and [Stdio.Choice] block for one line of input
each. All of them treat an exhausted input stream as empty input, which
selects the default where one was given.

[pflag]: https://github.com/spf13/pflag
*/
package clip
