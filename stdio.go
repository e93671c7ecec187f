package clip

import (
	"bufio"
	"github.com/vaibhavpandeyvpz/clip/env"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
)

const optionPrefix = "--"

// Stdio holds one parsed command-line invocation along with the three stream
// handles used for terminal I/O.
//
// The first element of argv is treated as the program path and discarded.
// The next token becomes the command name, and every remaining token is
// classified as either a positional argument or an option based purely on the
// "--" prefix. There is no schema: malformed tokens are stored literally.
//
// A Stdio is intended to be owned by a single [Console.Run] call, or created
// directly for tools that don't need command dispatch. It is not safe for
// concurrent use.
type Stdio struct {
	command   string
	arguments []string
	options   map[string]any

	out    io.Writer
	errOut io.Writer
	in     io.Reader

	// scanner is created on first read so sequential prompts share buffered
	// input instead of discarding it.
	scanner *bufio.Scanner

	colors bool
}

// NewStdio parses argv and binds the process standard streams.
// Pass nil to parse an empty invocation.
func NewStdio(argv []string) *Stdio {
	return NewStdioWith(argv, nil, nil, nil)
}

// NewStdioWith parses argv with explicit stream handles.
// Any nil handle falls back to the corresponding process stream, so tests can
// inject only the streams they care about.
func NewStdioWith(argv []string, out, errOut io.Writer, in io.Reader) *Stdio {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	if in == nil {
		in = os.Stdin
	}
	s := &Stdio{
		options: map[string]any{},
		out:     out,
		errOut:  errOut,
		in:      in,
	}
	s.parse(argv)
	s.colors = !env.IsSet("NO_COLOR") && supportsColor(out)
	return s
}

func (s *Stdio) parse(argv []string) {
	if len(argv) < 2 {
		return
	}
	s.command = argv[1]
	for _, token := range argv[2:] {
		rest, found := strings.CutPrefix(token, optionPrefix)
		if !found {
			s.arguments = append(s.arguments, token)
			continue
		}
		// Split on the first '=' only so values may contain '=' themselves.
		key, value, found := strings.Cut(rest, "=")
		if found {
			s.options[key] = value
		} else {
			s.options[key] = true
		}
	}
}

// Command returns the parsed command name, or the empty string when the
// invocation carried no tokens beyond the program path.
func (s *Stdio) Command() string {
	return s.command
}

// Arguments returns the positional arguments in the order they were given.
func (s *Stdio) Arguments() []string {
	return slices.Clone(s.arguments)
}

// Argument returns the positional argument at index, or defaultVal when the
// index is out of range.
func (s *Stdio) Argument(index int, defaultVal string) string {
	if index < 0 || index >= len(s.arguments) {
		return defaultVal
	}
	return s.arguments[index]
}

// Options returns the full option mapping.
// Values are either string (from "--key=value") or the boolean true (from "--key").
func (s *Stdio) Options() map[string]any {
	return maps.Clone(s.options)
}

// Option returns the stored value for name, or defaultVal when the option was
// not given.
func (s *Stdio) Option(name string, defaultVal any) any {
	if value, ok := s.options[name]; ok {
		return value
	}
	return defaultVal
}

// OptionString returns the option value as a string: string values are
// returned verbatim, a bare flag renders as "true", and defaultVal is
// returned when the option was not given.
func (s *Stdio) OptionString(name, defaultVal string) string {
	value, ok := s.options[name]
	if !ok {
		return defaultVal
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	default:
		return defaultVal
	}
}

// HasOption reports whether the option was given at all, regardless of its
// stored value.
func (s *Stdio) HasOption(name string) bool {
	_, ok := s.options[name]
	return ok
}

// ColorsEnabled reports whether write operations will wrap messages in ANSI
// color sequences. The value is computed once at construction: setting
// NO_COLOR (to anything, including an empty string) disables colors
// unconditionally, otherwise the output handle is probed for terminal support.
func (s *Stdio) ColorsEnabled() bool {
	return s.colors
}

// SetColors overrides the detected color support.
// Mostly useful for tests and for tools with their own --no-color flag.
func (s *Stdio) SetColors(enabled bool) {
	s.colors = enabled
}

// readLine blocks until one line is read from the input handle, returning it
// with surrounding whitespace trimmed. An exhausted stream yields "".
func (s *Stdio) readLine() string {
	if s.scanner == nil {
		s.scanner = bufio.NewScanner(s.in)
	}
	if !s.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(s.scanner.Text())
}
