package clip

import (
	"fmt"
	"io"
)

// ANSI SGR sequences used by the leveled write operations.
const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiReset  = "\x1b[0m"
)

// Write writes message to the output handle without a trailing newline.
func (s *Stdio) Write(message string) {
	_, _ = io.WriteString(s.out, message)
}

// Writef formats according to format and writes the result to the output
// handle without a trailing newline.
func (s *Stdio) Writef(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// Writeln writes message to the output handle, followed by a newline.
func (s *Stdio) Writeln(message string) {
	_, _ = fmt.Fprintln(s.out, message)
}

// Error writes message to the error handle, colored red when colors are
// enabled, followed by a newline.
func (s *Stdio) Error(message string) {
	s.writeColored(s.errOut, ansiRed, message)
}

// Errorf formats according to format and writes the result as [Stdio.Error]
// would.
func (s *Stdio) Errorf(format string, args ...any) {
	s.Error(fmt.Sprintf(format, args...))
}

// Warning writes message to the output handle, colored yellow when colors are
// enabled, followed by a newline.
func (s *Stdio) Warning(message string) {
	s.writeColored(s.out, ansiYellow, message)
}

// Info writes message to the output handle, colored cyan when colors are
// enabled, followed by a newline.
func (s *Stdio) Info(message string) {
	s.writeColored(s.out, ansiCyan, message)
}

// Debug writes message to the output handle, uncolored, followed by a newline.
func (s *Stdio) Debug(message string) {
	_, _ = fmt.Fprintln(s.out, message)
}

// Verbose writes message as [Stdio.Debug] does.
func (s *Stdio) Verbose(message string) {
	s.Debug(message)
}

func (s *Stdio) writeColored(w io.Writer, color, message string) {
	if s.colors {
		_, _ = fmt.Fprintln(w, color+message+ansiReset)
		return
	}
	_, _ = fmt.Fprintln(w, message)
}
