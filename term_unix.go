//go:build !windows

package clip

import (
	"golang.org/x/term"
	"io"
)

// supportsColor reports whether w is a terminal capable of rendering ANSI
// color sequences. Buffers, pipes and other non-file writers never are.
func supportsColor(w io.Writer) bool {
	fd, ok := writerFd(w)
	if !ok {
		return false
	}
	return term.IsTerminal(int(fd))
}
