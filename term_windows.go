//go:build windows

package clip

import (
	"github.com/mattn/go-isatty"
	"github.com/vaibhavpandeyvpz/clip/env"
	"golang.org/x/sys/windows"
	"io"
)

// supportsColor reports whether w is a console capable of rendering ANSI
// color sequences. ANSICON and ConEmu announce support through the
// environment. Native consoles are probed for virtual terminal processing and
// upgraded in place when the mode can be set, which covers Windows 10 and
// later. Cygwin and MSYS terminals present as named pipes rather than
// consoles and are recognized last.
func supportsColor(w io.Writer) bool {
	if env.IsSet("ANSICON") || env.Val("ConEmuANSI", "") == "ON" {
		return true
	}
	fd, ok := writerFd(w)
	if !ok {
		return false
	}
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(fd), &mode); err == nil {
		if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
			return true
		}
		if err := windows.SetConsoleMode(windows.Handle(fd), mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err == nil {
			return true
		}
	}
	return isatty.IsCygwinTerminal(fd)
}
