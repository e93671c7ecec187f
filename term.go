package clip

import "io"

// fileDescriptor is satisfied by [os.File] and anything else backed by an OS
// handle that color detection can probe.
type fileDescriptor interface {
	Fd() uintptr
}

func writerFd(w io.Writer) (uintptr, bool) {
	f, ok := w.(fileDescriptor)
	if !ok {
		return 0, false
	}
	return f.Fd(), true
}
