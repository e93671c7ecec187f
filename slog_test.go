package clip

import (
	"github.com/stretchr/testify/assert"
	"log/slog"
	"testing"
)

func TestLogHandler_LevelRouting(t *testing.T) {
	s, out, errOut := testStdio()
	log := slog.New(NewLogHandler(s, slog.LevelDebug))

	log.Debug("tracing")
	log.Info("working")
	assert.Equal(t, "tracing\nworking\n", out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	log.Warn("careful")
	assert.Equal(t, "careful\n", out.String())

	log.Error("broken")
	assert.Equal(t, "broken\n", errOut.String())
}

func TestLogHandler_LevelFiltering(t *testing.T) {
	s, out, _ := testStdio()

	log := slog.New(NewLogHandler(s, slog.LevelWarn))
	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("kept")
	assert.Equal(t, "kept\n", out.String())

	// A nil level means info.
	out.Reset()
	log = slog.New(NewLogHandler(s, nil))
	log.Debug("dropped")
	log.Info("kept")
	assert.Equal(t, "kept\n", out.String())
}

func TestLogHandler_Colors(t *testing.T) {
	s, out, errOut := testStdio()
	s.SetColors(true)
	log := slog.New(NewLogHandler(s, slog.LevelInfo))

	log.Info("working")
	assert.Equal(t, "working\n", out.String(), "Info records should render plain")

	out.Reset()
	log.Warn("careful")
	assert.Equal(t, "\x1b[33mcareful\x1b[0m\n", out.String())

	log.Error("broken")
	assert.Equal(t, "\x1b[31mbroken\x1b[0m\n", errOut.String())
}

func TestLogHandler_Attrs(t *testing.T) {
	s, out, _ := testStdio()
	log := slog.New(NewLogHandler(s, slog.LevelInfo))

	log.Info("deployed", "env", "prod", "count", 3)
	assert.Equal(t, "deployed env=prod count=3\n", out.String())
}

func TestLogHandler_WithAttrs(t *testing.T) {
	s, out, _ := testStdio()
	log := slog.New(NewLogHandler(s, slog.LevelInfo))
	log = log.With("tool", "clip")

	log.Info("started", "pid", 7)
	assert.Equal(t, "started tool=clip pid=7\n", out.String())

	// Derived loggers must not leak attributes back to their parent.
	out.Reset()
	derived := log.With("run", 1)
	derived.Info("first")
	log.Info("second")
	assert.Equal(t, "first tool=clip run=1\nsecond tool=clip\n", out.String())
}

func TestLogHandler_WithGroup(t *testing.T) {
	s, out, _ := testStdio()
	log := slog.New(NewLogHandler(s, slog.LevelInfo))
	log = log.WithGroup("deploy").With("env", "prod")

	log.Info("done", "took", "3s")
	assert.Equal(t, "done deploy.env=prod deploy.took=3s\n", out.String())

	out.Reset()
	log = log.WithGroup("nested")
	log.Info("done", "key", "val")
	assert.Equal(t, "done deploy.env=prod deploy.nested.key=val\n", out.String())
}

func TestNewLogHandler_NilStdio(t *testing.T) {
	assert.Panics(t, func() {
		NewLogHandler(nil, slog.LevelInfo)
	})
}
