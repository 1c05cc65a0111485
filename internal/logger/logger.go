// Package logger holds the process-wide structured logger. Logs go to stderr
// so they never mix with the diagnostics on stdout.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Config selects the destination and format of the process logger.
type Config struct {
	// Out receives log records. Defaults to os.Stderr.
	Out   io.Writer
	Debug bool
	// JSON forces the JSON handler. Without it, JSON is used only when Out is
	// not a terminal.
	JSON bool
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs the global logger and returns a cleanup that restores the
// discarding logger.
func Setup(cfg Config) func() {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.Debug}

	var h slog.Handler
	if cfg.JSON || !isTerminal(out) {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()

	L().Debug("logger.initialized", "debug", cfg.Debug)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = discard()
	}
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
