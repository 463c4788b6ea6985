package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config selects the log destination and verbosity.
type Config struct {
	// File is the JSON log destination. Parent directories are created.
	File  string
	Debug bool
	// RunID is attached to every record when set.
	RunID string
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// Setup points the process logger at a JSON file. The returned cleanup closes the file and
// restores the discarding logger. On error the discarding logger stays in place.
func Setup(cfg Config) (func() error, error) {
	if cfg.File == "" {
		setDiscard()
		return nil, errors.New("log file path is empty")
	}
	path := filepath.Clean(cfg.File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		setDiscard()
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		setDiscard()
		return nil, err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	l := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}))
	if cfg.RunID != "" {
		l = l.With("run_id", cfg.RunID)
	}

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Debug("logger.initialized", "path", path)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = discard()
		return cerr
	}
	return cleanup, nil
}

// L returns the process logger. Before Setup it discards everything.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path returns the active log file, or "" when logging is discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
	logFile = nil
	logPath = ""
}
