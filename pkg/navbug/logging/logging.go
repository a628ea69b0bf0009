// Package logging sets up the process-wide slog loggers: JSON lines written
// to stdout and a log file. It has no SDL dependency, so the terminal host
// can use it without cgo.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultPath is where logs go unless SetPath is called.
var DefaultPath = filepath.Join("logs", "navbug.log")

var (
	logFile     *os.File
	logPath     string
	quietStdout bool

	setupOnce   sync.Once
	multiWriter io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
func SetPath(path string) {
	logPath = path
}

// SetQuietStdout stops log output from reaching stdout, e.g. while a
// terminal UI owns the screen. Must be called before the first log line.
func SetQuietStdout(quiet bool) {
	quietStdout = quiet
}

func consoleWriter() io.Writer {
	if quietStdout {
		return io.Discard
	}
	return os.Stdout
}

func setup() {
	setupOnce.Do(func() {
		targetPath := logPath
		if targetPath == "" {
			targetPath = DefaultPath
		}

		if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
			multiWriter = consoleWriter()
			return
		}

		var err error
		logFile, err = os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to console-only
			multiWriter = consoleWriter()
			return
		}

		if quietStdout {
			multiWriter = logFile
			return
		}
		multiWriter = io.MultiWriter(os.Stdout, logFile)
	})
}

// Get returns the application logger.
func Get() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// Internal returns the logger of the SDL host's plumbing. Its lines carry a
// component attribute and it has its own level.
func Internal() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}

		setup()

		handler := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
			Level:     internalLevelVar,
			AddSource: false,
		}).WithAttrs([]slog.Attr{slog.String("component", "navbug")})
		internalLogger = slog.New(handler)
	})
	return internalLogger
}

func SetLevel(level slog.Level) {
	Get()
	levelVar.Set(level)
}

func SetInternalLevel(level slog.Level) {
	Internal()
	internalLevelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLevel(rawLevel string) {
	SetLevel(ParseLevel(rawLevel))
}

func Close() {
	if logFile != nil {
		logFile.Close()
	}
}
