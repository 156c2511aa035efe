package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

var (
	Logger  = zerolog.Nop()
	logFile *os.File
)

// Options configures where log lines go
type Options struct {
	LogFile string    // JSON log file, empty to disable
	Console io.Writer // Human-readable output, defaults to stderr
	NoColor bool
	Debug   bool
}

// timestampHook adds timestamp at the end of each log event
type timestampHook struct{}

func (h timestampHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	e.Time(zerolog.TimestampFieldName, time.Now())
}

// Init initializes the logging system with zerolog.
// Console output always works; a log file that cannot be opened is
// reported through the returned error and skipped.
func Init(opts Options) error {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	zerolog.MessageFieldName = "msg"
	zerolog.TimeFieldFormat = time.RFC3339

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.RFC3339,
		NoColor:    opts.NoColor,
	}}

	var fileErr error
	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0755); err != nil {
			fileErr = err
		} else if f, err := os.OpenFile(opts.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
			fileErr = err
		} else {
			logFile = f
			writers = append(writers, f)
		}
	}

	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).Hook(timestampHook{})

	return fileErr
}

// SetOutput sends JSON log lines to w at debug level. Used by tests.
func SetOutput(w io.Writer) {
	Logger = zerolog.New(w).Level(zerolog.DebugLevel)
}

// SetDebug toggles debug level on the current logger
func SetDebug(enabled bool) {
	if enabled {
		Logger = Logger.Level(zerolog.DebugLevel)
	} else {
		Logger = Logger.Level(zerolog.InfoLevel)
	}
}

// With returns a child logger context for attaching fields such as a run ID
func With() zerolog.Context {
	return Logger.With()
}

// Replace swaps the package logger, returning the previous one
func Replace(l zerolog.Logger) zerolog.Logger {
	prev := Logger
	Logger = l
	return prev
}

// Close closes the log file
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Debug returns a debug level event
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info returns an info level event
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn returns a warn level event
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error returns an error level event
func Error() *zerolog.Event {
	return Logger.Error()
}
