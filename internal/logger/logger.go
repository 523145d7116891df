package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration.
type Config struct {
	Debug  bool
	LogDir string
	// Stderr receives a copy of every line in debug mode. Defaults to os.Stderr.
	Stderr io.Writer
}

// Logger wraps the charm logger and the rotating file it writes to.
type Logger struct {
	*log.Logger
	file *lumberjack.Logger
}

// New creates the log directory and returns a logger writing to a rotating
// neurosprint.log inside it. In debug mode lines are mirrored to stderr.
func New(cfg Config) (*Logger, error) {
	if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
		return nil, err
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, "neurosprint.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.InfoLevel
	var writer io.Writer = file
	if cfg.Debug {
		level = log.DebugLevel
		stderr := cfg.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		writer = io.MultiWriter(stderr, file)
	}

	l := log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "neurosprint",
	})
	return &Logger{Logger: l, file: file}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})}
}

// Slog exposes the logger through log/slog for packages that log with it.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(l.Logger)
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
