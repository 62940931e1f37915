package logger_config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the shared structured logger.
// It is safe for concurrent use.
var Logger *slog.Logger

// backend renders every record; Logger is a slog front end over it.
var backend *log.Logger

func init() {
	backend = log.NewWithOptions(os.Stderr, log.Options{
		Level:           parseLevel(os.Getenv("LOG_LEVEL")), // debug|info|warn|error
		Prefix:          "survivors",
		ReportTimestamp: true,
		ReportCaller:    true, // file:line
	})
	Logger = slog.New(backend)

	slog.SetDefault(Logger)
}

// SetOutput redirects all log output, e.g. to a file while a terminal UI owns
// the screen.
func SetOutput(w io.Writer) { backend.SetOutput(w) }

// SetLevel overrides LOG_LEVEL.
func SetLevel(s string) { backend.SetLevel(parseLevel(s)) }

// With returns a logger that tags every record with a component name.
func With(component string) *slog.Logger {
	return Logger.With("component", component)
}

func parseLevel(s string) log.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "info", "":
		return log.InfoLevel
	default:
		return log.InfoLevel
	}
}

// Sugar helpers (printf-style), convenient for quick telemetry.
func Debugf(format string, args ...any) { Logger.Debug(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { Logger.Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { Logger.Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { Logger.Error(fmt.Sprintf(format, args...)) }
