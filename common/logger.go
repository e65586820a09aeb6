package common

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Logger is the common logging interface shared by all clients in this
// module.
type Logger interface {
	Errorf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Debugf(format string, v ...interface{})
}

// make sure that LevelLogger implements Logger interface.
var _ Logger = (*LevelLogger)(nil)

// LogLevelEnv is the environment variable NewLoggerFromEnv reads the
// severity from.
const LogLevelEnv = "SBEXT_LOG_LEVEL"

// NewLoggerFromEnv returns a LevelLogger with the given name prefix and
// severity taken from the SBEXT_LOG_LEVEL environment variable, falling
// back to LevelWarn when it's unset or unrecognized.
//
// It writes with the standard log.Print function so output can be
// redirected via the standard library's log configuration.
func NewLoggerFromEnv(name string) *LevelLogger {
	lvl := LevelWarn
	switch strings.ToLower(os.Getenv(LogLevelEnv)) {
	case "e", "err", "error":
		lvl = LevelError
	case "w", "warn", "warning":
		lvl = LevelWarn
	case "i", "info":
		lvl = LevelInfo
	case "d", "debug":
		lvl = LevelDebug
	}
	return NewLogger(name, lvl, log.Print)
}

// LogLevel is logging severity.
type LogLevel uint8

const (
	LevelError LogLevel = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

// String returns log level string representation.
func (lvl LogLevel) String() string {
	switch lvl {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return ""
	}
}

// PrintFunc is used for writing logs that works as fmt.Print.
type PrintFunc func(v ...interface{})

// NewLogger creates a new leveled logger instance with the given parameters.
// A nil print function discards all output.
func NewLogger(name string, lvl LogLevel, print PrintFunc) *LevelLogger {
	return &LevelLogger{name: name, lvl: lvl, print: print}
}

// NopLogger returns a logger that discards everything written to it.
func NopLogger() *LevelLogger {
	return &LevelLogger{}
}

// LevelLogger is a logger that supports log levels.
type LevelLogger struct {
	name  string
	lvl   LogLevel
	print PrintFunc
}

func (l *LevelLogger) Errorf(format string, v ...interface{}) {
	l.logf(LevelError, format, v...)
}

func (l *LevelLogger) Warnf(format string, v ...interface{}) {
	l.logf(LevelWarn, format, v...)
}

func (l *LevelLogger) Infof(format string, v ...interface{}) {
	l.logf(LevelInfo, format, v...)
}

func (l *LevelLogger) Debugf(format string, v ...interface{}) {
	l.logf(LevelDebug, format, v...)
}

func (l *LevelLogger) logf(lvl LogLevel, format string, v ...interface{}) {
	if l.print != nil && lvl <= l.lvl {
		l.print(l.name, ": ", lvl.String(), " ", fmt.Sprintf(format, v...))
	}
}
