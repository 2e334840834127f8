package logger

import (
	"log"
	"os"
	"strings"
)

// Logger is a minimal leveled logger for the server and watcher
// surfaces. CLI commands print directly.
type Logger struct {
	logger *log.Logger
	level  int
}

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// New creates a Logger filtering below the given level
// ("debug", "info", "warn", "error"). Unknown levels mean info.
func New(level string) *Logger {
	return &Logger{
		logger: log.New(os.Stdout, "", log.LstdFlags),
		level:  parseLevel(level),
	}
}

func parseLevel(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	}
	return levelInfo
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level <= levelDebug {
		l.logger.Printf("[DEBUG] "+format, args...)
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	if l.level <= levelInfo {
		l.logger.Printf("[INFO] "+format, args...)
	}
}

func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level <= levelWarn {
		l.logger.Printf("[WARN] "+format, args...)
	}
}

func (l *Logger) Error(format string, args ...interface{}) {
	if l.level <= levelError {
		l.logger.Printf("[ERROR] "+format, args...)
	}
}
