// Package logger writes leveled diagnostics for a verification run.
//
// Diagnostics go to stderr so the checklist report on stdout stays
// byte-for-byte reproducible. Level tags are coloured when the destination
// is a terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	levelDebug int = iota
	levelInfo
	levelWarn
	levelError
)

// Logger is safe for concurrent use. A nil *Logger discards everything.
type Logger struct {
	writer      io.Writer
	level       int
	mu          sync.Mutex
	colorOutput bool
}

// New creates a Logger writing to w at the given minimum level.
// Valid levels: debug, info, warn, error (case-insensitive); anything else
// means info.
func New(w io.Writer, level string) *Logger {
	return &Logger{
		writer:      w,
		level:       parseLevel(level),
		colorOutput: isTerminal(w),
	}
}

// Discard returns a Logger that drops every message.
func Discard() *Logger {
	return New(io.Discard, "error")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func parseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (l *Logger) Debugf(format string, args ...any) { l.log(levelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.log(levelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(levelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.log(levelError, format, args...) }

func (l *Logger) log(level int, format string, args ...any) {
	if l == nil || l.writer == nil || level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tag := levelTag(level)
	if l.colorOutput {
		tag = levelColor(level).Sprint(tag)
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.writer, "[%s] %s\n", tag, strings.TrimRight(msg, "\n"))
}

func levelTag(level int) string {
	switch level {
	case levelDebug:
		return "DEBUG"
	case levelWarn:
		return "WARN"
	case levelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func levelColor(level int) *color.Color {
	var c *color.Color
	switch level {
	case levelDebug:
		c = color.New(color.FgCyan)
	case levelWarn:
		c = color.New(color.FgYellow)
	case levelError:
		c = color.New(color.FgRed)
	default:
		c = color.New(color.FgBlue)
	}
	// isTerminal already decided; don't let the global stdout check veto stderr.
	c.EnableColor()
	return c
}
