// Package log provides structured debug logging for extedit.
//
// Entries are written as single lines:
//
//	2025-12-06T10:45:00 [DEBUG] [edit] command applied cmd=delete-word-backward cursor=6
//
// Logging is off until Init is called, which happens when --debug is passed
// or EXTEDIT_DEBUG is set. The TUI owns stdout, so entries always go to a file.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatConfig Category = "config" // Configuration loading/saving
	CatUI     Category = "ui"     // UI component updates
	CatEdit   Category = "edit"   // Editing commands dispatched by the extended input
	CatApp    Category = "app"    // Host program lifecycle
)

type logger struct {
	mu       sync.Mutex
	w        io.Writer
	minLevel Level
	now      func() time.Time
}

var std = &logger{minLevel: LevelDebug, now: time.Now}

// Init opens path through tea.LogToFile and starts logging to it.
// The returned function closes the file and disables logging again.
func Init(path string) (func(), error) {
	f, err := tea.LogToFile(path, "extedit")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	SetOutput(f)
	return func() {
		SetOutput(nil)
		_ = f.Close()
	}, nil
}

// SetOutput redirects log entries to w. A nil writer disables logging.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	std.w = w
	std.mu.Unlock()
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	std.mu.Lock()
	std.minLevel = level
	std.mu.Unlock()
}

// EnabledFromEnv reports whether EXTEDIT_DEBUG asks for debug logging.
func EnabledFromEnv() bool {
	switch strings.ToLower(os.Getenv("EXTEDIT_DEBUG")) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	std.mu.Lock()
	defer std.mu.Unlock()

	if std.w == nil || level < std.minLevel {
		return
	}
	_, _ = io.WriteString(std.w, formatEntry(std.now(), level, cat, msg, fields))
}

// formatEntry renders one line. Fields are key/value pairs; an odd trailing
// key is written with a <missing> value.
func formatEntry(ts time.Time, level Level, cat Category, msg string, fields []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", ts.Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	b.WriteByte('\n')
	return b.String()
}
