// Package log provides structured logging for lgtok.
// It wraps tea.LogToFile with level and category fields and is enabled
// via the --debug flag or the LGTOK_DEBUG environment variable.
package log

import (
	"fmt"
	"io"
	"os"
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
	CatConfig    Category = "config"    // Preference loading/saving
	CatTokens    Category = "tokens"    // Token dataset loading
	CatImport    Category = "import"    // Edits import validation
	CatExport    Category = "export"    // CSV/JSON/CSS export
	CatClipboard Category = "clipboard" // Clipboard writes
	CatWatcher   Category = "watcher"   // Tokens file watcher events
	CatUI        Category = "ui"        // UI component updates
)

// Logger writes structured lines to a log file.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init initializes the global logger using tea.LogToFile.
// Returns a cleanup function to close the log file.
func Init(path, prefix string) (func(), error) {
	var initErr error
	once.Do(func() {
		f, err := tea.LogToFile(path, prefix)
		if err != nil {
			initErr = fmt.Errorf("opening log file: %w", err)
			return
		}
		defaultLogger = &Logger{file: f, writer: f, enabled: true, minLevel: LevelDebug}
	})
	if initErr != nil {
		return nil, initErr
	}
	if defaultLogger == nil {
		return nil, fmt.Errorf("logger initialization already failed")
	}
	return func() {
		if defaultLogger.file != nil {
			_ = defaultLogger.file.Close()
		}
	}, nil
}

func (l *Logger) log(level Level, cat Category, format string, args ...any) {
	if l == nil || !l.enabled || level < l.minLevel {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(l.writer, "%s [%s] %-7s %s\n", ts, level, cat, fmt.Sprintf(format, args...))
}

// Debug logs at debug level.
func Debug(cat Category, format string, args ...any) {
	defaultLogger.log(LevelDebug, cat, format, args...)
}

// Info logs at info level.
func Info(cat Category, format string, args ...any) {
	defaultLogger.log(LevelInfo, cat, format, args...)
}

// Warn logs at warn level.
func Warn(cat Category, format string, args ...any) {
	defaultLogger.log(LevelWarn, cat, format, args...)
}

// Error logs at error level.
func Error(cat Category, format string, args ...any) {
	defaultLogger.log(LevelError, cat, format, args...)
}
