package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Logger writes one JSON object per line. The kiosk owns the terminal, so
// logs go to a file or nowhere.
type Logger struct {
	service string
	session string
	mu      sync.Mutex
	out     io.Writer
	now     func() time.Time
}

func New(service string, out io.Writer) *Logger {
	if out == nil {
		out = io.Discard
	}
	return &Logger{service: service, session: uuid.NewString(), out: out, now: time.Now}
}

// Discard returns a logger that drops everything.
func Discard(service string) *Logger { return New(service, io.Discard) }

// OpenFile logs to path through Bubble Tea's log file helper. The returned
// closer must be called on exit.
func OpenFile(service, path string) (*Logger, io.Closer, error) {
	f, err := tea.LogToFile(path, service)
	if err != nil {
		return nil, nil, err
	}
	return New(service, f), f, nil
}

func (l *Logger) Session() string { return l.session }

func (l *Logger) log(level, action string, fields map[string]any, err error) {
	entry := map[string]any{
		"timestamp":  l.now().UTC().Format(time.RFC3339Nano),
		"level":      level,
		"service":    l.service,
		"action":     action,
		"message":    action,
		"hostname":   hostname(),
		"session_id": l.session,
	}
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = map[string]any{"msg": err.Error(), "type": fmt.Sprintf("%T", err)}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = json.NewEncoder(l.out).Encode(entry)
}

func (l *Logger) Info(action string, fields map[string]any)  { l.log("INFO", action, fields, nil) }
func (l *Logger) Debug(action string, fields map[string]any) { l.log("DEBUG", action, fields, nil) }
func (l *Logger) Error(action string, err error, fields map[string]any) {
	l.log("ERROR", action, fields, err)
}

func hostname() string { h, _ := os.Hostname(); return h }
