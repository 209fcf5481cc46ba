// Package audit provides the structured, leveled logging used across
// sparsekem for key-material events: generation, consumption of entropy,
// and zeroization of ephemeral vectors. It does not persist anything
// itself; it is a thin wrapper around go-logging so callers get consistent
// formatting without each package reinventing it.
package audit

import (
	"fmt"
	"os"
	"sync"

	logging "github.com/op/go-logging"
)

var (
	backendOnce sync.Once
	format      = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{module} ▶ %{message}`,
	)
)

func ensureBackend() {
	backendOnce.Do(func() {
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(logging.WARNING, "")
		logging.SetBackend(leveled)
	})
}

// Log is a leveled logger scoped to one component (entropy, session, ...).
// It never logs raw key material; callers pass a description and counts,
// never the bits themselves.
type Log struct {
	logger *logging.Logger
}

// New returns a Log for the named component.
func New(component string) *Log {
	ensureBackend()
	return &Log{logger: logging.MustGetLogger(component)}
}

// Event records a structured audit line: an event type, a human
// description, and optional key/value detail appended as "key=value".
func (l *Log) Event(eventType, description string, detail ...interface{}) {
	if len(detail) > 0 {
		var pairs string
		for i := 0; i < len(detail); i += 2 {
			if i+1 < len(detail) {
				pairs += fmt.Sprintf(" %v=%v", detail[i], detail[i+1])
			} else {
				pairs += fmt.Sprintf(" %v", detail[i])
			}
		}
		l.logger.Infof("%s: %s%s", eventType, description, pairs)
		return
	}
	l.logger.Infof("%s: %s", eventType, description)
}

// Warn records an unexpected-but-recoverable condition.
func (l *Log) Warn(eventType, description string) {
	l.logger.Warningf("%s: %s", eventType, description)
}

// SetLevel adjusts the global verbosity, e.g. to turn on DEBUG output. The
// default level is WARNING.
func SetLevel(level logging.Level) {
	ensureBackend()
	logging.SetLevel(level, "")
}
