// Package logging wires the per-subsystem loggers to a single backend.
package logging

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/decred/slog"
)

// Subsystem tags
const (
	SubHAL     = "HAL"
	SubCDMus   = "CDMS"
	SubJoy     = "JOYS"
	SubEngine  = "ENGN"
	SubConsole = "CONS"
)

// Loggers hands out one logger per subsystem, all writing to the same
// backend at a shared level
type Loggers struct {
	mu      sync.Mutex
	backend *slog.Backend
	level   slog.Level
	subs    map[string]slog.Logger
}

// New creates loggers writing to w at the named level
func New(w io.Writer, level string) (*Loggers, error) {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return nil, fmt.Errorf("unknown log level: %s", level)
	}
	return &Loggers{
		backend: slog.NewBackend(w),
		level:   lvl,
		subs:    make(map[string]slog.Logger),
	}, nil
}

// Logger returns the logger for a subsystem, creating it on first use
func (l *Loggers) Logger(subsystem string) slog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lg, ok := l.subs[subsystem]; ok {
		return lg
	}
	lg := l.backend.Logger(subsystem)
	lg.SetLevel(l.level)
	l.subs[subsystem] = lg
	return lg
}

// SetLevel changes the level of every subsystem logger
func (l *Loggers) SetLevel(level string) error {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return fmt.Errorf("unknown log level: %s", level)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = lvl
	for _, lg := range l.subs {
		lg.SetLevel(lvl)
	}
	return nil
}

// Subsystems returns the tags of loggers created so far
func (l *Loggers) Subsystems() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	tags := make([]string, 0, len(l.subs))
	for tag := range l.subs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
