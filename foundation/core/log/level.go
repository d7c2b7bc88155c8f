// File: level.go
// Title: Log Levels
// Description: Severity levels for filtering log output. Levels decode from
//              configuration files through encoding.TextUnmarshaler.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-12 v0.2.0: Dropped the audit level
// - 2026-10-16 v0.3.0: Table driven names, text (un)marshaling, warn default

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError

	// LevelFatal marks conditions that end the process
	LevelFatal
)

type levelName struct {
	long    string
	short   string
	aliases []string
}

var levelNames = [...]levelName{
	LevelTrace: {"trace", "TRC", nil},
	LevelDebug: {"debug", "DBG", nil},
	LevelInfo:  {"info", "INF", []string{"information"}},
	LevelWarn:  {"warn", "WRN", []string{"warning"}},
	LevelError: {"error", "ERR", []string{"err"}},
	LevelFatal: {"fatal", "FTL", nil},
}

func (l Level) valid() bool {
	return l >= LevelTrace && int(l) < len(levelNames)
}

// String returns the lower case level name
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three letter tag used by the text format
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// Enabled reports whether a message at level l passes the threshold min
func (l Level) Enabled(min Level) bool {
	return l >= min
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel accepts long names, three letter tags and a few aliases, in any
// case. Unknown input yields DefaultLevel and a *ParseError.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range levelNames {
		if s == n.long || s == strings.ToLower(n.short) {
			return Level(i), nil
		}
		for _, alias := range n.aliases {
			if s == alias {
				return Level(i), nil
			}
		}
	}
	return DefaultLevel(), &ParseError{Kind: "level", Input: s}
}

// DefaultLevel is the threshold used when nothing is configured
func DefaultLevel() Level {
	return LevelWarn
}

// ParseError reports an unknown level or format name
type ParseError struct {
	Kind  string
	Input string
}

func (e *ParseError) Error() string {
	return "log: unknown " + e.Kind + " " + strings.TrimSpace(e.Input)
}
